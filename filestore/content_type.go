package filestore

import (
	"path/filepath"
	"strings"
)

// Common MIME content types served by the retrieval service.
const (
	// Raster images.
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWebP = "image/webp"

	// Non-raster images.
	ContentTypeSVG = "image/svg+xml"
	ContentTypeICO = "image/x-icon"

	// Documents.
	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
	ContentTypeCSV  = "text/csv"

	// Archives.
	ContentTypeZIP  = "application/zip"
	ContentTypeGZIP = "application/gzip"

	// Fallback for unknown extensions.
	ContentTypeOctetStream = "application/octet-stream"
)

// Format identifies the raster encoding of a file. It is a closed enum:
// adding a format means touching every switch over it, which keeps the
// encode paths compile-time checked.
type Format int

const (
	FormatOther Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatWebP
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatWebP:
		return "webp"
	case FormatOther:
		return "other"
	default:
		return "other"
	}
}

// Raster reports whether the format is a decodable raster image and thus
// eligible for derivative transformation.
func (f Format) Raster() bool {
	return f != FormatOther
}

// MediaType describes the declared type of a file: its MIME string and, for
// raster images, the concrete format variant.
type MediaType struct {
	MIME   string
	Format Format
}

// Classify maps a file extension to its MediaType. The mapping is total:
// unknown extensions resolve to application/octet-stream, never an error.
// Extensions are compared case-insensitively and may carry a leading dot.
func Classify(ext string) MediaType {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	switch ext {
	case "jpg", "jpeg":
		return MediaType{MIME: ContentTypeJPEG, Format: FormatJPEG}
	case "png":
		return MediaType{MIME: ContentTypePNG, Format: FormatPNG}
	case "gif":
		return MediaType{MIME: ContentTypeGIF, Format: FormatGIF}
	case "webp":
		return MediaType{MIME: ContentTypeWebP, Format: FormatWebP}
	case "svg":
		return MediaType{MIME: ContentTypeSVG}
	case "ico":
		return MediaType{MIME: ContentTypeICO}
	case "pdf":
		return MediaType{MIME: ContentTypePDF}
	case "txt":
		return MediaType{MIME: ContentTypeText}
	case "html", "htm":
		return MediaType{MIME: ContentTypeHTML}
	case "json":
		return MediaType{MIME: ContentTypeJSON}
	case "xml":
		return MediaType{MIME: ContentTypeXML}
	case "csv":
		return MediaType{MIME: ContentTypeCSV}
	case "zip":
		return MediaType{MIME: ContentTypeZIP}
	case "gz":
		return MediaType{MIME: ContentTypeGZIP}
	default:
		return MediaType{MIME: ContentTypeOctetStream}
	}
}

// ClassifyPath maps a file path to its MediaType based on the extension.
func ClassifyPath(path string) MediaType {
	return Classify(filepath.Ext(path))
}
