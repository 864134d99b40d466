// Package processor implements the image derivative pipeline: decode,
// shrink-to-fit resize and format-preserving re-encode.
package processor

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/code19m/errx"
	"github.com/disintegration/imaging"

	"github.com/rise-and-shine/fileserve/filestore"
)

// Processor transforms raster images according to a DerivativeSpec.
// The zero value is ready to use; New exists for symmetry with the other
// service components.
type Processor struct{}

// New creates a new Processor.
func New() *Processor {
	return &Processor{}
}

// Transform decodes data, shrinks it to fit inside the spec's bounding box
// and re-encodes it in the source format.
//
// Behavior follows the retrieval service's fallback contract:
//   - non-raster media types are returned unchanged (pass-through);
//   - images that already fit the bounds are returned unchanged, byte for
//     byte (shrink only, never enlarge);
//   - decode or encode failures return an error so the caller can fall back
//     to the original bytes.
//
// The caller is responsible for validating spec.Quality to [1, 100].
func (p *Processor) Transform(data []byte, mt filestore.MediaType, spec filestore.DerivativeSpec) ([]byte, error) {
	if !mt.Format.Raster() {
		return data, nil
	}

	if !encodable(mt.Format) {
		return nil, errx.New(
			"no encoder for format "+mt.Format.String(),
			errx.WithCode(filestore.CodeEncodeUnsupported),
		)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(filestore.CodeTransformFailed))
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := scaleFactor(w, h, spec.MaxWidth, spec.MaxHeight)
	if scale >= 1 {
		// Already fits; skip both the resize and the re-encode so repeated
		// requests stay byte-identical to the source.
		return data, nil
	}

	dstW := max(int(float64(w)*scale), 1)
	dstH := max(int(float64(h)*scale), 1)

	resized := imaging.Resize(img, dstW, dstH, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := encode(buf, resized, mt.Format, spec.Quality); err != nil {
		return nil, errx.Wrap(err, errx.WithCode(filestore.CodeTransformFailed))
	}

	return buf.Bytes(), nil
}

// scaleFactor returns the uniform factor that fits (w, h) inside
// (maxW, maxH). A factor >= 1 means the image already fits.
func scaleFactor(w, h, maxW, maxH int) float64 {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 1
	}
	return min(float64(maxW)/float64(w), float64(maxH)/float64(h))
}

// encodable reports whether the format has an encoder. WebP can be decoded
// but not re-encoded; the caller serves the original bytes instead.
func encodable(f filestore.Format) bool {
	switch f {
	case filestore.FormatPNG, filestore.FormatJPEG, filestore.FormatGIF:
		return true
	case filestore.FormatWebP, filestore.FormatOther:
		return false
	default:
		return false
	}
}

// encode writes img in the given format. Quality applies to lossy formats
// only: PNG is lossless and GIF has no quality knob.
func encode(buf *bytes.Buffer, img image.Image, f filestore.Format, quality int) error {
	switch f {
	case filestore.FormatJPEG:
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	case filestore.FormatPNG:
		return png.Encode(buf, img)
	case filestore.FormatGIF:
		return gif.Encode(buf, img, nil)
	case filestore.FormatWebP, filestore.FormatOther:
		return errx.New("no encoder for format " + f.String())
	default:
		return errx.New("no encoder for format " + f.String())
	}
}
