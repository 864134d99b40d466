// Package filestore defines the contract for read-only file retrieval with
// on-the-fly image derivatives.
//
// It declares a Retriever interface implemented by storage backends (see the
// localfs subpackage) together with the value types that cross the boundary:
// resolved files, metadata, derivative specs and batch results. The interface
// is designed to be injected into use cases and HTTP handlers.
package filestore

import (
	"context"
	"time"
)

// ResolvedFile is the product of path resolution. It is only ever produced
// by a resolver and is guaranteed to lie within the storage root and to have
// existed as a regular file at the moment of resolution.
type ResolvedFile struct {
	// AbsolutePath is the canonical on-disk path.
	AbsolutePath string

	// RelativePath is the slash-separated path relative to the storage
	// root, including any auto-detected extension.
	RelativePath string

	// Extension is the resolved file extension with leading dot, lowercase.
	Extension string
}

// FileMetadata describes a stored file. It is recomputed on every request
// and never cached across requests.
type FileMetadata struct {
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// DerivativeSpec describes one image transformation: the bounding box the
// output must fit inside and the re-encode quality for lossy formats.
type DerivativeSpec struct {
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
	Quality   int `json:"quality"`
}

// DerivativeOverrides carries optional caller-supplied derivative
// parameters. Zero values mean "use the configured default".
type DerivativeOverrides struct {
	Width   int
	Height  int
	Quality int
}

// FileContent is the payload of a raw or derivative retrieval.
type FileContent struct {
	Data        []byte
	ContentType string

	// FileName is the resolved file name, which may differ from the
	// requested one when the extension was auto-detected.
	FileName string
}

// EncodedFile is the payload of a base64 retrieval.
type EncodedFile struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Base64      string `json:"base64"`
}

// BatchOperation selects the per-item retrieval performed by a batch.
type BatchOperation string

const (
	OpRawBase64       BatchOperation = "raw-base64"
	OpThumbnailBase64 BatchOperation = "thumbnail-base64"
	OpMobileBase64    BatchOperation = "mobile-base64"
)

// Valid reports whether the operation is one of the known batch operations.
func (op BatchOperation) Valid() bool {
	switch op {
	case OpRawBase64, OpThumbnailBase64, OpMobileBase64:
		return true
	default:
		return false
	}
}

// BatchItemResult is the outcome of one batch item. Items are independent:
// one item's failure never affects its siblings.
type BatchItemResult struct {
	RequestedPath string `json:"requested_path"`
	Found         bool   `json:"found"`
	FileName      string `json:"file_name,omitempty"`
	ContentType   string `json:"content_type,omitempty"`
	Base64        string `json:"base64,omitempty"`
	Error         string `json:"error,omitempty"`
}

// BatchResponse aggregates a full batch fan-out. The counts are derived from
// the items: TotalFound + TotalNotFound == TotalRequested == len(Items).
type BatchResponse struct {
	Items         []BatchItemResult `json:"items"`
	TotalRequested int              `json:"total_requested"`
	TotalFound     int              `json:"total_found"`
	TotalNotFound  int              `json:"total_not_found"`
}

// ListEntry describes one file or directory in a recursive listing.
type ListEntry struct {
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	SizeBytes   int64     `json:"size_bytes"`
	IsDir       bool      `json:"is_dir"`
	ModifiedAt  time.Time `json:"modified_at"`
	ContentType string    `json:"content_type,omitempty"`
}

// Retriever defines read-only file retrieval operations.
//
// Implementations must be safe for concurrent use. Operations return a nil
// result (not an error) when the path does not resolve to a file under the
// storage root; callers map nil to a not-found response. Errors represent
// invalid arguments or unexpected I/O failures only.
type Retriever interface {
	// GetRaw returns the file bytes and declared content type.
	GetRaw(ctx context.Context, path string) (*FileContent, error)

	// GetMetadata returns descriptive metadata for the file.
	GetMetadata(ctx context.Context, path string) (*FileMetadata, error)

	// GetBase64 returns the file content base64-encoded.
	GetBase64(ctx context.Context, path string) (*EncodedFile, error)

	// GetThumbnail returns the file shrunk to the configured thumbnail
	// bounds. Non-image content is returned unchanged.
	GetThumbnail(ctx context.Context, path string) (*FileContent, error)

	// GetMobile returns the file shrunk to the mobile bounds, with optional
	// per-request overrides for dimensions and quality.
	GetMobile(ctx context.Context, path string, o DerivativeOverrides) (*FileContent, error)

	// GetThumbnailBase64 combines GetThumbnail with base64 encoding.
	GetThumbnailBase64(ctx context.Context, path string) (*EncodedFile, error)

	// GetMobileBase64 combines GetMobile with base64 encoding.
	GetMobileBase64(ctx context.Context, path string, o DerivativeOverrides) (*EncodedFile, error)

	// List walks the storage root depth-first and returns every entry.
	List(ctx context.Context) ([]ListEntry, error)

	// RunBatch fans the paths out concurrently, applying the operation to
	// each, and aggregates a per-item report. It waits for the full fan-out
	// to finish; there are no partial results.
	RunBatch(ctx context.Context, paths []string, op BatchOperation, o DerivativeOverrides) (*BatchResponse, error)
}
