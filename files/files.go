// Package files contains the use cases behind the file retrieval HTTP API.
//
// Each use case wraps one filestore.Retriever operation, translating the
// nil-result-means-missing convention into a not-found error and shaping
// the transport-level request and response types.
package files

import (
	"fmt"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/pagination"
	"github.com/rise-and-shine/fileserve/ucdef"
)

// CodeFileNotFound is returned when a path does not resolve to a stored file.
const CodeFileNotFound = "FILE_NOT_FOUND"

// Every use case satisfies the shared UserAction contract.
var _ ucdef.UserAction[*GetBase64Input, *filestore.EncodedFile] = (*GetBase64)(nil)

var _ ucdef.UserAction[*GetThumbnailBase64Input, *filestore.EncodedFile] = (*GetThumbnailBase64)(nil)

var _ ucdef.UserAction[*GetMobileBase64Input, *filestore.EncodedFile] = (*GetMobileBase64)(nil)

var _ ucdef.UserAction[*GetMetadataInput, *filestore.FileMetadata] = (*GetMetadata)(nil)

var _ ucdef.UserAction[*ListFilesInput, *pagination.Response[filestore.ListEntry]] = (*ListFiles)(nil)

var _ ucdef.UserAction[*BatchFetchInput, *filestore.BatchResponse] = (*BatchFetch)(nil)

// NotFound builds the canonical not-found error for a requested path.
func NotFound(path string) error {
	return errx.New(
		fmt.Sprintf("file not found: %s", path),
		errx.WithCode(CodeFileNotFound),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"path": path}),
	)
}
