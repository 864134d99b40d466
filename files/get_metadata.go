package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// GetMetadataInput identifies the file to describe.
type GetMetadataInput struct {
	Path string `query:"path" json:"path" validate:"required"`
}

// GetMetadata returns descriptive metadata for a stored file.
type GetMetadata struct {
	store filestore.Retriever
}

func NewGetMetadata(store filestore.Retriever) *GetMetadata {
	return &GetMetadata{store: store}
}

func (uc *GetMetadata) OperationID() string {
	return "files.get_metadata"
}

func (uc *GetMetadata) Execute(ctx context.Context, in *GetMetadataInput) (*filestore.FileMetadata, error) {
	out, err := uc.store.GetMetadata(ctx, in.Path)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	if out == nil {
		return nil, NotFound(in.Path)
	}
	return out, nil
}
