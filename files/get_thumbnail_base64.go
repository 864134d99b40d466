package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// GetThumbnailBase64Input identifies the file to fetch.
type GetThumbnailBase64Input struct {
	Path string `query:"path" json:"path" validate:"required"`
}

// GetThumbnailBase64 returns a thumbnail derivative base64-encoded.
type GetThumbnailBase64 struct {
	store filestore.Retriever
}

func NewGetThumbnailBase64(store filestore.Retriever) *GetThumbnailBase64 {
	return &GetThumbnailBase64{store: store}
}

func (uc *GetThumbnailBase64) OperationID() string {
	return "files.get_thumbnail_base64"
}

func (uc *GetThumbnailBase64) Execute(
	ctx context.Context,
	in *GetThumbnailBase64Input,
) (*filestore.EncodedFile, error) {
	out, err := uc.store.GetThumbnailBase64(ctx, in.Path)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	if out == nil {
		return nil, NotFound(in.Path)
	}
	return out, nil
}
