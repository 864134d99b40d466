package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// GetBase64Input identifies the file to fetch.
type GetBase64Input struct {
	Path string `query:"path" json:"path" validate:"required"`
}

// GetBase64 returns a stored file base64-encoded.
type GetBase64 struct {
	store filestore.Retriever
}

func NewGetBase64(store filestore.Retriever) *GetBase64 {
	return &GetBase64{store: store}
}

func (uc *GetBase64) OperationID() string {
	return "files.get_base64"
}

func (uc *GetBase64) Execute(ctx context.Context, in *GetBase64Input) (*filestore.EncodedFile, error) {
	out, err := uc.store.GetBase64(ctx, in.Path)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	if out == nil {
		return nil, NotFound(in.Path)
	}
	return out, nil
}
