package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// GetMobileBase64Input identifies the file to fetch plus optional
// per-request derivative overrides. Zero values fall back to the configured
// mobile defaults.
type GetMobileBase64Input struct {
	Path    string `query:"path"    json:"path" validate:"required"`
	Width   int    `query:"width"   json:"width,omitempty"   validate:"omitempty,gte=1"`
	Height  int    `query:"height"  json:"height,omitempty"  validate:"omitempty,gte=1"`
	Quality int    `query:"quality" json:"quality,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// GetMobileBase64 returns a mobile derivative base64-encoded.
type GetMobileBase64 struct {
	store filestore.Retriever
}

func NewGetMobileBase64(store filestore.Retriever) *GetMobileBase64 {
	return &GetMobileBase64{store: store}
}

func (uc *GetMobileBase64) OperationID() string {
	return "files.get_mobile_base64"
}

func (uc *GetMobileBase64) Execute(
	ctx context.Context,
	in *GetMobileBase64Input,
) (*filestore.EncodedFile, error) {
	overrides := filestore.DerivativeOverrides{
		Width:   in.Width,
		Height:  in.Height,
		Quality: in.Quality,
	}

	out, err := uc.store.GetMobileBase64(ctx, in.Path, overrides)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	if out == nil {
		return nil, NotFound(in.Path)
	}
	return out, nil
}
