package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
)

// BatchFetchInput requests the same retrieval operation for many paths at
// once. Derivative overrides apply to every item of derivative operations.
type BatchFetchInput struct {
	Paths     []string `json:"paths"     validate:"required,min=1,dive,required"`
	Operation string   `json:"operation" validate:"required,oneof=raw-base64 thumbnail-base64 mobile-base64"`

	Width   int `json:"width,omitempty"   validate:"omitempty,gte=1"`
	Height  int `json:"height,omitempty"  validate:"omitempty,gte=1"`
	Quality int `json:"quality,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// BatchFetch fans a batch of retrievals out to the store and reports
// per-item outcomes.
type BatchFetch struct {
	store filestore.Retriever
}

func NewBatchFetch(store filestore.Retriever) *BatchFetch {
	return &BatchFetch{store: store}
}

func (uc *BatchFetch) OperationID() string {
	return "files.batch_fetch"
}

func (uc *BatchFetch) Execute(ctx context.Context, in *BatchFetchInput) (*filestore.BatchResponse, error) {
	overrides := filestore.DerivativeOverrides{
		Width:   in.Width,
		Height:  in.Height,
		Quality: in.Quality,
	}

	out, err := uc.store.RunBatch(ctx, in.Paths, filestore.BatchOperation(in.Operation), overrides)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return out, nil
}
