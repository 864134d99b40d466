package localfs

import (
	"context"
	"fmt"

	"github.com/code19m/errx"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/rise-and-shine/fileserve/filestore"
)

// RunBatch fans the paths out concurrently and aggregates a per-item
// report. Items are isolated bulkhead-style: a failure (or panic) in one
// item is recorded on that item alone and never cancels its siblings. The
// call returns only after every item has finished, and the result slice
// mirrors the input order.
func (s *Service) RunBatch(
	ctx context.Context,
	paths []string,
	op filestore.BatchOperation,
	o filestore.DerivativeOverrides,
) (*filestore.BatchResponse, error) {
	if !op.Valid() {
		return nil, errx.New(
			"unknown batch operation: "+string(op),
			errx.WithCode(filestore.CodeInvalidBatchOperation),
			errx.WithType(errx.T_Validation),
		)
	}

	if len(paths) > s.cfg.MaxBatchItems {
		return nil, errx.New(
			fmt.Sprintf("batch size %d exceeds the maximum of %d items", len(paths), s.cfg.MaxBatchItems),
			errx.WithCode(filestore.CodeBatchTooLarge),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"requested": len(paths), "max": s.cfg.MaxBatchItems}),
		)
	}

	items := make([]filestore.BatchItemResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			items[i] = s.batchItem(gctx, path, op, o)
			return nil
		})
	}

	// Goroutines never return errors; Wait is purely the fan-in barrier.
	_ = g.Wait()

	found := lo.CountBy(items, func(it filestore.BatchItemResult) bool { return it.Found })

	resp := &filestore.BatchResponse{
		Items:          items,
		TotalRequested: len(items),
		TotalFound:     found,
		TotalNotFound:  len(items) - found,
	}

	s.log.With(
		"operation", string(op),
		"total_requested", resp.TotalRequested,
		"total_found", resp.TotalFound,
		"total_not_found", resp.TotalNotFound,
	).Info("batch completed")

	return resp, nil
}

// batchItem executes one item and converts every failure mode, panics
// included, into that item's result.
func (s *Service) batchItem(
	ctx context.Context,
	path string,
	op filestore.BatchOperation,
	o filestore.DerivativeOverrides,
) (item filestore.BatchItemResult) {
	item = filestore.BatchItemResult{RequestedPath: path}

	defer func() {
		if r := recover(); r != nil {
			item.Found = false
			item.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	var (
		enc *filestore.EncodedFile
		err error
	)

	switch op {
	case filestore.OpRawBase64:
		enc, err = s.GetBase64(ctx, path)
	case filestore.OpThumbnailBase64:
		enc, err = s.GetThumbnailBase64(ctx, path)
	case filestore.OpMobileBase64:
		enc, err = s.GetMobileBase64(ctx, path, o)
	}

	switch {
	case err != nil:
		item.Error = errx.AsErrorX(err).Error()
	case enc == nil:
		item.Error = "file not found"
	default:
		item.Found = true
		item.FileName = enc.FileName
		item.ContentType = enc.ContentType
		item.Base64 = enc.Base64
	}

	return item
}
