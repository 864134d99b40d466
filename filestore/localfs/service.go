// Package localfs implements filestore.Retriever over a local directory
// tree: safe path resolution, metadata, image derivatives and concurrent
// batch retrieval.
package localfs

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/filestore/processor"
	"github.com/rise-and-shine/fileserve/observability/logger"
)

// Service is the local filesystem retriever. It owns no mutable state
// beyond its immutable configuration and is safe for concurrent use.
type Service struct {
	cfg      Config
	resolver *Resolver
	proc     *processor.Processor
	log      logger.Logger
}

var _ filestore.Retriever = (*Service)(nil)

// NewService canonicalizes the configured root and returns a ready Service.
func NewService(cfg Config, log logger.Logger) (*Service, error) {
	resolver, err := NewResolver(cfg.RootPath, cfg.AllowedExtensions)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Service{
		cfg:      cfg,
		resolver: resolver,
		proc:     processor.New(),
		log:      log.Named("localfs"),
	}, nil
}

// GetRaw returns the file bytes and declared content type, or nil when the
// path does not resolve.
func (s *Service) GetRaw(ctx context.Context, path string) (*filestore.FileContent, error) {
	rf, data, err := s.read(ctx, path)
	if err != nil || rf == nil {
		return nil, err
	}

	return &filestore.FileContent{
		Data:        data,
		ContentType: filestore.Classify(rf.Extension).MIME,
		FileName:    filepath.Base(rf.AbsolutePath),
	}, nil
}

// GetMetadata returns descriptive metadata, or nil when the path does not
// resolve.
func (s *Service) GetMetadata(ctx context.Context, path string) (*filestore.FileMetadata, error) {
	rf, err := s.resolver.Resolve(path)
	if err != nil || rf == nil {
		return nil, errx.Wrap(err)
	}

	md, err := describe(rf)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return md, nil
}

// GetBase64 returns the file content base64-encoded.
func (s *Service) GetBase64(ctx context.Context, path string) (*filestore.EncodedFile, error) {
	fc, err := s.GetRaw(ctx, path)
	if err != nil || fc == nil {
		return nil, err
	}
	return encodeContent(fc), nil
}

// GetThumbnail returns the file shrunk to the configured thumbnail bounds.
func (s *Service) GetThumbnail(ctx context.Context, path string) (*filestore.FileContent, error) {
	return s.derivative(ctx, path, s.thumbnailSpec())
}

// GetMobile returns the file shrunk to the mobile bounds, honoring any
// caller-supplied overrides.
func (s *Service) GetMobile(ctx context.Context, path string, o filestore.DerivativeOverrides) (*filestore.FileContent, error) {
	spec, err := s.mobileSpec(o)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return s.derivative(ctx, path, spec)
}

// GetThumbnailBase64 combines GetThumbnail with base64 encoding.
func (s *Service) GetThumbnailBase64(ctx context.Context, path string) (*filestore.EncodedFile, error) {
	fc, err := s.GetThumbnail(ctx, path)
	if err != nil || fc == nil {
		return nil, err
	}
	return encodeContent(fc), nil
}

// GetMobileBase64 combines GetMobile with base64 encoding.
func (s *Service) GetMobileBase64(ctx context.Context, path string, o filestore.DerivativeOverrides) (*filestore.EncodedFile, error) {
	fc, err := s.GetMobile(ctx, path, o)
	if err != nil || fc == nil {
		return nil, err
	}
	return encodeContent(fc), nil
}

// derivative retrieves the file and applies the derivative spec. Transform
// failures fall back to the original bytes: image processing is a value-add,
// never a reason to fail the request.
func (s *Service) derivative(ctx context.Context, path string, spec filestore.DerivativeSpec) (*filestore.FileContent, error) {
	rf, data, err := s.read(ctx, path)
	if err != nil || rf == nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errx.Wrap(err)
	}

	mt := filestore.Classify(rf.Extension)

	out, err := s.proc.Transform(data, mt, spec)
	if err != nil {
		s.log.With("path", rf.RelativePath, "format", mt.Format.String()).
			Warnx(errx.Wrap(err))
		out = data
	}

	return &filestore.FileContent{
		Data:        out,
		ContentType: mt.MIME,
		FileName:    filepath.Base(rf.AbsolutePath),
	}, nil
}

// read resolves the path and loads the file bytes. A nil ResolvedFile with
// nil error means not found.
func (s *Service) read(ctx context.Context, path string) (*filestore.ResolvedFile, []byte, error) {
	rf, err := s.resolver.Resolve(path)
	if err != nil || rf == nil {
		return nil, nil, errx.Wrap(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, errx.Wrap(err)
	}

	data, err := os.ReadFile(rf.AbsolutePath)
	if err != nil {
		// Resolution confirmed existence, so this is a race or an I/O
		// fault, not a client mistake.
		return nil, nil, errx.Wrap(err,
			errx.WithCode(filestore.CodeReadFailed),
			errx.WithType(errx.T_Internal),
		)
	}

	return rf, data, nil
}

// thumbnailSpec builds the thumbnail preset from the config.
func (s *Service) thumbnailSpec() filestore.DerivativeSpec {
	return filestore.DerivativeSpec{
		MaxWidth:  s.cfg.ThumbnailMaxWidth,
		MaxHeight: s.cfg.ThumbnailMaxHeight,
		Quality:   s.cfg.CompressionQuality,
	}
}

// mobileSpec builds the mobile preset, applying caller overrides. Overrides
// are validated here so out-of-range values never reach the processor.
func (s *Service) mobileSpec(o filestore.DerivativeOverrides) (filestore.DerivativeSpec, error) {
	spec := filestore.DerivativeSpec{
		MaxWidth:  s.cfg.MobileMaxWidth,
		MaxHeight: s.cfg.MobileMaxHeight,
		Quality:   s.cfg.CompressionQuality,
	}

	if o.Width < 0 || o.Height < 0 {
		return spec, errx.New(
			"derivative dimensions must be positive",
			errx.WithCode(filestore.CodeInvalidDimensions),
			errx.WithType(errx.T_Validation),
		)
	}
	if o.Width > 0 {
		spec.MaxWidth = o.Width
	}
	if o.Height > 0 {
		spec.MaxHeight = o.Height
	}

	if o.Quality != 0 {
		if o.Quality < 1 || o.Quality > 100 {
			return spec, errx.New(
				"compression quality must be in [1, 100]",
				errx.WithCode(filestore.CodeInvalidQuality),
				errx.WithType(errx.T_Validation),
			)
		}
		spec.Quality = o.Quality
	}

	return spec, nil
}

func encodeContent(fc *filestore.FileContent) *filestore.EncodedFile {
	return &filestore.EncodedFile{
		FileName:    fc.FileName,
		ContentType: fc.ContentType,
		Base64:      base64.StdEncoding.EncodeToString(fc.Data),
	}
}
