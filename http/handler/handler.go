// Package handler wires the HTTP routes of the file retrieval API.
//
// JSON endpoints are forwarded to use cases through the forward package;
// binary endpoints (raw file and image derivatives) write the payload bytes
// directly with the appropriate content type and cache headers.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/fileserve/auth"
	"github.com/rise-and-shine/fileserve/files"
	"github.com/rise-and-shine/fileserve/filestore"
	"github.com/rise-and-shine/fileserve/http/server/forward"
	"github.com/rise-and-shine/fileserve/observability/logger"
)

// Config controls response caching headers on binary endpoints.
type Config struct {
	// EnableResponseCaching toggles Cache-Control headers on raw and
	// derivative responses.
	EnableResponseCaching bool `yaml:"enable_response_caching" default:"true"`

	// CacheDurationSeconds is the max-age advertised to clients.
	CacheDurationSeconds int `yaml:"cache_duration_seconds" validate:"gte=0" default:"86400"`
}

// Handler registers all HTTP routes of the service.
type Handler struct {
	cfg     Config
	store   filestore.Retriever
	authSvc *auth.Service
	log     logger.Logger
}

func New(cfg Config, store filestore.Retriever, authSvc *auth.Service, log logger.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		store:   store,
		authSvc: authSvc,
		log:     log.Named("http.handler"),
	}
}

// RegisterRoutes mounts every route on the given router.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/healthz", h.health)

	authGroup := r.Group("/v1/auth")
	authGroup.Post("/login", forward.ToUseCase(auth.NewLogin(h.authSvc).Execute))
	authGroup.Post("/refresh", forward.ToUseCase(auth.NewRefresh(h.authSvc).Execute))

	filesGroup := r.Group("/v1/files", auth.NewMiddleware(h.authSvc))

	// Binary endpoints.
	filesGroup.Get("/raw", h.getRaw)
	filesGroup.Get("/thumbnail", h.getThumbnail)
	filesGroup.Get("/mobile", h.getMobile)

	// JSON endpoints.
	filesGroup.Get("/base64", forward.ToUseCase(files.NewGetBase64(h.store).Execute))
	filesGroup.Get("/thumbnail-base64", forward.ToUseCase(files.NewGetThumbnailBase64(h.store).Execute))
	filesGroup.Get("/mobile-base64", forward.ToUseCase(files.NewGetMobileBase64(h.store).Execute))
	filesGroup.Get("/meta", forward.ToUseCase(files.NewGetMetadata(h.store).Execute))
	filesGroup.Get("/list", forward.ToUseCase(files.NewListFiles(h.store).Execute))
	filesGroup.Post("/batch", forward.ToUseCase(files.NewBatchFetch(h.store).Execute))
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
