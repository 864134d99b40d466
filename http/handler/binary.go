package handler

import (
	"fmt"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/fileserve/files"
	"github.com/rise-and-shine/fileserve/filestore"
)

const codeMissingPath = "MISSING_PATH_PARAM"

// getRaw serves the stored file bytes unchanged.
func (h *Handler) getRaw(c *fiber.Ctx) error {
	path, err := requirePath(c)
	if err != nil {
		return errx.Wrap(err)
	}

	content, err := h.store.GetRaw(c.UserContext(), path)
	if err != nil {
		return errx.Wrap(err)
	}

	return h.writeContent(c, path, content)
}

// getThumbnail serves the thumbnail derivative bytes.
func (h *Handler) getThumbnail(c *fiber.Ctx) error {
	path, err := requirePath(c)
	if err != nil {
		return errx.Wrap(err)
	}

	content, err := h.store.GetThumbnail(c.UserContext(), path)
	if err != nil {
		return errx.Wrap(err)
	}

	return h.writeContent(c, path, content)
}

// getMobile serves the mobile derivative bytes, honoring optional
// width/height/quality query overrides.
func (h *Handler) getMobile(c *fiber.Ctx) error {
	path, err := requirePath(c)
	if err != nil {
		return errx.Wrap(err)
	}

	overrides := filestore.DerivativeOverrides{
		Width:   c.QueryInt("width"),
		Height:  c.QueryInt("height"),
		Quality: c.QueryInt("quality"),
	}

	content, err := h.store.GetMobile(c.UserContext(), path, overrides)
	if err != nil {
		return errx.Wrap(err)
	}

	return h.writeContent(c, path, content)
}

// writeContent writes a binary payload with content type, disposition and
// cache headers. A nil payload maps to a not-found error.
func (h *Handler) writeContent(c *fiber.Ctx, path string, content *filestore.FileContent) error {
	if content == nil {
		return files.NotFound(path)
	}

	c.Set(fiber.HeaderContentType, content.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", content.FileName))

	if h.cfg.EnableResponseCaching {
		c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", h.cfg.CacheDurationSeconds))
	} else {
		c.Set(fiber.HeaderCacheControl, "no-store")
	}

	return c.Send(content.Data)
}

func requirePath(c *fiber.Ctx) (string, error) {
	path := c.Query("path")
	if path == "" {
		return "", errx.New(
			"query parameter 'path' is required",
			errx.WithCode(codeMissingPath),
			errx.WithType(errx.T_Validation),
		)
	}
	return path, nil
}
