package auth

import (
	"context"
	"strings"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/fileserve/meta"
)

const (
	codeMissingToken = "MISSING_ACCESS_TOKEN"

	bearerPrefix = "Bearer "
)

// NewMiddleware returns a Fiber handler that guards a route group with
// access-token authentication.
//
// On success the token subject is stored both in the request context
// (meta.RequestUserID) and in Fiber locals for request logging. When the
// service config disables authentication the handler passes every request
// through.
func NewMiddleware(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc.cfg.Disable {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return errx.New(
				"missing or malformed authorization header",
				errx.WithCode(codeMissingToken),
				errx.WithType(errx.T_Authentication),
			)
		}

		subject, err := svc.VerifyAccessToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return errx.Wrap(err)
		}

		ctx := context.WithValue(c.UserContext(), meta.RequestUserID, subject)
		c.SetUserContext(ctx)
		c.Locals(meta.RequestUserID, subject)

		return c.Next()
	}
}
