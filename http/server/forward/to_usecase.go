package forward

import (
	"context"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/fileserve/val"
)

// useCaseMethod is a generic function type for a use case method that takes
// a request and returns a response.
type useCaseMethod[T_Req any, T_Resp any] func(context.Context, T_Req) (T_Resp, error)

// ToUseCase forwards a request to a use case. It handles request decoding,
// validation and JSON response encoding.
func ToUseCase[T_Req any, T_Resp any](uc useCaseMethod[T_Req, T_Resp]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := newRequest[T_Req]()
		if err != nil {
			return errx.Wrap(err)
		}

		if err = decodeBody(c, req); err != nil {
			return errx.Wrap(err)
		}

		if err = decodeQuery(c, req); err != nil {
			return errx.Wrap(err)
		}

		if err = decodePath(c, req); err != nil {
			return errx.Wrap(err)
		}

		if err = val.ValidateSchema(req); err != nil {
			return errx.Wrap(err)
		}

		resp, err := uc(c.UserContext(), req)
		if err != nil {
			return errx.Wrap(err)
		}

		return errx.Wrap(c.JSON(resp))
	}
}
