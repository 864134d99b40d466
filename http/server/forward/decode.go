package forward

import (
	"reflect"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
)

// newRequest creates a new request of type T_Req.
// It ensures that T_Req is a pointer to a struct.
func newRequest[T_Req any]() (T_Req, error) {
	var req T_Req

	reqType := reflect.TypeOf((*T_Req)(nil)).Elem()
	if reqType.Kind() != reflect.Ptr || reqType.Elem().Kind() != reflect.Struct {
		return req, errx.New("T_Req must be a pointer to a use case input struct")
	}

	reqVal := reflect.New(reqType.Elem()).Interface().(T_Req) //nolint:errcheck // safe type assertion
	return reqVal, nil
}

// decodeBody decodes the request body into the given request struct.
// It only decodes if the content type is application/json.
func decodeBody[T_Req any](c *fiber.Ctx, req T_Req) error {
	if len(c.Body()) == 0 {
		return nil // No body to decode
	}

	if c.Get(fiber.HeaderContentType) != fiber.MIMEApplicationJSON {
		return errx.New(
			"content type must be application/json for this request",
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidContentType),
		)
	}

	if err := c.BodyParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidJSONBody),
		)
	}

	return nil
}

// decodeQuery decodes the query params into the given request struct.
func decodeQuery[T_Req any](c *fiber.Ctx, req T_Req) error {
	if len(c.Queries()) == 0 {
		return nil // No query params to decode
	}

	if err := c.QueryParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidQueryParams),
		)
	}

	return nil
}

// decodePath decodes the path params into the given request struct.
func decodePath[T_Req any](c *fiber.Ctx, req T_Req) error {
	if len(c.AllParams()) == 0 {
		return nil // No path params to decode
	}

	if err := c.ParamsParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidPathParams),
		)
	}

	return nil
}
