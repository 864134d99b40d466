// Package val provides request schema validation built on
// go-playground/validator.
package val

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate //nolint:gochecknoglobals // single shared validator instance

func init() { //nolint:gochecknoinits // validator registration must happen before first use
	validate = validator.New()
	validate.RegisterTagNameFunc(getTagName)
}

func getValidator() *validator.Validate {
	return validate
}

// getTagName returns the name of a struct field based on its struct tags.
// It checks 'json', 'query', and 'params' tags in that order, and falls
// back to the field name.
func getTagName(fld reflect.StructField) string {
	for _, tagName := range []string{"json", "query", "params"} {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}
