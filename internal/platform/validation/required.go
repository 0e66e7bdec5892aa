// Package validation decodes request DTOs and checks them with go-playground/validator.
package validation

import (
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank also rejects whitespace-only strings.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// MissingField returns the JSON name of the first field, in declaration
// order, that fails its `validate` rule. ok is false when req is valid.
func MissingField(req any) (field string, ok bool) {
	err := validate.Struct(req)
	if err == nil {
		return "", false
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), true
	}
	return "", true
}

// BindJSON decodes the request body into req. An empty body leaves req
// untouched so that required-field checks report the first missing field.
func BindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
