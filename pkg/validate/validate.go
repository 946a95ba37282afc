package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct checks the `validate` tags on a request DTO.
func Struct(s any) error {
	return v.Struct(s)
}
