package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

var (
	ErrValidation = errors.New("validation failed")

	validate = val.New(val.WithRequiredStructEnabled())
)

// ValidateStruct checks data against its `validate` tags. The returned error
// wraps ErrValidation and names the first failing field.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, message(err))
	}

	return nil
}
