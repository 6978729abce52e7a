// Package validator adapts go-playground/validator to echo's Validator
// interface. Request DTOs declare their rules once as struct tags; a failed
// validation yields a structured field->rule map instead of free-form prose.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidationError carries the per-field rule failures for a request payload.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, field+": "+rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// CustomValidator implements echo.Validator on top of validator/v10.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the shared request validator. Field names in error maps come
// from the json tag so they match what the client actually sent.
func New() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks the struct's declared rules and converts failures into a
// ValidationError with one entry per offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}

		return &ValidationError{Fields: fields}
	}

	return errors.Wrap(err, "failed to validate request")
}
