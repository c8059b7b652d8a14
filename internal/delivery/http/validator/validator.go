// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for use as echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with struct-tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Tag failures are collected into a
// RequestError with one human-readable message per failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return &RequestError{Messages: messages}
}

// RequestError carries the per-field messages of a failed request validation.
type RequestError struct {
	Messages []string
}

func (e *RequestError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// describe turns a field error into the message shown to the client.
func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		return "Enter a valid email"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters long"
		}

		return "Password is required"
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Enter a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters long"
	default:
		return fe.Field() + " is invalid"
	}
}
