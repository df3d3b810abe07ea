package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("book not found")
	ErrMissingFile      = errors.New("no file uploaded")

	// Upload rejections are validation failures too.
	ErrInvalidMediaType = fmt.Errorf("%w: unsupported media type", ErrValidationFailed)
	ErrPayloadTooLarge  = fmt.Errorf("%w: payload too large", ErrValidationFailed)

	ErrUpstreamStoreFailure = errors.New("upstream store failure")
)

// FieldError names one rejected field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the human-readable reasons a request was rejected.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// PayloadTooLargeError rejects an upload larger than Max bytes.
type PayloadTooLargeError struct {
	Max int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("File too large (max %d bytes)", e.Max)
}

func (e *PayloadTooLargeError) Unwrap() error { return ErrPayloadTooLarge }

// Invalid builds a ValidationError for a single field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
