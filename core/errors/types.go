// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a request validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a failed document fetch (transport error or bad status)
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

// Unwrap exposes the underlying transport error, if any
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ExtractionError represents an article document with no usable content
type ExtractionError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.URL, e.Reason)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
