package errors

import (
	"errors"
	"testing"
)

func TestIsValidation_MatchesWrappedError(t *testing.T) {
	err := WrapError(&ValidationError{Field: "query", Message: "required"}, "search")

	if !IsValidation(err) {
		t.Error("IsValidation should match a wrapped ValidationError")
	}
	if IsFetch(err) || IsExtraction(err) {
		t.Error("error matched the wrong category")
	}
}

func TestFetchError_UnwrapsCause(t *testing.T) {
	cause := errors.New("timeout")
	err := &FetchError{URL: "https://example.com", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}

func TestFetchError_StatusMessage(t *testing.T) {
	err := &FetchError{URL: "https://example.com", StatusCode: 503}

	if err.Error() != "fetch https://example.com: status 503" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapError_NilPassesThrough(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}
}
