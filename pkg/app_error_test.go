package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	simple := NewDomainErrorSimple("QUOTE_INVALID", "Quote failed validation", http.StatusUnprocessableEntity).
		WithDetails([]string{"reference is required"})
	body := simple.ToHTTPError()
	if body.Code != "QUOTE_INVALID" || len(body.Details) != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
	if simple.Error() != "QUOTE_INVALID: Quote failed validation" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
