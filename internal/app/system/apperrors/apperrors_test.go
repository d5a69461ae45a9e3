package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusAndMessage(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", Validation("Name is required."), http.StatusBadRequest, "Name is required."},
		{"rule", Rule("Insufficient points."), http.StatusBadRequest, "Insufficient points."},
		{"not found", NotFound("Member not found."), http.StatusNotFound, "Member not found."},
		{"storage", Storage(cause), http.StatusInternalServerError, "Internal server error."},
		{"unclassified", cause, http.StatusInternalServerError, "Internal server error."},
		{"wrapped", fmt.Errorf("redeem: %w", Rule("Membership expired.")), http.StatusBadRequest, "Membership expired."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.wantStatus {
				t.Errorf("Status = %d, want %d", got, tc.wantStatus)
			}
			if got := Message(tc.err); got != tc.wantMsg {
				t.Errorf("Message = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("write conflict")
	err := Storage(cause)

	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable via errors.Is")
	}
	// The cause never reaches the caller-facing message.
	if got := Message(err); got != "Internal server error." {
		t.Errorf("Message = %q", got)
	}
}

func TestIsKind(t *testing.T) {
	err := NotFound("Product not found.")
	if !IsKind(err, KindNotFound) {
		t.Error("IsKind(KindNotFound) = false")
	}
	if IsKind(err, KindRule) {
		t.Error("IsKind(KindRule) = true for a not-found error")
	}
	if IsKind(errors.New("plain"), KindStorage) {
		t.Error("IsKind matched a plain error")
	}
}
