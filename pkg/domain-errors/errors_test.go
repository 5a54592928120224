package dErrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapSatisfiesErrorInterface(t *testing.T) {
	cause := errors.New("connection refused")

	var err error = Wrap(CodeUnavailable, cause)

	if err.Error() != "unavailable: connection refused" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the cause to stay in the unwrap chain")
	}
}

func TestHasCode(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"plain coded error", New(CodeNotFound, "no such prisoner"), CodeNotFound, true},
		{"plain coded error, wrong code", New(CodeNotFound, "no such prisoner"), CodeConflict, false},
		{"wrapped cause", Wrap(CodeUnavailable, cause), CodeUnavailable, true},
		{"wrapped a second time with fmt", fmt.Errorf("fetch profile: %w", Wrap(CodeUnavailable, cause)), CodeUnavailable, true},
		{"uncoded error", cause, CodeUnavailable, false},
		{"nil error", nil, CodeUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Fatalf("HasCode(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	cause := errors.New("boom")

	if got := GetCode(Wrap(CodeUnavailable, cause)); got != CodeUnavailable {
		t.Fatalf("expected %s, got %s", CodeUnavailable, got)
	}
	if got := GetCode(fmt.Errorf("outer: %w", New(CodeForbidden, "nope"))); got != CodeForbidden {
		t.Fatalf("expected %s, got %s", CodeForbidden, got)
	}
	if got := GetCode(cause); got != CodeInternal {
		t.Fatalf("expected uncoded errors to default to %s, got %s", CodeInternal, got)
	}
}

func TestToHTTPStatus(t *testing.T) {
	if got := ToHTTPStatus(CodeUnavailable); got != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", got)
	}
	if got := ToHTTPStatus(Code("unknown")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown codes, got %d", got)
	}
}
