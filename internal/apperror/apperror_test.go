package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := New(tc.kind, "x").StatusCode(); got != tc.want {
			t.Fatalf("kind %v status = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestFromPassesThroughClassifiedErrors(t *testing.T) {
	original := Conflict("User already exists")
	wrapped := From(original)
	if wrapped != original {
		t.Fatalf("expected same *AppError back, got %+v", wrapped)
	}

	// Classified errors survive wrapping in plain error chains.
	chained := From(errors.Join(errors.New("outer"), original))
	if chained.Kind != KindConflict {
		t.Fatalf("expected conflict preserved through chain, got %v", chained.Kind)
	}
}

func TestFromNormalizesUnknownErrors(t *testing.T) {
	got := From(errors.New("pq: connection refused"))
	if got.Kind != KindInternal {
		t.Fatalf("expected internal kind, got %v", got.Kind)
	}
	if got.Message != "Internal Server Error" {
		t.Fatalf("internal message must not leak detail, got %q", got.Message)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(KindInternal, "saving failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause reachable via errors.Is")
	}
	if err.Error() != "saving failed: disk full" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestWithDetails(t *testing.T) {
	err := BadRequest("Validation failed").WithDetails(map[string]string{"username": "required"})
	details, ok := err.Details.(map[string]string)
	if !ok || details["username"] != "required" {
		t.Fatalf("unexpected details %+v", err.Details)
	}
}
