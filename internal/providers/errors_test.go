package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorMessage(t *testing.T) {
	err := &FetchError{Provider: "statsapi", StatusCode: 503, Err: errors.New("service unavailable")}

	msg := err.Error()
	if !strings.Contains(msg, "statsapi") {
		t.Fatalf("expected provider in message, got %s", msg)
	}
	if !strings.Contains(msg, "status=503") {
		t.Fatalf("expected status in message, got %s", msg)
	}
	if !strings.Contains(msg, "service unavailable") {
		t.Fatalf("expected cause in message, got %s", msg)
	}
}

func TestFetchErrorMessageWithoutDetails(t *testing.T) {
	err := &FetchError{}
	if got := err.Error(); got != "schedule fetch failed" {
		t.Fatalf("unexpected message %s", got)
	}
}

func TestAsFetchError(t *testing.T) {
	inner := &FetchError{Provider: "statsapi"}
	wrapped := fmt.Errorf("handling request: %w", inner)

	got, ok := AsFetchError(wrapped)
	if !ok {
		t.Fatal("expected to unwrap FetchError")
	}
	if got != inner {
		t.Fatal("expected identical FetchError instance")
	}

	if _, ok := AsFetchError(errors.New("plain")); ok {
		t.Fatal("expected no FetchError for plain error")
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &FetchError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
}
