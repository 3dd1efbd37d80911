package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_KEY", "value")
	if got := envOrDefault("CFG_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
	if got := envOrDefault("CFG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_DURATION", "5s")
	if got := durationEnvOrDefault("CFG_TEST_DURATION", time.Minute); got != 5*time.Second {
		t.Fatalf("expected 5s, got %v", got)
	}

	t.Setenv("CFG_TEST_DURATION", "not-a-duration")
	if got := durationEnvOrDefault("CFG_TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected default on parse failure, got %v", got)
	}

	t.Setenv("CFG_TEST_DURATION", "-2s")
	if got := durationEnvOrDefault("CFG_TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected default on non-positive duration, got %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		"0":     false,
		"false": false,
		"no":    false,
		"maybe": true, // falls back to default
	}
	for raw, want := range cases {
		t.Setenv("CFG_TEST_BOOL", raw)
		if got := boolEnvOrDefault("CFG_TEST_BOOL", true); got != want {
			t.Fatalf("raw %q: expected %v, got %v", raw, want, got)
		}
	}
}
