package server

import (
	"testing"

	"mlb-calendar-feed/internal/config"
	"mlb-calendar-feed/internal/providers/fixture"
	"mlb-calendar-feed/internal/providers/statsapi"
	"mlb-calendar-feed/internal/teststubs"
)

func TestFactoryBuildsFixtureProvider(t *testing.T) {
	cfg := config.Load()
	cfg.Provider = "fixture"

	provider := newProviderFactory(nil).build(cfg)
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider, got %T", provider)
	}
}

func TestFactoryDefaultsToStatsAPI(t *testing.T) {
	cfg := config.Load()
	cfg.Provider = "statsapi"

	provider := newProviderFactory(nil).build(cfg)
	if _, ok := provider.(*statsapi.Client); !ok {
		t.Fatalf("expected statsapi client, got %T", provider)
	}

	cfg.Provider = "something-unknown"
	provider = newProviderFactory(nil).build(cfg)
	if _, ok := provider.(*statsapi.Client); !ok {
		t.Fatalf("expected statsapi fallback, got %T", provider)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("StatsAPI", nil); got != "statsapi" {
		t.Fatalf("expected statsapi, got %s", got)
	}
	if got := normalizeProviderName("", &teststubs.StubProvider{}); got == "" || got == "provider" {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}
