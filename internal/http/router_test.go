package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"mlb-calendar-feed/internal/calendar"
	"mlb-calendar-feed/internal/domain/schedule"
	"mlb-calendar-feed/internal/http/handlers"
	"mlb-calendar-feed/internal/metrics"
	"mlb-calendar-feed/internal/teststubs"
)

func testRouter() (*teststubs.StubProvider, *httptest.Server) {
	stub := &teststubs.StubProvider{
		Games: []schedule.Game{
			{
				GamePk:        12345,
				GameDate:      "2024-03-28T20:10:00Z",
				DetailedState: "Scheduled",
				Home:          schedule.Team{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA"},
				Away:          schedule.Team{ID: 108, Name: "Los Angeles Angels", Abbreviation: "LAA"},
				Venue:         "T-Mobile Park",
			},
		},
	}
	builder := calendar.NewBuilder(calendar.Config{
		TeamID:          136,
		TeamName:        "Seattle Mariners",
		DisplayName:     "Mariners (Live)",
		HomeVenue:       "T-Mobile Park",
		ProdID:          "-//Mariners Schedule//mxm.dk//",
		RefreshInterval: "PT1H",
	}, nil, metrics.NewRecorder())
	handler := handlers.NewHandler(stub, "stub", builder, "mariners_live.ics", nil, metrics.NewRecorder())
	return stub, httptest.NewServer(NewRouter(handler))
}

func TestRouterServesFeedOnRootAndArbitraryPaths(t *testing.T) {
	stub, srv := testRouter()
	defer srv.Close()

	for _, path := range []string{"/", "/mariners.ics", "/some/deep/path"} {
		resp, err := srv.Client().Get(srv.URL + path)
		if err != nil {
			t.Fatalf("request %s failed: %v", path, err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("path %s: expected 200, got %d", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "text/calendar" {
			t.Fatalf("path %s: expected text/calendar, got %s", path, ct)
		}
		resp.Body.Close()
	}

	if stub.Calls.Load() != 3 {
		t.Fatalf("expected one fetch per request, got %d", stub.Calls.Load())
	}
}

func TestRouterProbeRoutesDoNotFetch(t *testing.T) {
	stub, srv := testRouter()
	defer srv.Close()

	for _, path := range []string{"/health", "/ready"} {
		resp, err := srv.Client().Get(srv.URL + path)
		if err != nil {
			t.Fatalf("request %s failed: %v", path, err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("path %s: expected 200, got %d", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("path %s: expected json, got %s", path, ct)
		}
		resp.Body.Close()
	}

	if stub.Calls.Load() != 0 {
		t.Fatalf("probes must not hit upstream, got %d calls", stub.Calls.Load())
	}
}
