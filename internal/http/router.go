package http

import (
	nethttp "net/http"

	"mlb-calendar-feed/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The calendar feed is the
// catch-all: calendar clients subscribe with arbitrary paths, and all of them
// get the document. Probe routes are carved out explicitly.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/", handler.Feed)
	return mux
}
