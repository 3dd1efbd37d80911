package handlers

import (
	"log/slog"
	nethttp "net/http"
	"sync"
	"time"

	"mlb-calendar-feed/internal/calendar"
	"mlb-calendar-feed/internal/logging"
	"mlb-calendar-feed/internal/metrics"
	"mlb-calendar-feed/internal/providers"
)

// Handler wires HTTP routes to the fetch/normalize/build pipeline.
type Handler struct {
	provider     providers.ScheduleProvider
	providerName string
	builder      *calendar.Builder
	filename     string
	logger       *slog.Logger
	metrics      *metrics.Recorder

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of upstream fetches, for readiness probes.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether traffic should be routed here. Before any fetch has
// been attempted the service is considered ready; afterwards the last attempt
// decides.
func (s Status) IsReady() bool {
	if s.LastAttempt.IsZero() {
		return true
	}
	return s.ConsecutiveFailures == 0
}

// NewHandler constructs a Handler.
func NewHandler(provider providers.ScheduleProvider, providerName string, builder *calendar.Builder, filename string, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		provider:     provider,
		providerName: providerName,
		builder:      builder,
		filename:     filename,
		logger:       logger,
		metrics:      recorder,
	}
}

// Feed fetches the season schedule and serves it as an iCalendar document.
// It is the catch-all route: subscribing clients hit it with arbitrary paths.
func (h *Handler) Feed(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
		return
	}

	logger := loggerFromContext(r, h.logger)

	start := time.Now()
	records, err := h.provider.FetchSchedule(r.Context(), 0)
	duration := time.Since(start)
	h.metrics.RecordProviderAttempt(h.providerName, duration, err)
	h.recordAttempt(err)

	if err != nil {
		logging.Error(logger, "schedule fetch failed", err,
			slog.String(logging.FieldProvider, h.providerName),
		)
		// Plain-text failure body carrying the cause; no calendar bytes.
		nethttp.Error(w, "Error fetching MLB data: "+err.Error(), nethttp.StatusInternalServerError)
		return
	}

	doc := h.builder.Build(records)

	logging.Info(logger, "serving calendar feed",
		slog.String(logging.FieldProvider, h.providerName),
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", "inline; filename="+h.filename)
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logging.Error(logger, "failed to write calendar body", err)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on recent upstream fetch health.
// Probes never trigger upstream calls.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	status := h.Status()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}

	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Status returns a copy of the current fetch health.
func (h *Handler) Status() Status {
	h.statusMu.RLock()
	defer h.statusMu.RUnlock()
	return h.status
}

func (h *Handler) recordAttempt(err error) {
	h.statusMu.Lock()
	defer h.statusMu.Unlock()

	now := time.Now()
	h.status.LastAttempt = now
	if err != nil {
		h.status.ConsecutiveFailures++
		h.status.LastError = err.Error()
		return
	}
	h.status.ConsecutiveFailures = 0
	h.status.LastError = ""
	h.status.LastSuccess = now
}
