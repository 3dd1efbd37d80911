package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type feedStats struct {
	builds           int
	eventsEmitted    int
	recordsSkipped   int
	lastBuildLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// feed builds. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	feed  feedStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a schedule fetch and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordFeedBuild tracks one calendar build: how many events were emitted, how
// many records were skipped as malformed, and how long serialization took.
func (r *Recorder) RecordFeedBuild(events, skipped int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.feed.builds++
	r.feed.eventsEmitted += events
	r.feed.recordsSkipped += skipped
	r.feed.lastBuildLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedBuild(events, skipped, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// FeedSnapshot is a copy of the current feed build stats.
type FeedSnapshot struct {
	Builds           int
	EventsEmitted    int
	RecordsSkipped   int
	LastBuildLatency time.Duration
}

func (r *Recorder) FeedStats() FeedSnapshot {
	if r == nil {
		return FeedSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return FeedSnapshot{
		Builds:           r.feed.builds,
		EventsEmitted:    r.feed.eventsEmitted,
		RecordsSkipped:   r.feed.recordsSkipped,
		LastBuildLatency: r.feed.lastBuildLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
