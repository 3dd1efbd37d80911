package calendar

import (
	"log/slog"
	"time"

	ics "github.com/arran4/golang-ical"

	"mlb-calendar-feed/internal/domain/schedule"
	"mlb-calendar-feed/internal/logging"
	"mlb-calendar-feed/internal/metrics"
)

// Config carries the feed-level identity stamped onto every document.
type Config struct {
	TeamID          int
	TeamName        string
	DisplayName     string
	HomeVenue       string
	ProdID          string
	RefreshInterval string
}

// Builder turns schedule records into a serialized iCalendar document.
type Builder struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewBuilder constructs a Builder with a real clock.
func NewBuilder(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Builder {
	return &Builder{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Build renders the records, in input order, into an iCalendar document.
// Records without a gameDate are dropped silently; a record whose date fails
// to parse is skipped with a warning so one bad record cannot blank the whole
// season's feed. Build itself never fails: an empty record list still yields
// a valid document carrying the feed metadata.
func (b *Builder) Build(records []schedule.Game) []byte {
	start := time.Now()

	cal := ics.NewCalendar()
	cal.SetProductId(b.cfg.ProdID)
	cal.SetVersion("2.0")
	cal.SetXWRCalName(b.cfg.DisplayName)
	cal.SetRefreshInterval(b.cfg.RefreshInterval)

	stamp := b.now().UTC()
	emitted, skipped := 0, 0

	for _, record := range records {
		if !record.HasDate() {
			skipped++
			continue
		}

		ev, err := b.mapRecord(record)
		if err != nil {
			skipped++
			logging.Warn(b.logger, "skipping malformed schedule record",
				slog.String(logging.FieldGamePk, record.UID()),
				slog.Any("error", err),
			)
			continue
		}

		vevent := cal.AddEvent(ev.uid)
		vevent.SetSummary(ev.summary)
		vevent.SetLocation(ev.location)
		vevent.SetDescription(ev.description)
		vevent.SetStartAt(ev.start)
		vevent.SetEndAt(ev.end)
		vevent.SetDtStampTime(stamp)
		emitted++
	}

	doc := []byte(cal.Serialize())
	b.metrics.RecordFeedBuild(emitted, skipped, time.Since(start))
	return doc
}
