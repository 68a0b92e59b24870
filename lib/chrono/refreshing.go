package chrono

import (
	"fmt"
	"log/slog"
	"planzajec-backend/lib/timezone"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// RefreshInterval is how often a started Refreshing clock re-reads its source.
const RefreshInterval = time.Minute

// Refreshing is a process-wide "last known current time". Readers always see a
// whole value, it is swapped atomically by a cron job and by Invalidate.
// Until Start is called every read refreshes the value.
type Refreshing struct {
	source  func() time.Time
	current atomic.Pointer[time.Time]
	cron    *cron.Cron
	started atomic.Bool
}

// NewRefreshing creates a clock backed by `source`, timezone.Now when nil.
func NewRefreshing(source func() time.Time) *Refreshing {
	if source == nil {
		source = timezone.Now
	}
	r := &Refreshing{source: source}
	r.Invalidate()
	return r
}

// Start begins refreshing every interval, it is a no-op if already started.
func (r *Refreshing) Start(interval time.Duration) error {
	if !r.started.CompareAndSwap(false, true) {
		return nil
	}

	r.cron = cron.New(
		cron.WithLogger(cronLogger{}),
		cron.WithLocation(timezone.Location),
	)
	_, err := r.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		r.Invalidate()
	})
	if err != nil {
		r.started.Store(false)
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the refresh job, reads go back to refreshing lazily.
func (r *Refreshing) Stop() {
	if !r.started.Load() {
		return
	}
	<-r.cron.Stop().Done()
	r.started.Store(false)
}

// Invalidate re-reads the source immediately and returns the new value.
func (r *Refreshing) Invalidate() time.Time {
	now := r.source().In(timezone.Location)
	r.current.Store(&now)
	return now
}

func (r *Refreshing) Now() time.Time {
	if !r.started.Load() {
		return r.Invalidate()
	}
	return *r.current.Load()
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(fmt.Sprintf("cron: %s", msg), keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error(fmt.Sprintf("cron: %s", msg), append([]any{"err", err}, keysAndValues...)...)
}
