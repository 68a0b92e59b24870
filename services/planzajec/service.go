package planzajec

import (
	"context"
	"log/slog"
	"planzajec-backend/lib/agenda"
	"planzajec-backend/lib/chrono"
	"planzajec-backend/lib/schedule"
	"planzajec-backend/lib/scrapers/uek"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("planzajec.services.planzajec")

var droppedSchedules, _ = otel.Meter("planzajec.services.planzajec").Int64Counter(
	"dropped_schedules",
	metric.WithDescription("Number of requested schedules left out of a response because their pipeline failed."),
)

type Options struct {
	Format            uek.Format
	CategoryCacheSize int
	CategoryCacheTTL  time.Duration
}

type Service struct {
	client     *uek.Client
	clock      chrono.ClockSource
	format     uek.Format
	categories *expirable.LRU[string, []uek.Category]
	details    *expirable.LRU[string, uek.CategoryDetail]
}

func NewService(client *uek.Client, clock chrono.ClockSource, opts Options) Service {
	if clock == nil {
		clock = chrono.System{}
	}
	if opts.CategoryCacheSize <= 0 {
		opts.CategoryCacheSize = 256
	}
	if opts.CategoryCacheTTL <= 0 {
		// category listings change a few times per semester
		opts.CategoryCacheTTL = time.Hour * 6
	}
	return Service{
		client:     client,
		clock:      clock,
		format:     opts.Format,
		categories: expirable.NewLRU[string, []uek.Category](4, nil, opts.CategoryCacheTTL),
		details:    expirable.NewLRU[string, uek.CategoryDetail](opts.CategoryCacheSize, nil, opts.CategoryCacheTTL),
	}
}

// FetchSchedules runs one pipeline per ref concurrently. A failing ref is
// logged and left out, the survivors keep the order they were requested in.
func (s Service) FetchSchedules(ctx context.Context, refs []ScheduleRef, period string) []schedule.Schedule {
	ctx, span := tracer.Start(ctx, "FetchSchedules")
	defer span.End()

	results := make([]*schedule.Schedule, len(refs))
	wg := sync.WaitGroup{}
	for i, ref := range refs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := s.client.GetSchedule(ctx, ref.Type, ref.ID, period, s.format)
			if err != nil {
				slog.WarnContext(ctx, "dropping schedule", "id", ref.String(), "period", period, "err", err)
				if droppedSchedules != nil {
					droppedSchedules.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(ref.Type))))
				}
				return
			}
			results[i] = &result
		}()
	}
	wg.Wait()

	out := make([]schedule.Schedule, 0, len(refs))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	span.SetAttributes(
		attribute.Int("requested", len(refs)),
		attribute.Int("returned", len(out)),
	)
	return out
}

// Group merges the items of all schedules into day groups relative to the
// service clock.
func (s Service) Group(schedules []schedule.Schedule, mode agenda.Mode) []agenda.Day {
	var items []schedule.Item
	for _, sch := range schedules {
		items = append(items, sch.Items...)
	}
	return agenda.Build(items, mode, s.clock.Now())
}

func (s Service) Categories(ctx context.Context) ([]uek.Category, error) {
	key := s.format.String()
	if cached, ok := s.categories.Get(key); ok {
		return cached, nil
	}
	categories, err := s.client.GetCategories(ctx, s.format)
	if err != nil {
		return nil, err
	}
	s.categories.Add(key, categories)
	return categories, nil
}

func (s Service) CategoryDetail(ctx context.Context, typ schedule.Type, label string) (uek.CategoryDetail, error) {
	key := s.format.String() + "/" + string(typ) + "/" + label
	if cached, ok := s.details.Get(key); ok {
		return cached, nil
	}
	detail, err := s.client.GetCategoryDetail(ctx, typ, label, s.format)
	if err != nil {
		return uek.CategoryDetail{}, err
	}
	s.details.Add(key, detail)
	return detail, nil
}

type invalidator interface {
	Invalidate() time.Time
}

// RefreshClock forces the clock to re-read the current time when it caches
// it, and returns the time the service now considers current.
func (s Service) RefreshClock() time.Time {
	if inv, ok := s.clock.(invalidator); ok {
		return inv.Invalidate()
	}
	return s.clock.Now()
}
