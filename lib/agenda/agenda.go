package agenda

import (
	"fmt"
	"log/slog"
	"math"
	"planzajec-backend/lib/schedule"
	"planzajec-backend/lib/timezone"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeAgenda Mode = "agenda"
	ModeWeek   Mode = "week"
)

// ParseMode accepts "agenda" and "week", an empty string means agenda.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAgenda:
		return ModeAgenda, nil
	case ModeWeek:
		return ModeWeek, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

const SchoolHour = 45 * time.Minute

type Indicator struct {
	InProgress bool `json:"inProgress"`
	// Position is the elapsed fraction of the entry, 0 when it is upcoming.
	Position float64 `json:"position"`
}

type Entry struct {
	schedule.Item
	UUID        string     `json:"uuid"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	SchoolHours int        `json:"schoolHours"`
	Category    Category   `json:"category"`
	Online      bool       `json:"online"`
	Indicator   *Indicator `json:"indicator,omitempty"`
}

type Day struct {
	Date    string    `json:"date"`
	Day     time.Time `json:"day"`
	Entries []Entry   `json:"entries"`
}

// SchoolHours is the duration of a session counted in 45 minute units.
func SchoolHours(start, end time.Time) int {
	return int(math.Round(float64(end.Sub(start)) / float64(SchoolHour)))
}

func newEntry(item schedule.Item) (Entry, error) {
	start, err := timezone.ParseDateTime(item.Date, item.StartTime)
	if err != nil {
		return Entry{}, err
	}
	end, err := timezone.ParseDateTime(item.Date, item.EndTime)
	if err != nil {
		return Entry{}, err
	}
	category := CategoryOther
	if item.Type != nil {
		category = CategoryOf(*item.Type)
	}
	return Entry{
		Item:        item,
		UUID:        uuid.NewString(),
		Start:       start,
		End:         end,
		SchoolHours: SchoolHours(start, end),
		Category:    category,
		Online:      IsOnline(item.Location),
	}, nil
}

// Build groups items into calendar days of the reference zone. Entries are
// ordered by start time with ties kept in input order, and at most one entry
// carries an Indicator relative to now.
func Build(items []schedule.Item, mode Mode, now time.Time) []Day {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entry, err := newEntry(item)
		if err != nil {
			slog.Warn("skipping item with unparseable time", "date", item.Date, "start", item.StartTime, "err", err)
			continue
		}
		entries = append(entries, entry)
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Start.Compare(b.Start)
	})

	markCurrent(entries, now)

	days := []Day{}
	for _, entry := range entries {
		if len(days) > 0 && days[len(days)-1].Date == entry.Date {
			last := &days[len(days)-1]
			last.Entries = append(last.Entries, entry)
			continue
		}
		days = append(days, Day{
			Date:    entry.Date,
			Day:     timezone.Day(entry.Start),
			Entries: []Entry{entry},
		})
	}

	if mode == ModeWeek {
		return fillWeeks(days)
	}
	return days
}

func markCurrent(entries []Entry, now time.Time) {
	now = now.In(timezone.Location)
	for i := range entries {
		entry := &entries[i]
		if !timezone.SameDay(entry.Start, now) {
			continue
		}
		if entry.Start.After(now) {
			entry.Indicator = &Indicator{}
			return
		}
		if now.Before(entry.End) {
			position := 0.0
			if duration := entry.End.Sub(entry.Start); duration > 0 {
				position = float64(now.Sub(entry.Start)) / float64(duration)
			}
			entry.Indicator = &Indicator{InProgress: true, Position: position}
			return
		}
	}
}

func fillWeeks(days []Day) []Day {
	if len(days) == 0 {
		return days
	}

	first := timezone.PreviousMonday(days[0].Day)
	last := timezone.NextSunday(days[len(days)-1].Day)

	out := []Day{}
	i := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		date := day.Format(time.DateOnly)
		if i < len(days) && days[i].Date == date {
			out = append(out, days[i])
			i++
			continue
		}
		out = append(out, Day{Date: date, Day: day, Entries: []Entry{}})
	}
	return out
}
