package planzajec

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"planzajec-backend/lib/schedule"
	"planzajec-backend/lib/timezone"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const CalendarPath = "/calendar/"

func eventSummary(item schedule.Item) string {
	parts := []string{}
	if item.Subject != nil {
		parts = append(parts, *item.Subject)
	}
	if item.Type != nil {
		parts = append(parts, *item.Type)
	}
	return strings.Join(parts, " - ")
}

func eventDescription(item schedule.Item) string {
	lines := []string{}
	for _, l := range item.Lecturers {
		lines = append(lines, l.Label)
	}
	if item.Group != nil {
		lines = append(lines, *item.Group)
	}
	if item.Comment != nil {
		lines = append(lines, *item.Comment)
	}
	return strings.Join(lines, "\n")
}

// WriteCalendar serializes the items of every schedule as iCalendar events.
func WriteCalendar(w io.Writer, schedules []schedule.Schedule, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//planzajec//UEK timetable//PL")

	labels := make([]string, len(schedules))
	for i, s := range schedules {
		labels[i] = s.Label
	}
	cal.SetXWRCalName(strings.Join(labels, ", "))
	cal.SetXWRTimezone(timezone.Location.String())

	for _, s := range schedules {
		for i, item := range s.Items {
			start, err := timezone.ParseDateTime(item.Date, item.StartTime)
			if err != nil {
				slog.Warn("skipping calendar event with unparseable time", "schedule", s.ID, "date", item.Date, "err", err)
				continue
			}
			end, err := timezone.ParseDateTime(item.Date, item.EndTime)
			if err != nil {
				slog.Warn("skipping calendar event with unparseable time", "schedule", s.ID, "date", item.Date, "err", err)
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s%s-%s-%d@planzajec.uek.krakow.pl", s.Type, s.ID, start.UTC().Format("20060102T150405Z"), i))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(eventSummary(item))
			if item.Location != nil {
				event.SetLocation(*item.Location)
				if strings.HasPrefix(*item.Location, "http") {
					event.SetURL(*item.Location)
				}
			}
			if description := eventDescription(item); description != "" {
				event.SetDescription(description)
			}
		}
	}

	return cal.SerializeTo(w)
}

// CalendarHandler serves GET /calendar/{ids}.ics?period=N.
func CalendarHandler(s Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ids := strings.TrimSuffix(r.PathValue("ids"), ".ics")
		refs, err := ParseScheduleRefs(ids)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		period, err := ParsePeriod(r.URL.Query().Get("period"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		schedules := s.FetchSchedules(ctx, refs, period)

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, strings.ReplaceAll(ids, "/", "-")))
		err = WriteCalendar(w, schedules, s.clock.Now())
		if err != nil {
			slog.ErrorContext(ctx, "failed to write calendar", "ids", ids, "err", err)
		}
	})
}
