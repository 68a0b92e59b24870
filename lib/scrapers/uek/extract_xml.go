package uek

import (
	"context"
	"fmt"
	"planzajec-backend/lib/schedule"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func roomField(room xmlRoom) (schedule.Field, error) {
	if room.Anchor != nil {
		return schedule.Link(room.Anchor.Href, room.Anchor.Value), nil
	}
	text := strings.TrimSpace(room.Value)
	if !strings.HasPrefix(text, "<a") {
		return schedule.Scalar(text), nil
	}
	href, err := anchorHref(text)
	if err != nil {
		return schedule.Absent, err
	}
	// only the target survives, the room name inside the anchor is not kept
	return schedule.Link(href, ""), nil
}

// ExtractXML reads an XML schedule document into raw fields.
func ExtractXML(ctx context.Context, plan *xmlPlan) (schedule.RawSchedule, error) {
	_, span := tracer.Start(ctx, "ExtractXML")
	defer span.End()

	periods := make([]schedule.Period, len(plan.Periods))
	for i, p := range plan.Periods {
		periods[i] = schedule.Period{
			ID:    strconv.Itoa(i + 1),
			Label: strings.TrimSpace(p.Label),
			From:  strings.TrimSpace(p.From),
			To:    strings.TrimSpace(p.To),
		}
	}

	items := make([]schedule.RawItem, len(plan.Sessions))
	for i, s := range plan.Sessions {
		location, err := roomField(s.Room)
		if err != nil {
			err = &ParseError{Format: FormatXML, Err: fmt.Errorf("zajecia[%d].sala: %w", i, err)}
			span.RecordError(err)
			span.SetStatus(codes.Error, "malformed room link")
			return schedule.RawSchedule{}, err
		}

		lecturers := make([]schedule.RawLecturer, 0, len(s.Lecturers))
		for _, l := range s.Lecturers {
			name := schedule.Scalar(l.Value)
			if name.Kind == schedule.FieldAbsent {
				continue
			}
			lecturers = append(lecturers, schedule.RawLecturer{
				Name:             name,
				ExternalCourseID: strings.TrimSpace(l.Moodle),
			})
		}

		items[i] = schedule.RawItem{
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Subject:   schedule.Scalar(s.Subject),
			Type:      schedule.Scalar(s.Type),
			Lecturers: lecturers,
			Location:  location,
			Group:     schedule.Scalar(s.Group),
			Comment:   schedule.Scalar(s.Remarks),
		}
	}

	span.SetAttributes(attribute.Int("items", len(items)))

	return schedule.RawSchedule{
		ID:               plan.ID,
		Label:            plan.Label,
		ExternalCourseID: plan.ExternalCourseID,
		Periods:          periods,
		Items:            items,
	}, nil
}
