package schedule

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex   = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isoDateRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRegex.MatchString(fl.Field().String())
	})
	return v
}

type scheduleRules struct {
	Type  Type   `json:"type" validate:"required,oneof=G N S"`
	ID    string `json:"id" validate:"required"`
	Label string `json:"label" validate:"required"`
}

type itemRules struct {
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
	Type      string `json:"type" validate:"required"`
}

func collect(out *[]FieldError, item int, err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		*out = append(*out, FieldError{Item: item, Field: "-", Reason: err.Error()})
		return
	}
	for _, fe := range verrs {
		reason := fe.Tag()
		switch fe.Tag() {
		case "required":
			reason = "is required"
		case "isodate":
			reason = "must be formatted as YYYY-MM-DD"
		case "clock":
			reason = "must be formatted as HH:MM"
		case "oneof":
			reason = "must be one of " + fe.Param()
		}
		*out = append(*out, FieldError{Item: item, Field: fe.Field(), Reason: reason})
	}
}

func optional(f Field) *string {
	value := strings.TrimSpace(f.Value())
	if value == "" {
		return nil
	}
	return &value
}

func optionalString(s string) *string {
	return optional(Scalar(s))
}

func normalizeLecturers(raw []RawLecturer) []Lecturer {
	out := make([]Lecturer, 0, len(raw))
	for _, l := range raw {
		label := strings.TrimSpace(l.Name.Label())
		if label == "" {
			continue
		}
		lecturer := Lecturer{
			Label:            label,
			ExternalCourseID: optionalString(l.ExternalCourseID),
		}
		if l.Name.Kind == FieldLink {
			lecturer.URL = optionalString(l.Name.Href)
		} else if lecturer.ExternalCourseID != nil {
			lecturer.URL = optionalString(CourseURL(*lecturer.ExternalCourseID))
		}
		out = append(out, lecturer)
	}
	return out
}

// Normalize validates raw fields and coerces them into a Schedule of type
// `typ`, applying the type-specific derivation to every item. It is a pure
// function of its arguments.
func Normalize(typ Type, raw RawSchedule) (Schedule, error) {
	var problems []FieldError

	label := strings.TrimSpace(raw.Label)
	collect(&problems, -1, validate.Struct(scheduleRules{
		Type:  typ,
		ID:    strings.TrimSpace(raw.ID),
		Label: label,
	}))

	items := make([]Item, len(raw.Items))
	for i, r := range raw.Items {
		item := Item{
			Date:      strings.TrimSpace(r.Date),
			StartTime: strings.TrimSpace(r.StartTime),
			EndTime:   strings.TrimSpace(r.EndTime),
			Subject:   optional(r.Subject),
			Type:      optional(r.Type),
			Lecturers: normalizeLecturers(r.Lecturers),
			Location:  optional(r.Location),
			Group:     optional(r.Group),
			Comment:   optional(r.Comment),
		}
		sessionType := ""
		if item.Type != nil {
			sessionType = *item.Type
		}
		collect(&problems, i, validate.Struct(itemRules{
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Type:      sessionType,
		}))
		items[i] = item
	}

	if len(problems) > 0 {
		return Schedule{}, &ValidationError{Fields: problems}
	}

	periods := make([]Period, len(raw.Periods))
	copy(periods, raw.Periods)

	schedule := Schedule{
		Type:             typ,
		ID:               strings.TrimSpace(raw.ID),
		Label:            label,
		ExternalCourseID: optionalString(raw.ExternalCourseID),
		CourseURL:        optionalString(raw.CourseURL),
		SourceURL:        raw.SourceURL,
		Periods:          periods,
		Items:            items,
	}
	if schedule.CourseURL == nil && schedule.ExternalCourseID != nil {
		schedule.CourseURL = optionalString(CourseURL(*schedule.ExternalCourseID))
	}
	derive(&schedule)

	return schedule, nil
}
