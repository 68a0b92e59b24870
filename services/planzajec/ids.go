package planzajec

import (
	"fmt"
	"planzajec-backend/lib/schedule"
	"regexp"
	"strconv"
	"strings"
)

// MaxSchedules is the most schedules one request may combine.
const MaxSchedules = 3

var compositeIDRegex = regexp.MustCompile(`^[A-Z]\d{1,6}$`)

// ScheduleRef is a composite identifier such as G1234: a type letter
// followed by the upstream numeric id.
type ScheduleRef struct {
	Type schedule.Type `json:"type"`
	ID   string        `json:"id"`
}

func (r ScheduleRef) String() string {
	return string(r.Type) + r.ID
}

func ParseScheduleRef(s string) (ScheduleRef, error) {
	s = strings.TrimSpace(s)
	if !compositeIDRegex.MatchString(s) {
		return ScheduleRef{}, fmt.Errorf("malformed schedule id %q", s)
	}
	typ, err := schedule.ParseType(s[:1])
	if err != nil {
		return ScheduleRef{}, err
	}
	return ScheduleRef{Type: typ, ID: s[1:]}, nil
}

// ParseScheduleRefs splits a slash separated list of composite identifiers.
func ParseScheduleRefs(s string) ([]ScheduleRef, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(s), "/"), "/")
	return parseRefs(parts)
}

func parseRefs(parts []string) ([]ScheduleRef, error) {
	refs := make([]ScheduleRef, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		ref, err := ParseScheduleRef(p)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("at least one schedule id is required")
	}
	if len(refs) > MaxSchedules {
		return nil, fmt.Errorf("at most %d schedules can be combined, got %d", MaxSchedules, len(refs))
	}
	return refs, nil
}

// ParsePeriod accepts a numeric period id, empty means the current period.
func ParsePeriod(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "1", nil
	}
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		return "", fmt.Errorf("malformed period %q", s)
	}
	return s, nil
}
