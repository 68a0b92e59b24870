package schedule

import (
	"fmt"
	"strings"
)

// Type selects one of the three upstream views of the timetable.
type Type string

const (
	TypeGroup   Type = "G"
	TypeTeacher Type = "N"
	TypeRoom    Type = "S"
)

var Types = []Type{TypeGroup, TypeTeacher, TypeRoom}

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeGroup, TypeTeacher, TypeRoom:
		return t, nil
	}
	return "", fmt.Errorf("unknown schedule type %q", s)
}

func (t Type) String() string {
	switch t {
	case TypeGroup:
		return "group"
	case TypeTeacher:
		return "teacher"
	case TypeRoom:
		return "room"
	}
	return string(t)
}

type Lecturer struct {
	Label            string  `json:"label"`
	ExternalCourseID *string `json:"externalCourseId"`
	URL              *string `json:"url"`
}

// Item is one timetabled session.
type Item struct {
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Subject   *string    `json:"subject"`
	Type      *string    `json:"type"`
	Lecturers []Lecturer `json:"lecturers"`
	Location  *string    `json:"location"`
	Group     *string    `json:"group"`
	Comment   *string    `json:"comment"`
}

type Period struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type Schedule struct {
	Type             Type     `json:"type"`
	ID               string   `json:"id"`
	Label            string   `json:"label"`
	ExternalCourseID *string  `json:"externalCourseId"`
	CourseURL        *string  `json:"courseUrl"`
	SourceURL        string   `json:"sourceUrl"`
	Periods          []Period `json:"periods"`
	Items            []Item   `json:"items"`
}

const courseViewURL = "https://e-uczelnia.uek.krakow.pl/course/view.php?id="

// CourseURL builds the e-learning course link for an external course id,
// whose first character is a kind marker and not part of the numeric id.
func CourseURL(externalCourseID string) string {
	if len(externalCourseID) < 2 {
		return ""
	}
	return courseViewURL + externalCourseID[1:]
}
