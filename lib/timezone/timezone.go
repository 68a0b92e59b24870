package timezone

import (
	"time"
	_ "time/tzdata"
)

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Warsaw")
	if err != nil {
		panic(err)
	}
}

// force timezone to be in Warsaw because the upstream timetable only ever
// speaks local Kraków wall-clock time, whatever zone the server runs in
func Now() time.Time {
	return time.Now().In(Location)
}

// Day truncates t to midnight of its calendar day in Location.
func Day(t time.Time) time.Time {
	t = t.In(Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}

func SameDay(a, b time.Time) bool {
	a = a.In(Location)
	b = b.In(Location)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// PreviousMonday returns midnight of the monday on or before t.
func PreviousMonday(t time.Time) time.Time {
	day := Day(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// NextSunday returns midnight of the sunday on or after t.
func NextSunday(t time.Time) time.Time {
	day := Day(t)
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}

// ParseDateTime reads a "YYYY-MM-DD" date and "HH:MM" clock as wall-clock
// time in Location.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, Location)
}
