package schedule

// RawLecturer is a lecturer as extracted, before optional values are normalized.
type RawLecturer struct {
	Name             Field
	ExternalCourseID string
}

// RawItem is one extracted row, every cell is still a Field.
type RawItem struct {
	Date      string
	StartTime string
	EndTime   string
	Subject   Field
	Type      Field
	Lecturers []RawLecturer
	Location  Field
	Group     Field
	Comment   Field
}

// RawSchedule is the output of the field extractors.
type RawSchedule struct {
	ID               string
	Label            string
	ExternalCourseID string
	CourseURL        string
	SourceURL        string
	Periods          []Period
	Items            []RawItem
}
