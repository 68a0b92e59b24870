package schedule

// derive overwrites the one field of every item that comes from the schedule's
// own identity rather than from the row.
func derive(s *Schedule) {
	label := s.Label
	switch s.Type {
	case TypeGroup:
		for i := range s.Items {
			s.Items[i].Group = &label
		}
	case TypeTeacher:
		for i := range s.Items {
			s.Items[i].Lecturers = append(s.Items[i].Lecturers, Lecturer{
				Label:            label,
				ExternalCourseID: s.ExternalCourseID,
				URL:              s.CourseURL,
			})
		}
	case TypeRoom:
		for i := range s.Items {
			s.Items[i].Location = &label
		}
	}
}
