package agenda

import (
	"strings"

	"github.com/antzucaro/matchr"
)

type Category string

const (
	CategoryLecture   Category = "lecture"
	CategoryExercise  Category = "exercise"
	CategoryLanguage  Category = "language"
	CategorySeminar   Category = "seminar"
	CategoryExam      Category = "exam"
	CategoryCancelled Category = "cancelled"
	CategoryOther     Category = "other"
)

// CancelledType is the session type upstream uses for a moved session.
const CancelledType = "Przeniesienie zajęć"

var sessionTypes = map[string]Category{
	"wykład":                    CategoryLecture,
	"wykład do wyboru":          CategoryLecture,
	"PPUZ wykład":               CategoryLecture,
	"ćwiczenia":                 CategoryExercise,
	"ćwiczenia do wyboru":       CategoryExercise,
	"ćwiczenia warsztatowe":     CategoryExercise,
	"PPUZ ćwicz. warsztatowe":   CategoryExercise,
	"PPUZ ćwicz. laboratoryjne": CategoryExercise,
	"laboratorium":              CategoryExercise,
	"ćwiczenia audytoryjne":     CategoryExercise,
	"konwersatorium":            CategoryExercise,
	"konwersatorium do wyboru":  CategoryExercise,
	"lektorat":                  CategoryLanguage,
	"PPUZ lektorat":             CategoryLanguage,
	"seminarium":                CategorySeminar,
	"egzamin":                   CategoryExam,
	CancelledType:               CategoryCancelled,
}

const fuzzyThreshold = 0.9

// CategoryOf maps a session type to its display category. Unknown spellings
// fall back to the most similar known type when it is close enough.
func CategoryOf(sessionType string) Category {
	sessionType = strings.TrimSpace(sessionType)
	if sessionType == "" {
		return CategoryOther
	}
	if category, ok := sessionTypes[sessionType]; ok {
		return category
	}

	mostSimilar := ""
	var similarity float64
	for known := range sessionTypes {
		sim := matchr.JaroWinkler(sessionType, known, false)
		// ties go to the lexically smaller name so map order never leaks out
		if sim > similarity || (sim == similarity && known < mostSimilar) {
			similarity = sim
			mostSimilar = known
		}
	}
	if similarity > fuzzyThreshold {
		return sessionTypes[mostSimilar]
	}
	return CategoryOther
}

// IsOnline reports whether a location is a meeting link rather than a room.
func IsOnline(location *string) bool {
	return location != nil && strings.HasPrefix(*location, "http")
}
