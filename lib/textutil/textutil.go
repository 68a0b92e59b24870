package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var lower = cases.Lower(language.Polish)

// NormalizeName folds case and squashes whitespace so labels typed by hand
// compare equal to labels scraped from the timetable.
func NormalizeName(name string) string {
	name = lower.String(name)
	name = strings.TrimSpace(name)
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, NormalizeName(m)) {
			return true
		}
	}
	return false
}

// Similarity scores how well a search query fits a label, 1 for a substring
// hit and the Jaro-Winkler similarity otherwise.
func Similarity(query, label string) float64 {
	query = NormalizeName(query)
	label = NormalizeName(label)
	if query == "" || strings.Contains(label, query) {
		return 1
	}
	return matchr.JaroWinkler(query, label, false)
}
