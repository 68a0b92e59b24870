package planzajec

import (
	"planzajec-backend/lib/scrapers/uek"
	"planzajec-backend/lib/textutil"
	"regexp"
	"slices"
	"strconv"
)

var normalGroupRegex = regexp.MustCompile(`^[A-Z]{4}(?P<mode>.)(?P<stage>.)-(?P<year>.)`)

var languageGroupRegex = regexp.MustCompile(
	`CJ-{1,2}(?P<mode>[SN])(?P<stage>.)-(?P<year>.)/\d-?(?P<language>[A-Z]{3})\.(?P<languageLevel>[A-Za-z0-9]{2})`,
)

var ppuzGroupRegex = regexp.MustCompile(`PPUZ-[A-Z]{3}(?P<mode>[A-Z])(?P<stage>.)-(?P<year>.)\d+`)

var groupRegexes = []*regexp.Regexp{normalGroupRegex, languageGroupRegex, ppuzGroupRegex}

// LabelDetails is what can be read off a group label: study mode, year of
// study and for language groups the language and its level.
type LabelDetails struct {
	Mode          string `json:"mode,omitempty"`
	Year          string `json:"year,omitempty"`
	Language      string `json:"language,omitempty"`
	LanguageLevel string `json:"languageLevel,omitempty"`
}

// second cycle years continue the numbering of the three first cycle years
func studyYear(stage, labelYear string) string {
	year, err := strconv.Atoi(labelYear)
	if err != nil {
		return ""
	}
	switch stage {
	case "1", "M":
		return strconv.Itoa(year)
	case "2":
		return strconv.Itoa(year + 3)
	}
	return ""
}

func ParseLabelDetails(label string) LabelDetails {
	for _, re := range groupRegexes {
		match := re.FindStringSubmatch(label)
		if match == nil {
			continue
		}
		groups := map[string]string{}
		for i, name := range re.SubexpNames() {
			if name != "" {
				groups[name] = match[i]
			}
		}
		return LabelDetails{
			Mode:          groups["mode"],
			Year:          studyYear(groups["stage"], groups["year"]),
			Language:      groups["language"],
			LanguageLevel: groups["languageLevel"],
		}
	}
	return LabelDetails{}
}

type PickerEntry struct {
	uek.Resource
	Details LabelDetails `json:"details"`
}

// Filter narrows a category listing. Empty fields match everything.
type Filter struct {
	Search        string `json:"search"`
	Mode          string `json:"mode"`
	Year          string `json:"year"`
	Language      string `json:"language"`
	LanguageLevel string `json:"languageLevel"`
}

const searchThreshold = 0.85

func matches(want, got string) bool {
	return want == "" || want == got
}

// FilterEntries annotates entries with their label details and keeps the
// ones that pass f. Search hits are ordered best first.
func FilterEntries(entries []uek.Resource, f Filter) []PickerEntry {
	type scored struct {
		entry PickerEntry
		score float64
	}

	kept := []scored{}
	for _, e := range entries {
		details := ParseLabelDetails(e.Label)
		if !matches(f.Mode, details.Mode) ||
			!matches(f.Year, details.Year) ||
			!matches(f.Language, details.Language) ||
			!matches(f.LanguageLevel, details.LanguageLevel) {
			continue
		}
		score := textutil.Similarity(f.Search, e.Label)
		if score < searchThreshold {
			continue
		}
		kept = append(kept, scored{
			entry: PickerEntry{Resource: e, Details: details},
			score: score,
		})
	}

	slices.SortStableFunc(kept, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]PickerEntry, len(kept))
	for i, k := range kept {
		out[i] = k.entry
	}
	return out
}

// SearchCategories keeps the categories whose label fits the search query.
func SearchCategories(categories []uek.Category, search string) []uek.Category {
	if search == "" {
		return categories
	}
	out := []uek.Category{}
	for _, c := range categories {
		if textutil.Similarity(search, c.Label) >= searchThreshold {
			out = append(out, c)
		}
	}
	return out
}
