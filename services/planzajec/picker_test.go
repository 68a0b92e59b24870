package planzajec

import (
	"planzajec-backend/lib/schedule"
	"planzajec-backend/lib/scrapers/uek"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLabelDetails(t *testing.T) {
	cases := []struct {
		label    string
		expected LabelDetails
	}{
		{label: "KrDUIs1011", expected: LabelDetails{}},
		{label: "KRDZS1-1011", expected: LabelDetails{Mode: "S", Year: "1"}},
		{label: "KRDZS2-1011", expected: LabelDetails{Mode: "S", Year: "4"}},
		{label: "KRDZNM-2011", expected: LabelDetails{Mode: "N", Year: "2"}},
		{
			label:    "CJ-SM-1/1-ANG.B2",
			expected: LabelDetails{Mode: "S", Year: "1", Language: "ANG", LanguageLevel: "B2"},
		},
		{label: "PPUZ-ZARS2-112", expected: LabelDetails{Mode: "S", Year: "4"}},
		{label: "KRDZS3-1011", expected: LabelDetails{Mode: "S"}},
	}

	for _, test := range cases {
		t.Run(test.label, func(t *testing.T) {
			require.Equal(t, test.expected, ParseLabelDetails(test.label))
		})
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []uek.Resource{
		{Type: schedule.TypeGroup, ID: "1", Label: "KRDZS1-1011"},
		{Type: schedule.TypeGroup, ID: "2", Label: "KRDZS2-1011"},
		{Type: schedule.TypeGroup, ID: "3", Label: "KRDZN1-1012"},
	}

	all := FilterEntries(entries, Filter{})
	require.Len(t, all, 3)
	require.Equal(t, "4", all[1].Details.Year)

	stationary := FilterEntries(entries, Filter{Mode: "S", Year: "1"})
	require.Len(t, stationary, 1)
	require.Equal(t, "1", stationary[0].ID)

	searched := FilterEntries(entries, Filter{Search: "1012"})
	require.Len(t, searched, 1)
	require.Equal(t, "3", searched[0].ID)
}

func TestSearchCategories(t *testing.T) {
	categories := []uek.Category{
		{Type: schedule.TypeGroup, Label: "Kolegium Ekonomii"},
		{Type: schedule.TypeTeacher, Label: "Katedra Informatyki"},
	}
	require.Equal(t, categories, SearchCategories(categories, ""))
	require.Equal(t, categories[1:], SearchCategories(categories, "informatyki"))
}
