package uek

import (
	"context"
	"planzajec-backend/lib/schedule"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractXMLTeacher(t *testing.T) {
	ctx := context.Background()
	plan, err := ParseXML(ctx, []byte(teacherXML))
	require.NoError(t, err)
	raw, err := ExtractXML(ctx, plan)
	require.NoError(t, err)

	require.Equal(t, "77", raw.ID)
	require.Equal(t, "dr Anna Nowak", raw.Label)
	require.Equal(t, "k321", raw.ExternalCourseID)
	require.Equal(t, []schedule.Period{
		{ID: "1", Label: "Semestr zimowy", From: "2024-10-01", To: "2025-02-28"},
		{ID: "2", Label: "Cały rok", From: "2024-10-01", To: "2025-09-30"},
	}, raw.Periods)

	require.Len(t, raw.Items, 2)
	first := raw.Items[0]
	require.Equal(t, []schedule.RawLecturer{{Name: schedule.Scalar("dr Jan Kowalski"), ExternalCourseID: "k555"}}, first.Lecturers)
	require.Equal(t, "Paw.A 011", first.Location.Value())

	second := raw.Items[1]
	require.Empty(t, second.Lecturers)
	require.Equal(t, schedule.FieldLink, second.Location.Kind)
	require.Equal(t, "https://teams.microsoft.com/l/meetup?a=1&b=2", second.Location.Value())
	require.Equal(t, "Zajęcia zdalne", second.Comment.Value())

	normalized, err := schedule.Normalize(schedule.TypeTeacher, raw)
	require.NoError(t, err)

	lecturers := normalized.Items[0].Lecturers
	require.Len(t, lecturers, 2)
	require.Equal(t, "https://e-uczelnia.uek.krakow.pl/course/view.php?id=555", *lecturers[0].URL)
	require.Equal(t, "dr Anna Nowak", lecturers[1].Label)
	require.Equal(t, "k321", *lecturers[1].ExternalCourseID)
	require.Len(t, normalized.Items[1].Lecturers, 1)
}

func TestParseXMLMalformed(t *testing.T) {
	_, err := ParseXML(context.Background(), []byte("<plan-zajec><zajecia>"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, FormatXML, perr.Format)

	_, err = ParseXML(context.Background(), []byte("<html></html>"))
	require.ErrorAs(t, err, &perr)
}

func TestAnchorHref(t *testing.T) {
	href, err := anchorHref(`<a href="https://example.com/x">Sala</a>`)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/x", href)

	href, err = anchorHref(`<a href="https://example.com/?a=1&b=2">Sala</a>`)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/?a=1&b=2", href)

	_, err = anchorHref(`<a>Sala</a>`)
	require.Error(t, err)
}

func TestExtractXMLCategories(t *testing.T) {
	ctx := context.Background()
	plan, err := ParseXML(ctx, []byte(categoriesXML))
	require.NoError(t, err)
	require.Equal(t, []Category{
		{Type: schedule.TypeGroup, Label: "Kolegium Ekonomii"},
		{Type: schedule.TypeTeacher, Label: "Katedra Informatyki"},
		{Type: schedule.TypeRoom, Label: "Pawilon A"},
	}, ExtractXMLCategories(ctx, plan))

	plan, err = ParseXML(ctx, []byte(categoryDetailXML))
	require.NoError(t, err)
	require.Equal(t, CategoryDetail{
		Type:  schedule.TypeGroup,
		Label: "Kolegium Ekonomii",
		Entries: []Resource{
			{Type: schedule.TypeGroup, ID: "1234", Label: "KrDUIs1011"},
			{Type: schedule.TypeGroup, ID: "1235", Label: "KrDUIs1012"},
		},
	}, ExtractXMLCategoryDetail(ctx, schedule.TypeGroup, "Kolegium Ekonomii", plan))
}

func TestExtractHTMLCategories(t *testing.T) {
	ctx := context.Background()
	doc, err := ParseHTML(ctx, []byte(categoriesHTML))
	require.NoError(t, err)
	require.Equal(t, []Category{
		{Type: schedule.TypeTeacher, Label: "Katedra Informatyki"},
		{Type: schedule.TypeGroup, Label: "Kolegium Ekonomii"},
		{Type: schedule.TypeRoom, Label: "Pawilon A"},
	}, ExtractHTMLCategories(ctx, doc))

	doc, err = ParseHTML(ctx, []byte(categoryDetailHTML))
	require.NoError(t, err)
	detail := ExtractHTMLCategoryDetail(ctx, schedule.TypeGroup, "Kolegium Ekonomii", doc)
	require.Equal(t, []Resource{
		{Type: schedule.TypeGroup, ID: "1234", Label: "KrDUIs1011"},
		{Type: schedule.TypeGroup, ID: "1235", Label: "KrDUIs1012"},
	}, detail.Entries)
}
