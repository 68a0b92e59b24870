package uek

import (
	"context"
	"errors"
	"planzajec-backend/lib/htmlutil"
	"planzajec-backend/lib/schedule"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var classHourRegex = regexp.MustCompile(`(\d{2}:\d{2}) - (\d{2}:\d{2})`)

const languageSessionType = "lektorat"

// cellField resolves a table cell once, a cell holding a link becomes Link
// (several links become Many) and anything else becomes trimmed text.
func cellField(cell *goquery.Selection) schedule.Field {
	if cell.Length() == 0 {
		return schedule.Absent
	}
	anchors := cell.Find("a[href]")
	switch anchors.Length() {
	case 0:
		return schedule.Scalar(htmlutil.SelectionText(cell))
	case 1:
		return schedule.Link(anchors.AttrOr("href", ""), htmlutil.SelectionText(cell))
	}
	links := make([]schedule.Field, 0, anchors.Length())
	anchors.Each(func(_ int, a *goquery.Selection) {
		links = append(links, schedule.Link(a.AttrOr("href", ""), htmlutil.SelectionText(a)))
	})
	return schedule.Many(links...)
}

func lecturersOf(f schedule.Field) []schedule.RawLecturer {
	values := f.Values()
	out := make([]schedule.RawLecturer, len(values))
	for i, v := range values {
		out[i] = schedule.RawLecturer{Name: v}
	}
	return out
}

type htmlHeader struct {
	label     string
	courseURL string
}

func extractHTMLHeader(doc *goquery.Document) htmlHeader {
	title := doc.Find("div.grupa").First()
	stripped := title.Clone()
	stripped.Find("a").Remove()

	label := htmlutil.SelectionText(stripped)
	if label == "" {
		label = htmlutil.SelectionText(title)
	}
	return htmlHeader{
		label:     label,
		courseURL: strings.TrimSpace(title.Find("a[href]").First().AttrOr("href", "")),
	}
}

func extractHTMLPeriods(doc *goquery.Document) []schedule.Period {
	periods := []schedule.Period{}
	doc.Find(`select[name="okres"] option`).Each(func(_ int, option *goquery.Selection) {
		id := strings.TrimSpace(option.AttrOr("value", ""))
		if id == "" {
			return
		}
		periods = append(periods, schedule.Period{
			ID:    id,
			Label: htmlutil.SelectionText(option),
		})
	})
	return periods
}

// rowFold is the accumulator of the row fold, a single-cell row annotates
// the last emitted item and is dropped when there is none.
type rowFold struct {
	items []schedule.RawItem
}

func (f *rowFold) comment(text string) {
	if len(f.items) == 0 {
		return
	}
	f.items[len(f.items)-1].Comment = schedule.Scalar(text)
}

func (f *rowFold) emit(item schedule.RawItem) {
	f.items = append(f.items, item)
}

func extractHTMLRow(typ schedule.Type, cells *goquery.Selection) schedule.RawItem {
	cell := func(i int) schedule.Field {
		return cellField(cells.Eq(i))
	}

	item := schedule.RawItem{
		Date:    htmlutil.SelectionText(cells.Eq(0)),
		Subject: cell(2),
		Type:    cell(3),
	}
	if groups := classHourRegex.FindStringSubmatch(htmlutil.SelectionText(cells.Eq(1))); groups != nil {
		item.StartTime = groups[1]
		item.EndTime = groups[2]
	}

	switch typ {
	case schedule.TypeGroup:
		item.Lecturers = lecturersOf(cell(4))
		item.Location = cell(5)
	case schedule.TypeTeacher:
		item.Location = cell(4)
		item.Group = cell(5)
	case schedule.TypeRoom:
		item.Lecturers = lecturersOf(cell(4))
		item.Group = cell(5)
	}
	return item
}

// ExtractHTML reads the classic HTML page of one schedule into raw fields.
func ExtractHTML(ctx context.Context, typ schedule.Type, id string, doc *goquery.Document) (schedule.RawSchedule, error) {
	_, span := tracer.Start(ctx, "ExtractHTML")
	defer span.End()

	header := extractHTMLHeader(doc)
	if header.label == "" && doc.Find("table").Length() == 0 {
		err := &ParseError{Format: FormatHTML, Err: errors.New("no schedule header or table found")}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected document structure")
		return schedule.RawSchedule{}, err
	}

	fold := rowFold{}
	skipLanguage := !strings.HasPrefix(header.label, "CJ")
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		cells := row.ChildrenFiltered("td")
		switch cells.Length() {
		case 0:
			return
		case 1:
			fold.comment(htmlutil.SelectionText(cells))
			return
		}
		if skipLanguage && htmlutil.SelectionText(cells.Eq(3)) == languageSessionType {
			return
		}
		fold.emit(extractHTMLRow(typ, cells))
	})

	span.SetAttributes(attribute.Int("items", len(fold.items)))

	return schedule.RawSchedule{
		ID:        id,
		Label:     header.label,
		CourseURL: header.courseURL,
		Periods:   extractHTMLPeriods(doc),
		Items:     fold.items,
	}, nil
}
