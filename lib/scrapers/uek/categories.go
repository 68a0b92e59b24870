package uek

import (
	"context"
	"log/slog"
	"planzajec-backend/lib/htmlutil"
	"planzajec-backend/lib/schedule"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Category is a named bucket of schedules, a faculty for groups or a
// department for teachers and rooms.
type Category struct {
	Type  schedule.Type `json:"type"`
	Label string        `json:"label"`
}

// Resource is a single schedule listed under a category.
type Resource struct {
	Type  schedule.Type `json:"type"`
	ID    string        `json:"id"`
	Label string        `json:"label"`
}

type CategoryDetail struct {
	Type    schedule.Type `json:"type"`
	Label   string        `json:"label"`
	Entries []Resource    `json:"entries"`
}

func ExtractXMLCategories(ctx context.Context, plan *xmlPlan) []Category {
	out := make([]Category, 0, len(plan.Groupings))
	for _, g := range plan.Groupings {
		typ, err := schedule.ParseType(g.Type)
		if err != nil {
			slog.WarnContext(ctx, "skipping category with unknown type", "type", g.Type, "label", g.Group)
			continue
		}
		label := strings.TrimSpace(g.Group)
		if label == "" {
			continue
		}
		out = append(out, Category{Type: typ, Label: label})
	}
	return out
}

func ExtractXMLCategoryDetail(ctx context.Context, typ schedule.Type, label string, plan *xmlPlan) CategoryDetail {
	detail := CategoryDetail{
		Type:    typ,
		Label:   label,
		Entries: make([]Resource, 0, len(plan.Resources)),
	}
	if parsed, err := schedule.ParseType(plan.Type); err == nil {
		detail.Type = parsed
	}
	if group := strings.TrimSpace(plan.Group); group != "" {
		detail.Label = group
	}
	for _, r := range plan.Resources {
		rtyp, err := schedule.ParseType(r.Type)
		if err != nil {
			slog.WarnContext(ctx, "skipping resource with unknown type", "type", r.Type, "id", r.ID)
			continue
		}
		detail.Entries = append(detail.Entries, Resource{
			Type:  rtyp,
			ID:    strings.TrimSpace(r.ID),
			Label: strings.TrimSpace(r.Label),
		})
	}
	return detail
}

// the index page lists teachers, groups and rooms in that order
var htmlCategoryOrder = []schedule.Type{schedule.TypeTeacher, schedule.TypeGroup, schedule.TypeRoom}

func ExtractHTMLCategories(ctx context.Context, doc *goquery.Document) []Category {
	out := []Category{}
	doc.Find(".kategorie").Each(func(i int, list *goquery.Selection) {
		if i >= len(htmlCategoryOrder) {
			return
		}
		for _, a := range htmlutil.GetAnchors(ctx, list.Find("a")) {
			if a.Name == "" {
				continue
			}
			out = append(out, Category{Type: htmlCategoryOrder[i], Label: a.Name})
		}
	})
	return out
}

func ExtractHTMLCategoryDetail(ctx context.Context, typ schedule.Type, label string, doc *goquery.Document) CategoryDetail {
	detail := CategoryDetail{Type: typ, Label: label, Entries: []Resource{}}
	for _, a := range htmlutil.GetAnchors(ctx, doc.Find(".kolumna a")) {
		id := htmlutil.QueryValue(a.Href, "id")
		if id == "" || a.Name == "" {
			continue
		}
		detail.Entries = append(detail.Entries, Resource{Type: typ, ID: id, Label: a.Name})
	}
	return detail
}
