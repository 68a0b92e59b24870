package uek

import (
	"context"
	"fmt"
	"log/slog"
	"planzajec-backend/lib/schedule"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// GetSchedule runs the whole pipeline for one schedule: fetch, parse,
// extract and normalize.
func (c *Client) GetSchedule(ctx context.Context, typ schedule.Type, id, period string, format Format) (schedule.Schedule, error) {
	ctx, span := tracer.Start(ctx, "GetSchedule")
	defer span.End()

	if period == "" {
		period = DefaultPeriod
	}
	span.SetAttributes(
		attribute.String("type", string(typ)),
		attribute.String("id", id),
		attribute.String("period", period),
	)

	q := Query{Type: typ, ID: id, Period: period, Format: format}
	body, err := c.Fetch(ctx, q)
	if err != nil {
		return schedule.Schedule{}, err
	}

	var raw schedule.RawSchedule
	switch format {
	case FormatHTML:
		doc, err := ParseHTML(ctx, body)
		if err != nil {
			return schedule.Schedule{}, err
		}
		raw, err = ExtractHTML(ctx, typ, id, doc)
		if err != nil {
			return schedule.Schedule{}, err
		}
	default:
		plan, err := ParseXML(ctx, body)
		if err != nil {
			return schedule.Schedule{}, err
		}
		raw, err = ExtractXML(ctx, plan)
		if err != nil {
			return schedule.Schedule{}, err
		}
		if raw.ID == "" {
			raw.ID = id
		}
	}
	raw.SourceURL = c.SourceURL(q)

	result, err := schedule.Normalize(typ, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "schedule failed validation")
		slog.DebugContext(ctx, "schedule failed validation", "type", typ, "id", id, "err", err)
		return schedule.Schedule{}, err
	}
	return result, nil
}

func (c *Client) GetCategories(ctx context.Context, format Format) ([]Category, error) {
	ctx, span := tracer.Start(ctx, "GetCategories")
	defer span.End()

	body, err := c.Fetch(ctx, Query{Format: format})
	if err != nil {
		return nil, err
	}

	if format == FormatHTML {
		doc, err := ParseHTML(ctx, body)
		if err != nil {
			return nil, err
		}
		return ExtractHTMLCategories(ctx, doc), nil
	}

	plan, err := ParseXML(ctx, body)
	if err != nil {
		return nil, err
	}
	return ExtractXMLCategories(ctx, plan), nil
}

func (c *Client) GetCategoryDetail(ctx context.Context, typ schedule.Type, label string, format Format) (CategoryDetail, error) {
	ctx, span := tracer.Start(ctx, "GetCategoryDetail")
	defer span.End()

	if label == "" {
		return CategoryDetail{}, fmt.Errorf("category label is required")
	}
	span.SetAttributes(
		attribute.String("type", string(typ)),
		attribute.String("label", label),
	)

	body, err := c.Fetch(ctx, Query{Type: typ, Group: label, Format: format})
	if err != nil {
		return CategoryDetail{}, err
	}

	if format == FormatHTML {
		doc, err := ParseHTML(ctx, body)
		if err != nil {
			return CategoryDetail{}, err
		}
		return ExtractHTMLCategoryDetail(ctx, typ, label, doc), nil
	}

	plan, err := ParseXML(ctx, body)
	if err != nil {
		return CategoryDetail{}, err
	}
	return ExtractXMLCategoryDetail(ctx, typ, label, plan), nil
}
