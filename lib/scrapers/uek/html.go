package uek

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

func ParseHTML(ctx context.Context, body []byte) (*goquery.Document, error) {
	_, span := tracer.Start(ctx, "ParseHTML")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, &ParseError{Format: FormatHTML, Err: err}
	}
	return doc, nil
}
