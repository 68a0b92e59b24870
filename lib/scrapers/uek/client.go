package uek

import (
	"context"
	"net/http"
	"planzajec-backend/lib/restyutil"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("planzajec.scrapers.uek")

var fetchedDocuments, _ = otel.Meter("planzajec.scrapers.uek").Int64Counter(
	"fetched_documents",
	metric.WithDescription("Number of timetable documents fetched from upstream."),
)

type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	Timeout time.Duration
	// CloudflareBypass wraps the transport with browser-like TLS and headers.
	CloudflareBypass bool
	// Output receives request dumps when debug logging is enabled.
	Output restyutil.InstrumentOutput
}

type Client struct {
	BaseURL string
	Http    *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	if opts.CloudflareBypass {
		transport := client.GetClient().Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(transport)
	}
	restyutil.InstrumentClient(client, tracer, opts.Output)

	return &Client{
		BaseURL: opts.BaseURL,
		Http:    client,
	}
}

// URL is the full upstream address for q.
func (c *Client) URL(q Query) string {
	return encodeURL(c.BaseURL, q.Values())
}

// SourceURL is the human-readable HTML page a schedule was taken from.
func (c *Client) SourceURL(q Query) string {
	q.Format = FormatHTML
	q.Group = ""
	return c.URL(q)
}

// Fetch performs exactly one GET for q and returns the raw body.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	link := c.URL(q)
	span.SetAttributes(
		attribute.String("url", link),
		attribute.String("format", q.Format.String()),
	)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch document")
		return nil, &FetchError{URL: link, Err: err}
	}
	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() >= 300 {
		err := &FetchError{URL: link, StatusCode: res.StatusCode()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected upstream status")
		return nil, err
	}

	if fetchedDocuments != nil {
		fetchedDocuments.Add(ctx, 1, metric.WithAttributes(attribute.String("format", q.Format.String())))
	}
	return res.Body(), nil
}
