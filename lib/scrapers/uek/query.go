package uek

import (
	"net/url"
	"planzajec-backend/lib/schedule"
)

const DefaultBaseURL = "https://planzajec.uek.krakow.pl/index.php"

// DefaultPeriod is the upstream id of the current period.
const DefaultPeriod = "1"

type Format int

const (
	FormatXML Format = iota
	FormatHTML
)

func (f Format) String() string {
	if f == FormatHTML {
		return "html"
	}
	return "xml"
}

// Query is one request against the timetable endpoint. Zero fields are left
// out of the query string.
type Query struct {
	Type   schedule.Type
	ID     string
	Period string
	Group  string
	Format Format
}

func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Type != "" {
		values.Set("typ", string(q.Type))
	}
	if q.ID != "" {
		values.Set("id", q.ID)
	}
	if q.Period != "" {
		values.Set("okres", q.Period)
	}
	if q.Group != "" {
		values.Set("grupa", q.Group)
	}
	if q.Format == FormatXML {
		values.Set("xml", "")
	}
	return values
}

func encodeURL(base string, values url.Values) string {
	if len(values) == 0 {
		return base
	}
	return base + "?" + values.Encode()
}
