package uek

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
)

// <plan-zajec typ="G" id="1234" idcel="k123" nazwa="..." od="..." do="...">
type xmlPlan struct {
	XMLName          xml.Name      `xml:"plan-zajec"`
	Type             string        `xml:"typ,attr"`
	ID               string        `xml:"id,attr"`
	ExternalCourseID string        `xml:"idcel,attr"`
	Label            string        `xml:"nazwa,attr"`
	Group            string        `xml:"grupa,attr"`
	From             string        `xml:"od,attr"`
	To               string        `xml:"do,attr"`
	Periods          []xmlPeriod   `xml:"okres"`
	Sessions         []xmlSession  `xml:"zajecia"`
	Groupings        []xmlGrouping `xml:"grupowanie"`
	Resources        []xmlResource `xml:"zasob"`
}

type xmlPeriod struct {
	From  string `xml:"od,attr"`
	To    string `xml:"do,attr"`
	Label string `xml:"nazwa,attr"`
}

type xmlSession struct {
	Date      string        `xml:"termin"`
	Weekday   string        `xml:"dzien"`
	StartTime string        `xml:"od-godz"`
	EndTime   string        `xml:"do-godz"`
	Subject   string        `xml:"przedmiot"`
	Type      string        `xml:"typ"`
	Lecturers []xmlLecturer `xml:"nauczyciel"`
	Room      xmlRoom       `xml:"sala"`
	Group     string        `xml:"grupa"`
	Remarks   string        `xml:"uwagi"`
}

type xmlLecturer struct {
	Moodle string `xml:"moodle,attr"`
	Value  string `xml:",chardata"`
}

// sala is either plain text, escaped anchor markup or a nested <a> element.
type xmlRoom struct {
	Value  string     `xml:",chardata"`
	Anchor *xmlAnchor `xml:"a"`
}

type xmlAnchor struct {
	Href  string `xml:"href,attr"`
	Value string `xml:",chardata"`
}

type xmlGrouping struct {
	Type  string `xml:"typ,attr"`
	Group string `xml:"grupa,attr"`
}

type xmlResource struct {
	Type  string `xml:"typ,attr"`
	ID    string `xml:"id,attr"`
	Label string `xml:"nazwa,attr"`
}

func ParseXML(ctx context.Context, body []byte) (*xmlPlan, error) {
	_, span := tracer.Start(ctx, "ParseXML")
	defer span.End()

	var plan xmlPlan
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charset.NewReaderLabel
	err := decoder.Decode(&plan)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse xml")
		return nil, &ParseError{Format: FormatXML, Err: err}
	}
	return &plan, nil
}

var hrefRegex = regexp.MustCompile(`href\s*=\s*["']([^"']*)["']`)

// anchorHref reads the href out of a fragment such as `<a href="...">...</a>`.
// Fragments that are not well-formed xml (bare ampersands in the link) fall
// back to a plain attribute match.
func anchorHref(fragment string) (string, error) {
	var anchor xmlAnchor
	err := xml.Unmarshal([]byte(strings.TrimSpace(fragment)), &anchor)
	if err == nil && anchor.Href != "" {
		return anchor.Href, nil
	}
	if groups := hrefRegex.FindStringSubmatch(fragment); groups != nil {
		return groups[1], nil
	}
	if err == nil {
		err = errors.New("anchor has no href")
	}
	return "", err
}
