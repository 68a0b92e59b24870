package schedule

import "strings"

type FieldKind int

const (
	FieldAbsent FieldKind = iota
	FieldScalar
	FieldLink
	FieldMany
)

// Field is a raw cell value as it was found in the upstream document, resolved
// once during extraction so later stages never inspect markup again.
type Field struct {
	Kind  FieldKind
	Text  string
	Href  string
	Items []Field
}

var Absent = Field{}

// Scalar holds plain text, blank text is Absent.
func Scalar(text string) Field {
	text = strings.TrimSpace(text)
	if text == "" {
		return Absent
	}
	return Field{Kind: FieldScalar, Text: text}
}

// Link holds a link target and the text it was displayed with.
// a link without a target degrades to Scalar.
func Link(href, text string) Field {
	href = strings.TrimSpace(href)
	if href == "" {
		return Scalar(text)
	}
	return Field{Kind: FieldLink, Href: href, Text: strings.TrimSpace(text)}
}

// Many groups zero or more values, absent members are dropped.
func Many(items ...Field) Field {
	kept := make([]Field, 0, len(items))
	for _, f := range items {
		if f.Kind != FieldAbsent {
			kept = append(kept, f)
		}
	}
	return Field{Kind: FieldMany, Items: kept}
}

// Value prefers the link target over the displayed text.
func (f Field) Value() string {
	switch f.Kind {
	case FieldScalar:
		return f.Text
	case FieldLink:
		return f.Href
	case FieldMany:
		if len(f.Items) > 0 {
			return f.Items[0].Value()
		}
	}
	return ""
}

// Label is the displayed text, falling back to the link target.
func (f Field) Label() string {
	if f.Kind == FieldLink && f.Text == "" {
		return f.Href
	}
	if f.Kind == FieldMany {
		if len(f.Items) > 0 {
			return f.Items[0].Label()
		}
		return ""
	}
	return f.Text
}

// Values flattens the field into a list regardless of its kind.
func (f Field) Values() []Field {
	switch f.Kind {
	case FieldAbsent:
		return nil
	case FieldMany:
		return f.Items
	}
	return []Field{f}
}
