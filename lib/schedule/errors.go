package schedule

import (
	"fmt"
	"strings"
)

type FieldError struct {
	// Item is the index of the offending item, -1 for the schedule itself.
	Item   int
	Field  string
	Reason string
}

func (e FieldError) String() string {
	if e.Item < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("items[%d].%s: %s", e.Item, e.Field, e.Reason)
}

// ValidationError lists every field that failed the schedule contract.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "invalid schedule: " + strings.Join(parts, "; ")
}
