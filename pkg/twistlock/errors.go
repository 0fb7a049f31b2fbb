package twistlock

import (
	"fmt"
	"strings"
)

// UnknownSchemaError is returned when the first header column matches no known schema.
type UnknownSchemaError struct {
	Column string
	Known  []string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("unknown Twistlock CSV schema: first column %q, expected one of %s",
		e.Column, strings.Join(e.Known, ", "))
}

// MissingFieldError is returned when a data row has no value for a required column.
type MissingFieldError struct {
	Line  int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("line %d: missing field %q", e.Line, e.Field)
}

// MalformedCVEError is returned when a CVE ID does not split into at least
// three dash separated segments.
type MalformedCVEError struct {
	Line  int
	Value string
}

func (e *MalformedCVEError) Error() string {
	return fmt.Sprintf("line %d: malformed CVE ID %q", e.Line, e.Value)
}
