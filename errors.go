package investview

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of parsing failures. A [*ParseError] unwraps to exactly one of them.
var (
	ErrEmptyOrTooShort = errors.New("CSV file must have a header and at least one data row.")
	ErrSchemaMismatch  = errors.New("invalid CSV headers")
	ErrInvalidNumber   = errors.New("invalid numeric value")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrColumnCount     = errors.New("invalid column count")
	ErrEmptyField      = errors.New("empty value")
)

var kindNames = map[error]string{
	ErrEmptyOrTooShort: "EmptyOrTooShort",
	ErrSchemaMismatch:  "SchemaMismatch",
	ErrInvalidNumber:   "InvalidNumber",
	ErrInvalidDate:     "InvalidDate",
	ErrColumnCount:     "ColumnCount",
	ErrEmptyField:      "EmptyField",
}

// ParseError describes why a CSV file was rejected.
//
// Only the fields relevant to the Kind are set: Row, Field and Value for row
// level errors, Expected and Found for header and column count errors.
type ParseError struct {
	Kind     error
	Row      int    // 1-based line in the file, the header being line 1.
	Field    string // column name
	Value    string // offending raw text
	Reason   string // optional detail
	Expected []string
	Found    []string
}

func (e *ParseError) Unwrap() error { return e.Kind }

// KindName returns the short name of the error kind, e.g. "InvalidNumber".
func (e *ParseError) KindName() string { return kindNames[e.Kind] }

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrEmptyOrTooShort:
		return e.Kind.Error()
	case ErrSchemaMismatch:
		return fmt.Sprintf("%v. Expected: %s. Found: %s", e.Kind, strings.Join(e.Expected, ","), strings.Join(e.Found, ","))
	case ErrColumnCount:
		return fmt.Sprintf("%v in row %d: found %d values, expected %d", e.Kind, e.Row, len(e.Found), len(e.Expected))
	case ErrInvalidDate:
		msg = fmt.Sprintf("%v for '%s' in row %d: %s. Expected YYYY-MM-DD.", e.Kind, e.Field, e.Row, e.Value)
	default:
		msg = fmt.Sprintf("%v for '%s' in row %d: %s", e.Kind, e.Field, e.Row, e.Value)
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}
