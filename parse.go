package investview

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/investview/date"
)

// decimalPattern is a plain decimal number with '.' as separator and an optional exponent.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseReader reads r entirely and parses it with [Parse].
func ParseReader(r io.Reader) ([]Record, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV: %w", err)
	}
	return Parse(string(content))
}

// Parse validates a whole CSV text and returns its records in file order.
//
// The first line is a header holding exactly the labels in [Columns], in any
// order. Every following line is a record, blank lines included: a blank
// line is reported as an invalid row rather than skipped.
//
// On failure it returns a nil slice and a [*ParseError].
func Parse(text string) ([]Record, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, &ParseError{Kind: ErrEmptyOrTooShort}
	}

	header := splitFields(lines[0])
	if !isSchema(header) {
		return nil, &ParseError{Kind: ErrSchemaMismatch, Expected: slices.Clone(Columns), Found: header}
	}

	records := make([]Record, 0, len(lines)-1)
	for i, line := range lines[1:] {
		r, err := parseRow(header, splitFields(line), i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// isSchema reports whether header holds exactly the expected labels.
func isSchema(header []string) bool {
	if len(header) != len(Columns) {
		return false
	}
	for _, c := range Columns {
		if !slices.Contains(header, c) {
			return false
		}
	}
	return true
}

// parseRow builds a record from values laid out as header. row is used for error reporting.
func parseRow(header, values []string, row int) (Record, error) {
	cell := make(map[string]string, len(header))
	for j, name := range header {
		if j < len(values) {
			cell[name] = values[j]
		}
	}

	amount, err := parseNumber(cell, ColumnAmount, row)
	if err != nil {
		return Record{}, err
	}
	if amount < 0 {
		return Record{}, &ParseError{Kind: ErrInvalidNumber, Row: row, Field: ColumnAmount, Value: cell[ColumnAmount], Reason: "must not be negative"}
	}

	rate, err := parseNumber(cell, ColumnRate, row)
	if err != nil {
		return Record{}, err
	}
	if rate <= -1 {
		return Record{}, &ParseError{Kind: ErrInvalidNumber, Row: row, Field: ColumnRate, Value: cell[ColumnRate], Reason: "must be greater than -1"}
	}

	on, err := date.ParseISO(cell[ColumnDate])
	if err != nil {
		return Record{}, &ParseError{Kind: ErrInvalidDate, Row: row, Field: ColumnDate, Value: cell[ColumnDate]}
	}

	if len(values) != len(header) {
		return Record{}, &ParseError{Kind: ErrColumnCount, Row: row, Expected: header, Found: values}
	}

	for _, name := range []string{ColumnSubtype, ColumnIssuer} {
		if cell[name] == "" {
			return Record{}, &ParseError{Kind: ErrEmptyField, Row: row, Field: name}
		}
	}

	return Record{
		Date:    on,
		Subtype: cell[ColumnSubtype],
		Issuer:  cell[ColumnIssuer],
		Amount:  amount,
		Rate:    rate,
	}, nil
}

// parseNumber reads the column name as a finite decimal number.
func parseNumber(cell map[string]string, name string, row int) (float64, error) {
	raw := cell[name]
	if !decimalPattern.MatchString(raw) {
		return 0, &ParseError{Kind: ErrInvalidNumber, Row: row, Field: name, Value: raw}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &ParseError{Kind: ErrInvalidNumber, Row: row, Field: name, Value: raw, Reason: "not a finite number"}
	}
	return v, nil
}
