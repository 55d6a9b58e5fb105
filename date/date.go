// Package date handles calendar days without time of day.
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Format is the ISO-8601 layout used to print and strictly read days.
const Format = "2006-01-02"

// lenientFormat also accepts single digit month and day ("2025-7-1").
const lenientFormat = "2006-1-2"

// isoPattern is the exact shape of a day in input files. It does not check the calendar.
var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns the canonical time.Time of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns the Date for year, month and day. Out of range values are
// normalized like time.Date does: October 32 is November 1.
func New(year int, month time.Month, day int) Date {
	y, m, dd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, dd}
}

// Today returns the current local day.
func Today() Date { return New(time.Now().Date()) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) IsToday() bool      { return d == Today() }
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }

// Add returns the day i days after d (before if i is negative).
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Sub returns the number of whole days from x to d. It is negative when d is before x.
func (d Date) Sub(x Date) int {
	// Unix seconds rather than time.Duration which saturates after 292 years.
	return int((d.time().Unix() - x.time().Unix()) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the day as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(Format) }

// ParseISO reads a day that must look exactly like YYYY-MM-DD.
//
// Only the shape is checked: "2024-02-30" is accepted and normalized to
// 2024-03-01, the same way New normalizes overflowing values.
func ParseISO(str string) (Date, error) {
	if !isoPattern.MatchString(str) {
		return Date{}, fmt.Errorf("invalid date %q want format YYYY-MM-DD", str)
	}
	// the pattern guarantees three groups of ascii digits.
	y, _ := strconv.Atoi(str[0:4])
	m, _ := strconv.Atoi(str[5:7])
	d, _ := strconv.Atoi(str[8:10])
	return New(y, time.Month(m), d), nil
}

// Parse reads a day typed by a user. It is lenient and accepts "2025-7-1",
// plus the keywords "today" and "yesterday".
func Parse(str string) (Date, error) {
	switch str {
	case "today":
		return Today(), nil
	case "yesterday":
		return Today().Add(-1), nil
	}
	on, err := time.Parse(lenientFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
