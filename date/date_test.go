package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	testCases := []struct {
		y    int
		m    time.Month
		d    int
		want string
	}{
		{2024, time.February, 30, "2024-03-01"},
		{2023, time.February, 29, "2023-03-01"},
		{2024, 13, 1, "2025-01-01"},
		{2024, 0, 10, "2023-12-10"},
		{2024, time.January, 0, "2023-12-31"},
		{2024, time.January, 32, "2024-02-01"},
	}
	for _, tc := range testCases {
		if got := New(tc.y, tc.m, tc.d).String(); got != tc.want {
			t.Errorf("New(%d, %d, %d) = %s, want %s", tc.y, tc.m, tc.d, got, tc.want)
		}
	}
}

func TestParseISO(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2023-01-01", want: "2023-01-01"},
		{in: "2024-02-30", want: "2024-03-01"}, // shape only, calendar not checked
		{in: "2024-01-32", want: "2024-02-01"},
		{in: "2023-1-01", wantErr: true},
		{in: "23-01-01", wantErr: true},
		{in: "2023/01/01", wantErr: true},
		{in: " 2023-01-01", wantErr: true},
		{in: "2023-01-01T00:00", wantErr: true},
		{in: "", wantErr: true},
		{in: "２０２３-01-01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseISO(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseISO(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISO(%q) unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseISO(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseLenient(t *testing.T) {
	got, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if want := New(2025, time.July, 1); got != want {
		t.Errorf("Parse(2025-7-1) = %v, want %v", got, want)
	}
	if got, _ := Parse("yesterday"); got != Today().Add(-1) {
		t.Errorf("Parse(yesterday) = %v, want %v", got, Today().Add(-1))
	}
	if _, err := Parse("2025-02-30"); err == nil {
		t.Error("Parse(2025-02-30) expected an error for a user typed day")
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		from, to Date
		want     int
	}{
		{New(2023, 1, 1), New(2024, 1, 1), 365},
		{New(2024, 1, 1), New(2025, 1, 1), 366},
		{New(2024, 1, 1), New(2023, 1, 1), -365},
		{New(2024, 3, 10), New(2024, 3, 10), 0},
		{New(1700, 1, 1), New(2100, 1, 1), 146097},
	}
	for _, tc := range testCases {
		if got := tc.to.Sub(tc.from); got != tc.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tc.to, tc.from, got, tc.want)
		}
	}
}

func TestJSON(t *testing.T) {
	d := New(2023, 5, 7)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if string(b) != `"2023-05-07"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, "2023-05-07")
	}
	var got Date
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() unexpected error: %v", err)
	}
	if got != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", got, d)
	}
}
