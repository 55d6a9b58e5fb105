package investview

import "github.com/etnz/investview/date"

// Point is the cumulative value of the portfolio on a day.
type Point struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// Series evaluates the portfolio on every acquisition day and on the day on.
//
// Points are sorted by day, one per distinct day. Each point sums the future
// value, on that point's day, of every record acquired on or before it.
func Series(records []Record, on date.Date) []Point {
	if len(records) == 0 {
		return []Point{}
	}

	var h date.History[float64]
	for _, r := range records {
		h.Append(r.Date, 0)
	}
	h.Append(on, 0)

	for day := range h.Days() {
		for _, r := range records {
			if !r.Date.After(day) {
				h.AppendAdd(day, FutureValue(r, day))
			}
		}
	}

	points := make([]Point, 0, h.Len())
	for day, v := range h.Values() {
		points = append(points, Point{Date: day, Value: v})
	}
	return points
}
