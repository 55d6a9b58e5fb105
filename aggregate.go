package investview

import (
	"cmp"
	"slices"

	"github.com/etnz/investview/date"
)

// Aggregate holds the portfolio metrics on a reference day.
type Aggregate struct {
	On      date.Date // reference day of the valuation
	Records int       // number of records aggregated

	TotalInvested float64 // sum of the principals
	CurrentValue  float64 // sum of the future values on On
	TotalReturn   float64 // CurrentValue - TotalInvested

	BySubtype Allocations // principal by asset subtype
	ByIssuer  Allocations // principal by issuer

	UniqueAssets  int // distinct (issuer, subtype) pairs
	UniqueIssuers int // distinct issuers

	// Earliest and Latest acquisition days. Zero when there are no records.
	Earliest, Latest date.Date
}

// ReturnRate returns TotalReturn relative to TotalInvested, or 0 when nothing is invested.
func (a *Aggregate) ReturnRate() Percent {
	if a.TotalInvested == 0 {
		return 0
	}
	return Percent(100 * a.TotalReturn / a.TotalInvested)
}

func (a *Aggregate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("on", a.On)
	w.Append("records", a.Records)
	w.Append("totalInvested", a.TotalInvested)
	w.Append("currentValue", a.CurrentValue)
	w.Append("totalReturn", a.TotalReturn)
	w.Append("allocationBySubtype", a.BySubtype)
	w.Append("allocationByIssuer", a.ByIssuer)
	w.Append("uniqueAssetCount", a.UniqueAssets)
	w.Append("uniqueIssuerCount", a.UniqueIssuers)
	if a.Records > 0 {
		w.Append("earliest", a.Earliest)
		w.Append("latest", a.Latest)
	}
	return w.MarshalJSON()
}

// Allocation is the principal invested under a label.
type Allocation struct {
	Label string
	Value float64
}

// Allocations is a breakdown of the principal by label, largest first.
type Allocations []Allocation

// allocate groups the principal by the label returned by key.
func allocate(records []Record, key func(Record) string) Allocations {
	index := make(map[string]int)
	var result Allocations
	for _, r := range records {
		label := key(r)
		i, ok := index[label]
		if !ok {
			i = len(result)
			index[label] = i
			result = append(result, Allocation{Label: label})
		}
		result[i].Value += r.Amount
	}
	slices.SortStableFunc(result, func(a, b Allocation) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return result
}

// Total returns the sum of all allocations.
func (a Allocations) Total() float64 {
	var total float64
	for _, x := range a {
		total += x.Value
	}
	return total
}

// Get returns the value allocated to label.
func (a Allocations) Get(label string) (float64, bool) {
	i := slices.IndexFunc(a, func(x Allocation) bool { return x.Label == label })
	if i < 0 {
		return 0, false
	}
	return a[i].Value, true
}

// Map returns the allocations as a label to value mapping.
func (a Allocations) Map() map[string]float64 {
	m := make(map[string]float64, len(a))
	for _, x := range a {
		m[x.Label] = x.Value
	}
	return m
}

// Share returns the weight of the i-th allocation in the total.
func (a Allocations) Share(i int) Percent {
	total := a.Total()
	if total == 0 {
		return 0
	}
	return Percent(100 * a[i].Value / total)
}

// MarshalJSON writes the allocations as a json object, keeping the largest first.
func (a Allocations) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, x := range a {
		w.Append(x.Label, x.Value)
	}
	return w.MarshalJSON()
}
