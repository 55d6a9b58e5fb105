package investview

import (
	"math"

	"github.com/etnz/investview/date"
)

// DaysPerYear is the average year length used to turn days into years.
// Compounding is not calendar aware: every year counts 365.25 days.
const DaysPerYear = 365.25

// YearsBetween returns the fractional number of years from one day to another.
// It is negative when to is before from.
func YearsBetween(from, to date.Date) float64 {
	return float64(to.Sub(from)) / DaysPerYear
}

// FutureValue compounds r from its acquisition day to on:
//
//	Amount × (1 + Rate) ^ YearsBetween(Date, on)
//
// When on is before the acquisition day the amount is discounted instead.
// The result is exactly Amount when on is the acquisition day or Rate is zero.
func FutureValue(r Record, on date.Date) float64 {
	years := YearsBetween(r.Date, on)
	if years == 0 || r.Rate == 0 {
		return r.Amount
	}
	return r.Amount * math.Pow(1+r.Rate, years)
}

// Evaluate values all records on a reference day and aggregates them.
//
// It is a pure function: nothing is cached, calling it again with the same
// arguments recomputes the same aggregate.
func Evaluate(records []Record, on date.Date) *Aggregate {
	a := &Aggregate{
		On:        on,
		Records:   len(records),
		BySubtype: allocate(records, func(r Record) string { return r.Subtype }),
		ByIssuer:  allocate(records, func(r Record) string { return r.Issuer }),
	}

	assets := make(map[asset]struct{})
	issuers := make(map[string]struct{})
	for i, r := range records {
		a.TotalInvested += r.Amount
		a.CurrentValue += FutureValue(r, on)
		assets[r.asset()] = struct{}{}
		issuers[r.Issuer] = struct{}{}

		if i == 0 || r.Date.Before(a.Earliest) {
			a.Earliest = r.Date
		}
		if i == 0 || r.Date.After(a.Latest) {
			a.Latest = r.Date
		}
	}
	a.TotalReturn = a.CurrentValue - a.TotalInvested
	a.UniqueAssets = len(assets)
	a.UniqueIssuers = len(issuers)
	return a
}
