package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/investview"
	"github.com/etnz/investview/date"
)

// Report is the view of a portfolio valuation on a given day.
type Report struct {
	Date     date.Date
	Currency string
	Records  int

	TotalInvested investview.Money
	CurrentValue  investview.Money
	TotalReturn   investview.Money
	ReturnRate    investview.Percent

	UniqueAssets  int
	UniqueIssuers int

	// Earliest and Latest are only meaningful when Records > 0.
	Earliest, Latest date.Date

	BySubtype   AllocationTable
	ByIssuer    AllocationTable
	Performance HistoryTable
}

// AllocationTable lists the principal invested per label.
type AllocationTable struct {
	Title string
	Label string // header of the label column
	Rows  []AllocationRow
	Total investview.Money
}

type AllocationRow struct {
	Label string
	Value investview.Money
	Share investview.Percent
}

// HistoryTable lists the portfolio value day by day.
type HistoryTable struct {
	Title string
	Rows  []HistoryRow
}

type HistoryRow struct {
	Date  date.Date
	Value investview.Money
}

// NewReport builds the report view of an aggregate and its value series.
func NewReport(a *investview.Aggregate, series []investview.Point, currency string) *Report {
	return &Report{
		Date:          a.On,
		Currency:      currency,
		Records:       a.Records,
		TotalInvested: investview.M(a.TotalInvested, currency),
		CurrentValue:  investview.M(a.CurrentValue, currency),
		TotalReturn:   investview.M(a.TotalReturn, currency),
		ReturnRate:    a.ReturnRate(),
		UniqueAssets:  a.UniqueAssets,
		UniqueIssuers: a.UniqueIssuers,
		Earliest:      a.Earliest,
		Latest:        a.Latest,
		BySubtype:     NewAllocationTable(subtypeTitle, "Subtype", a.BySubtype, currency),
		ByIssuer:      NewAllocationTable(issuerTitle, "Issuer", a.ByIssuer, currency),
		Performance:   NewHistoryTable("Performance", series, currency),
	}
}

const (
	subtypeTitle = "Allocation by Asset Type"
	issuerTitle  = "Allocation by Issuer"
)

// NewAllocationBy returns the allocation table of a by "subtype" or "issuer".
func NewAllocationBy(a *investview.Aggregate, by, currency string) (*AllocationTable, error) {
	var t AllocationTable
	switch by {
	case "subtype":
		t = NewAllocationTable(subtypeTitle, "Subtype", a.BySubtype, currency)
	case "issuer":
		t = NewAllocationTable(issuerTitle, "Issuer", a.ByIssuer, currency)
	default:
		return nil, fmt.Errorf("invalid allocation dimension %q, expected subtype or issuer", by)
	}
	return &t, nil
}

// cellEscaper keeps free text labels inside their markdown table cell.
var cellEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`)

func NewAllocationTable(title, label string, allocs investview.Allocations, currency string) AllocationTable {
	t := AllocationTable{
		Title: title,
		Label: label,
		Rows:  make([]AllocationRow, 0, len(allocs)),
		Total: investview.M(allocs.Total(), currency),
	}
	for i, a := range allocs {
		t.Rows = append(t.Rows, AllocationRow{
			Label: cellEscaper.Replace(a.Label),
			Value: investview.M(a.Value, currency),
			Share: allocs.Share(i),
		})
	}
	return t
}

func NewHistoryTable(title string, series []investview.Point, currency string) HistoryTable {
	t := HistoryTable{Title: title, Rows: make([]HistoryRow, 0, len(series))}
	for _, p := range series {
		t.Rows = append(t.Rows, HistoryRow{Date: p.Date, Value: investview.M(p.Value, currency)})
	}
	return t
}
