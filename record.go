package investview

import "github.com/etnz/investview/date"

// Column names expected in the CSV header, in their canonical order.
const (
	ColumnDate    = "data"
	ColumnSubtype = "subtipo"
	ColumnIssuer  = "emissor"
	ColumnAmount  = "valor_investido"
	ColumnRate    = "taxa_retorno_anual"
)

// Columns is the exact set of header labels. Files may list them in any order.
var Columns = []string{ColumnDate, ColumnSubtype, ColumnIssuer, ColumnAmount, ColumnRate}

// Record is one validated investment: a principal contributed on a day, in an
// asset of a given subtype sold by an issuer, growing at an annual rate.
type Record struct {
	// Date is the acquisition day.
	Date date.Date `json:"date"`
	// Subtype is the asset taxonomy label, e.g. "CDB" or "Tesouro Direto".
	Subtype string `json:"subtype"`
	// Issuer is the institution that issued the asset.
	Issuer string `json:"issuer"`
	// Amount is the principal invested on Date. Never negative.
	Amount float64 `json:"amount"`
	// Rate is the annual return as a fraction: 0.10 is 10% a year. May be negative.
	Rate float64 `json:"rate"`
}

// asset identifies a distinct holding: the same subtype from the same issuer.
type asset struct{ issuer, subtype string }

func (r Record) asset() asset { return asset{r.Issuer, r.Subtype} }
