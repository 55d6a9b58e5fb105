package investview

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, for display.
//
// Valuation runs on float64. Money only exists at the presentation edge to
// round to the currency fraction and format with the currency conventions
// (BRL prints as R$1.234,56).
type Money struct {
	value   decimal.Decimal // major unit
	cur     string
	invalid bool // built from NaN or an infinity
}

// M returns the money value of v in currency.
func M(v float64, currency string) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{cur: currency, invalid: true}
	}
	return Money{value: decimal.NewFromFloat(v), cur: currency}
}

// fraction returns the number of decimals of the currency, 2 for unknown codes.
func (m Money) fraction() int32 {
	if cur := money.GetCurrency(m.cur); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsZero() bool     { return !m.invalid && m.value.IsZero() }

// Round returns the amount rounded to the currency fraction.
func (m Money) Round() decimal.Decimal {
	return m.value.Round(m.fraction())
}

// String formats the amount with the currency grapheme and separators.
func (m Money) String() string {
	if m.invalid {
		return "n/a"
	}
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		// go-money formats unknown codes with an empty template.
		return strings.TrimSpace(m.value.StringFixed(2) + " " + m.cur)
	}
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.invalid:
		return "n/a"
	case m.Round().IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	if m.invalid {
		w.Append("amount", nil)
	} else {
		w.Append("amount", m.Round())
	}
	return w.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Currency string           `json:"currency"`
		Amount   *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Money{cur: v.Currency}
	if v.Amount == nil {
		m.invalid = true
		return nil
	}
	m.value = *v.Amount
	return nil
}
