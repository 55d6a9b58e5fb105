package investview

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/investview/date"
)

// mustParse parses text or fails the test.
func mustParse(t *testing.T, text string) []Record {
	t.Helper()
	records, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	return records
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b)) }

func TestYearsBetween(t *testing.T) {
	from := date.New(2023, time.January, 1)
	if got := YearsBetween(from, from); got != 0 {
		t.Errorf("YearsBetween(same day) = %v, want 0", got)
	}
	if got, want := YearsBetween(from, date.New(2024, time.January, 1)), 365/365.25; got != want {
		t.Errorf("YearsBetween(365 days) = %v, want %v", got, want)
	}
	if got := YearsBetween(date.New(2024, time.January, 1), from); got >= 0 {
		t.Errorf("YearsBetween(backwards) = %v, want negative", got)
	}
}

func TestFutureValue(t *testing.T) {
	acquired := date.New(2023, time.January, 1)
	testCases := []struct {
		name string
		r    Record
		on   date.Date
		want float64
	}{
		{
			name: "same day returns the principal",
			r:    Record{Date: acquired, Amount: 1234.56, Rate: 0.37},
			on:   acquired,
			want: 1234.56,
		},
		{
			name: "zero rate returns the principal",
			r:    Record{Date: acquired, Amount: 1234.56, Rate: 0},
			on:   date.New(2050, time.June, 1),
			want: 1234.56,
		},
		{
			name: "exactly 365.25 days compounds one year",
			r:    Record{Date: date.New(2020, time.January, 1), Amount: 100, Rate: 0.5},
			// 4 years = 1461 days = 4 * 365.25
			on:   date.New(2024, time.January, 1),
			want: 100 * 1.5 * 1.5 * 1.5 * 1.5,
		},
		{
			name: "before acquisition discounts",
			r:    Record{Date: date.New(2024, time.January, 1), Amount: 100, Rate: 0.5},
			on:   date.New(2020, time.January, 1),
			want: 100 / (1.5 * 1.5 * 1.5 * 1.5),
		},
		{
			name: "negative rate loses value",
			r:    Record{Date: date.New(2020, time.January, 1), Amount: 100, Rate: -0.5},
			on:   date.New(2024, time.January, 1),
			want: 100 * 0.5 * 0.5 * 0.5 * 0.5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FutureValue(tc.r, tc.on); !almostEqual(got, tc.want) {
				t.Errorf("FutureValue() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFutureValue_ExactPrincipal(t *testing.T) {
	// Exact equality, not approximate.
	r := Record{Date: date.New(2023, time.March, 3), Amount: 0.1 + 0.2, Rate: 0.123}
	if got := FutureValue(r, r.Date); got != r.Amount {
		t.Errorf("FutureValue(on acquisition) = %v, want exactly %v", got, r.Amount)
	}
	r.Rate = 0
	if got := FutureValue(r, date.New(2099, time.March, 3)); got != r.Amount {
		t.Errorf("FutureValue(rate 0) = %v, want exactly %v", got, r.Amount)
	}
}

func TestEvaluate(t *testing.T) {
	records := mustParse(t, sampleCSV)
	on := date.New(2024, time.January, 1)
	a := Evaluate(records, on)

	years := 365 / 365.25
	wantValue := 1000*math.Pow(1.10, years) + 500*math.Pow(1.05, years)
	if !almostEqual(a.CurrentValue, wantValue) {
		t.Errorf("CurrentValue = %v, want %v", a.CurrentValue, wantValue)
	}
	if a.CurrentValue < 1620 || a.CurrentValue > 1630 {
		t.Errorf("CurrentValue = %v, want about 1624", a.CurrentValue)
	}
	if a.TotalInvested != 1500 {
		t.Errorf("TotalInvested = %v, want 1500", a.TotalInvested)
	}
	if !almostEqual(a.TotalReturn, wantValue-1500) {
		t.Errorf("TotalReturn = %v, want %v", a.TotalReturn, wantValue-1500)
	}
	if got := a.BySubtype.Map(); len(got) != 2 || got["CDB"] != 1000 || got["LCI"] != 500 {
		t.Errorf("BySubtype = %v, want map[CDB:1000 LCI:500]", got)
	}
	if a.UniqueIssuers != 2 {
		t.Errorf("UniqueIssuers = %d, want 2", a.UniqueIssuers)
	}
	if a.UniqueAssets != 2 {
		t.Errorf("UniqueAssets = %d, want 2", a.UniqueAssets)
	}
	if a.Records != 2 || a.On != on {
		t.Errorf("Records, On = %d, %v want 2, %v", a.Records, a.On, on)
	}
}

func TestEvaluate_Groupings(t *testing.T) {
	records := mustParse(t, `data,subtipo,emissor,valor_investido,taxa_retorno_anual
2022-05-10,CDB,Banco A,300,0.1
2021-01-15,LCI,Banco A,200,0.08
2023-07-01,CDB,Banco B,700,0.12
2022-05-10,CDB,Banco A,100,0.1
2020-02-02,cdb,Banco B,50,0.1
2024-01-01,Tesouro Direto,Tesouro,150,0.11`)
	a := Evaluate(records, date.New(2024, time.June, 1))

	if a.TotalInvested != 1500 {
		t.Errorf("TotalInvested = %v, want 1500", a.TotalInvested)
	}
	if got := a.BySubtype.Total(); got != a.TotalInvested {
		t.Errorf("BySubtype.Total() = %v, want %v", got, a.TotalInvested)
	}
	if got := a.ByIssuer.Total(); got != a.TotalInvested {
		t.Errorf("ByIssuer.Total() = %v, want %v", got, a.TotalInvested)
	}

	wantSubtypes := Allocations{{"CDB", 1100}, {"LCI", 200}, {"Tesouro Direto", 150}, {"cdb", 50}}
	if len(a.BySubtype) != len(wantSubtypes) {
		t.Fatalf("BySubtype = %v, want %v", a.BySubtype, wantSubtypes)
	}
	for i := range wantSubtypes {
		if a.BySubtype[i] != wantSubtypes[i] {
			t.Errorf("BySubtype[%d] = %v, want %v", i, a.BySubtype[i], wantSubtypes[i])
		}
	}

	wantIssuers := Allocations{{"Banco B", 750}, {"Banco A", 600}, {"Tesouro", 150}}
	for i := range wantIssuers {
		if a.ByIssuer[i] != wantIssuers[i] {
			t.Errorf("ByIssuer[%d] = %v, want %v", i, a.ByIssuer[i], wantIssuers[i])
		}
	}

	// (Banco A, CDB), (Banco A, LCI), (Banco B, CDB), (Banco B, cdb), (Tesouro, Tesouro Direto)
	if a.UniqueAssets != 5 {
		t.Errorf("UniqueAssets = %d, want 5", a.UniqueAssets)
	}
	if a.UniqueIssuers != 3 {
		t.Errorf("UniqueIssuers = %d, want 3", a.UniqueIssuers)
	}
	if a.Earliest != date.New(2020, time.February, 2) || a.Latest != date.New(2024, time.January, 1) {
		t.Errorf("Earliest, Latest = %v, %v want 2020-02-02, 2024-01-01", a.Earliest, a.Latest)
	}

	var want float64
	for _, r := range records {
		want += FutureValue(r, a.On)
	}
	if a.CurrentValue != want {
		t.Errorf("CurrentValue = %v, want the sum of future values %v", a.CurrentValue, want)
	}
}

// Pairs must not collide when labels contain the separator a string key would use.
func TestEvaluate_UniqueAssetsArePairs(t *testing.T) {
	records := []Record{
		{Issuer: "A-B", Subtype: "C", Amount: 1},
		{Issuer: "A", Subtype: "B-C", Amount: 1},
	}
	if got := Evaluate(records, date.Today()).UniqueAssets; got != 2 {
		t.Errorf("UniqueAssets = %d, want 2", got)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	a := Evaluate(nil, date.New(2024, time.January, 1))
	if a.TotalInvested != 0 || a.CurrentValue != 0 || a.TotalReturn != 0 {
		t.Errorf("Evaluate(nil) totals = %v, %v, %v want zeros", a.TotalInvested, a.CurrentValue, a.TotalReturn)
	}
	if len(a.BySubtype) != 0 || a.UniqueAssets != 0 || !a.Earliest.IsZero() {
		t.Errorf("Evaluate(nil) = %+v, want empty", a)
	}
	if a.ReturnRate() != 0 {
		t.Errorf("ReturnRate() = %v, want 0", a.ReturnRate())
	}
}

func TestAllocations_Share(t *testing.T) {
	a := Allocations{{"CDB", 1000}, {"LCI", 500}}
	if got := a.Share(0); !got.Equal(66.6667) {
		t.Errorf("Share(0) = %v, want 66.67%%", got)
	}
	if got := a.Share(1); !got.Equal(33.3333) {
		t.Errorf("Share(1) = %v, want 33.33%%", got)
	}
	if got := (Allocations{{"X", 0}}).Share(0); got != 0 {
		t.Errorf("Share() of a zero total = %v, want 0", got)
	}
	if v, ok := a.Get("LCI"); !ok || v != 500 {
		t.Errorf("Get(LCI) = %v, %v want 500, true", v, ok)
	}
	if _, ok := a.Get("LCA"); ok {
		t.Error("Get(LCA) = ok, want not found")
	}
}
