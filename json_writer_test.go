package investview

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/etnz/investview/date"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		w.Optional("skipped", "")
		w.Optional("c", true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"b":1,"a":"hello","c":true}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("escapes keys", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("Ações \"BR\"", 1)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var m map[string]int
		if err := json.Unmarshal(got, &m); err != nil {
			t.Fatalf("invalid json %s: %v", got, err)
		}
		if m["Ações \"BR\""] != 1 {
			t.Errorf("got %s, want the key preserved", got)
		}
	})

	t.Run("reports the first error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("nan", math.NaN())
		w.Append("ok", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error for NaN")
		}
	})
}

func TestAggregate_MarshalJSON(t *testing.T) {
	records := mustParse(t, `data,subtipo,emissor,valor_investido,taxa_retorno_anual
2023-01-01,LCI,BancoY,500,0
2023-01-01,CDB,BancoX,1000,0`)
	a := Evaluate(records, date.New(2023, time.January, 1))

	got, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	want := `{"on":"2023-01-01","records":2,"totalInvested":1500,"currentValue":1500,"totalReturn":0,` +
		`"allocationBySubtype":{"CDB":1000,"LCI":500},"allocationByIssuer":{"BancoX":1000,"BancoY":500},` +
		`"uniqueAssetCount":2,"uniqueIssuerCount":2,"earliest":"2023-01-01","latest":"2023-01-01"}`
	if string(got) != want {
		t.Errorf("json.Marshal() =\n%s\nwant\n%s", got, want)
	}
}
