package helpers

import (
	"strings"
	"testing"

	"github.com/consulta-org/consulta/engine"
	"github.com/consulta-org/consulta/translator"
)

func TestResultColumns(t *testing.T) {
	flat := ResultColumns(translator.QueryIntent{})
	if len(flat) != 9 || flat[0] != "product" {
		t.Errorf("flat columns = %v", flat)
	}

	grouped := ResultColumns(translator.QueryIntent{
		GroupBy: []string{"brand"},
		Aggregations: []translator.Aggregation{
			{Field: "profit", Kind: translator.AggSum, Alias: "total_beneficio"},
			{Field: "count", Kind: translator.AggCount, Alias: "conteo"},
		},
	})
	want := []string{"brand", "total_beneficio", "conteo"}
	if len(grouped) != len(want) {
		t.Fatalf("grouped columns = %v, want %v", grouped, want)
	}
	for i := range want {
		if grouped[i] != want[i] {
			t.Errorf("column %d = %s, want %s", i, grouped[i], want[i])
		}
	}
}

func TestWriteRowsCSV(t *testing.T) {
	var sb strings.Builder
	rows := []engine.Row{
		{"brand": "Acme", "total_beneficio": 450.0},
		{"brand": "Orbit"}, // missing cell renders empty
	}
	if err := WriteRowsCSV(&sb, []string{"brand", "total_beneficio"}, rows); err != nil {
		t.Fatal(err)
	}
	want := "brand,total_beneficio\nAcme,450\nOrbit,\n"
	if sb.String() != want {
		t.Errorf("csv = %q, want %q", sb.String(), want)
	}
}
