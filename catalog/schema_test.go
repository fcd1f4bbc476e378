package catalog

import "testing"

func TestSchemaTypesAndExamples(t *testing.T) {
	dataset := []Record{{
		Product: "Portátil", Brand: "Acme", Subtype: "Gaming", Model: "Atlas A1",
		ListPrice: 1200, PurchaseCost: 900, Profit: 300,
		PurchaseDate: "2024-01-10", StockQuantity: 5,
	}}
	schema := Schema(dataset)

	if len(schema) != len(FieldNames) {
		t.Fatalf("got %d fields, want %d", len(schema), len(FieldNames))
	}
	cases := []struct {
		field   string
		typ     string
		example any
	}{
		{FieldProduct, "string", "Portátil"},
		{FieldListPrice, "number", 1200.0},
		{FieldPurchaseDate, "date", "2024-01-10"},
		{FieldStockQuantity, "integer", 5},
	}
	for _, c := range cases {
		info, ok := schema[c.field]
		if !ok {
			t.Errorf("field %s missing", c.field)
			continue
		}
		if info.Type != c.typ || info.Example != c.example {
			t.Errorf("%s = %+v, want {%s %v}", c.field, info, c.typ, c.example)
		}
	}
}

func TestSchemaEmptyDataset(t *testing.T) {
	if got := Schema(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestSampleClamps(t *testing.T) {
	dataset := Generate(10, DefaultSeed, testNow)
	cases := []struct{ n, want int }{
		{5, 5},
		{0, 1},
		{-3, 1},
		{25, 10},
	}
	for _, c := range cases {
		if got := Sample(dataset, c.n); len(got) != c.want {
			t.Errorf("Sample(n=%d): got %d records, want %d", c.n, len(got), c.want)
		}
	}
	if Sample(nil, 5) != nil {
		t.Error("empty dataset should return nil")
	}
}

func TestRecordFieldAndAsRow(t *testing.T) {
	r := Record{Brand: "Acme", Profit: 42.5, StockQuantity: 7}

	if v, ok := r.Field(FieldBrand); !ok || v != "Acme" {
		t.Errorf("Field(brand) = %v, %v", v, ok)
	}
	if _, ok := r.Field("nada"); ok {
		t.Error("unknown field should not resolve")
	}

	row := r.AsRow()
	if len(row) != len(FieldNames) {
		t.Errorf("row has %d keys, want %d", len(row), len(FieldNames))
	}
	if row[FieldProfit] != 42.5 || row[FieldStockQuantity] != 7 {
		t.Errorf("row = %v", row)
	}
}
