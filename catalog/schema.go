package catalog

// ============================================================================
// SCHEMA — Dataset shape exposed to the calling host
// ============================================================================
// The declared types are part of the host contract; they come from a static
// field table, while the example values come from the first record.
// ============================================================================

// FieldInfo describes one schema field for the host.
type FieldInfo struct {
	Type    string `json:"type"`
	Example any    `json:"example"`
}

// fieldTypes maps canonical fields to their declared types.
var fieldTypes = map[string]string{
	FieldProduct:       "string",
	FieldBrand:         "string",
	FieldSubtype:       "string",
	FieldModel:         "string",
	FieldListPrice:     "number",
	FieldPurchaseCost:  "number",
	FieldProfit:        "number",
	FieldPurchaseDate:  "date",
	FieldStockQuantity: "integer",
}

// Schema returns the field name → {type, example} mapping derived from the
// first record of the dataset. Empty datasets yield an empty mapping.
func Schema(dataset []Record) map[string]FieldInfo {
	out := make(map[string]FieldInfo, len(FieldNames))
	if len(dataset) == 0 {
		return out
	}
	first := dataset[0]
	for _, name := range FieldNames {
		example, _ := first.Field(name)
		out[name] = FieldInfo{Type: fieldTypes[name], Example: example}
	}
	return out
}

// Sample returns the first clamp(n, 1, len(dataset)) records in dataset order.
func Sample(dataset []Record, n int) []Record {
	if len(dataset) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > len(dataset) {
		n = len(dataset)
	}
	return dataset[:n]
}
