package catalog

// ============================================================================
// RECORD — One catalog item
// ============================================================================
// Records are immutable once generated. The dataset is a fixed-size ordered
// sequence held in memory for the lifetime of the process; every query stage
// only reads it.
// ============================================================================

// Canonical field names. Every filter, group-by, and aggregation the
// translator emits references one of these nine names.
const (
	FieldProduct       = "product"
	FieldBrand         = "brand"
	FieldSubtype       = "subtype"
	FieldModel         = "model"
	FieldListPrice     = "list_price"
	FieldPurchaseCost  = "purchase_cost"
	FieldProfit        = "profit"
	FieldPurchaseDate  = "purchase_date"
	FieldStockQuantity = "stock_quantity"
)

// FieldNames lists the canonical fields in schema order.
var FieldNames = []string{
	FieldProduct,
	FieldBrand,
	FieldSubtype,
	FieldModel,
	FieldListPrice,
	FieldPurchaseCost,
	FieldProfit,
	FieldPurchaseDate,
	FieldStockQuantity,
}

// Record is a single catalog item. Profit is always ListPrice - PurchaseCost,
// non-negative by construction. PurchaseDate uses ISO format (2006-01-02).
type Record struct {
	Product       string  `json:"product"`
	Brand         string  `json:"brand"`
	Subtype       string  `json:"subtype"`
	Model         string  `json:"model"`
	ListPrice     float64 `json:"list_price"`
	PurchaseCost  float64 `json:"purchase_cost"`
	Profit        float64 `json:"profit"`
	PurchaseDate  string  `json:"purchase_date"`
	StockQuantity int     `json:"stock_quantity"`
}

// IsCanonical reports whether name is one of the nine canonical field names.
func IsCanonical(name string) bool {
	for _, f := range FieldNames {
		if f == name {
			return true
		}
	}
	return false
}

// Field returns the value of a canonical field by name. The second return is
// false for unknown names, which filter evaluation treats as vacuously true.
func (r Record) Field(name string) (any, bool) {
	switch name {
	case FieldProduct:
		return r.Product, true
	case FieldBrand:
		return r.Brand, true
	case FieldSubtype:
		return r.Subtype, true
	case FieldModel:
		return r.Model, true
	case FieldListPrice:
		return r.ListPrice, true
	case FieldPurchaseCost:
		return r.PurchaseCost, true
	case FieldProfit:
		return r.Profit, true
	case FieldPurchaseDate:
		return r.PurchaseDate, true
	case FieldStockQuantity:
		return r.StockQuantity, true
	}
	return nil, false
}

// AsRow converts the record into a generic row keyed by canonical field name.
func (r Record) AsRow() map[string]any {
	return map[string]any{
		FieldProduct:       r.Product,
		FieldBrand:         r.Brand,
		FieldSubtype:       r.Subtype,
		FieldModel:         r.Model,
		FieldListPrice:     r.ListPrice,
		FieldPurchaseCost:  r.PurchaseCost,
		FieldProfit:        r.Profit,
		FieldPurchaseDate:  r.PurchaseDate,
		FieldStockQuantity: r.StockQuantity,
	}
}
