package engine

import "github.com/consulta-org/consulta/catalog"

// testRecords is a small fixed catalog used across the engine tests.
func testRecords() []catalog.Record {
	return []catalog.Record{
		{Product: "Portátil", Brand: "Acme", Subtype: "Ultrabook", Model: "Serie A",
			ListPrice: 1200, PurchaseCost: 900, Profit: 300, PurchaseDate: "2024-01-10", StockQuantity: 5},
		{Product: "Portátil", Brand: "Zenit", Subtype: "Gaming", Model: "Serie B",
			ListPrice: 1500, PurchaseCost: 1100, Profit: 400, PurchaseDate: "2024-02-20", StockQuantity: 2},
		{Product: "Tablet", Brand: "Acme", Subtype: "Compacta", Model: "Serie C",
			ListPrice: 600, PurchaseCost: 450, Profit: 150, PurchaseDate: "2024-03-05", StockQuantity: 10},
		{Product: "Monitor", Brand: "Orbit", Subtype: "Curvo", Model: "Serie D",
			ListPrice: 500, PurchaseCost: 420, Profit: 80, PurchaseDate: "2024-04-15", StockQuantity: 7},
	}
}
