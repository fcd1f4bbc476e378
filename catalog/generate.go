package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// ============================================================================
// GENERATOR — Deterministic synthetic dataset
// ============================================================================
// Same seed ⇒ same dataset every run (relative to the reference date). The
// generator is the only data source; there is no persistence.
// ============================================================================

// DefaultSize is the number of records generated at startup.
const DefaultSize = 50

// DefaultSeed is the RNG seed used when none is configured.
const DefaultSeed = 2025

var brands = []string{"Acme", "NovaTech", "Orbit", "Zenit", "Lumina", "Kairo", "Vertex"}

type productTemplate struct {
	product   string
	subtypes  []string
	models    []string
	basePrice float64
}

var productTemplates = []productTemplate{
	{
		product:   "Portátil",
		subtypes:  []string{"Ultrabook", "Gaming", "Empresarial", "Convertible"},
		models:    []string{"Atlas", "Vector", "Pulse", "Quantum"},
		basePrice: 1250,
	},
	{
		product:   "Smartphone",
		subtypes:  []string{"Premium", "Gama media", "Compacto", "Profesional"},
		models:    []string{"Nova", "Sfera", "Aero", "Helix"},
		basePrice: 780,
	},
	{
		product:   "Tablet",
		subtypes:  []string{"Profesional", "Educativa", "Creativa", "Compacta"},
		models:    []string{"Canvas", "Studio", "Prime", "Flow"},
		basePrice: 620,
	},
	{
		product:   "Monitor",
		subtypes:  []string{"OLED", "Curvo", "IPS", "UltraWide"},
		models:    []string{"Vision", "Spectra", "Orbit", "Crest"},
		basePrice: 540,
	},
	{
		product:   "Auriculares",
		subtypes:  []string{"Inalámbrico", "Cancelación activa", "Deportivo", "Studio"},
		models:    []string{"Echo", "Wave", "Pulse", "Sync"},
		basePrice: 210,
	},
}

var modelLetters = []string{"A", "B", "C", "D", "E"}
var modelSuffixes = []string{"", " Pro", " Plus", " Max"}

// Generate builds a dataset of size records from a seeded RNG. Purchase dates
// fall within the 540 days before now.
func Generate(size int, seed int64, now time.Time) []Record {
	rng := rand.New(rand.NewSource(seed))
	records := make([]Record, 0, size)
	for i := 0; i < size; i++ {
		tpl := productTemplates[rng.Intn(len(productTemplates))]
		subtype := tpl.subtypes[rng.Intn(len(tpl.subtypes))]
		modelBase := tpl.models[rng.Intn(len(tpl.models))]
		model := strings.TrimSpace(fmt.Sprintf("%s %s%d%s",
			modelBase,
			modelLetters[rng.Intn(len(modelLetters))],
			1+rng.Intn(9),
			modelSuffixes[rng.Intn(len(modelSuffixes))],
		))
		brand := brands[rng.Intn(len(brands))]

		cost := round2(uniform(rng, tpl.basePrice*0.55, tpl.basePrice*0.85))
		price := round2(uniform(rng, tpl.basePrice*0.9, tpl.basePrice*1.2))
		if price < cost {
			price = round2(cost + uniform(rng, 10, 120))
		}
		profit := round2(price - cost)

		purchaseDate := now.AddDate(0, 0, -rng.Intn(541)).Format("2006-01-02")
		stock := rng.Intn(201)

		records = append(records, Record{
			Product:       tpl.product,
			Brand:         brand,
			Subtype:       subtype,
			Model:         model,
			ListPrice:     price,
			PurchaseCost:  cost,
			Profit:        profit,
			PurchaseDate:  purchaseDate,
			StockQuantity: stock,
		})
	}
	return records
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
