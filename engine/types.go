package engine

// ============================================================================
// ENGINE TYPES — Result rows and response shape
// ============================================================================

// MaxRows is the hard cap on result rows, applied after any requested limit.
const MaxRows = 50

// Row is one result row: either a full record keyed by canonical field name,
// or a group row keyed by group-by fields plus aggregation aliases.
type Row map[string]any

// Result is the complete answer to one query.
type Result struct {
	Summary        string              `json:"summary"`
	Rows           []Row               `json:"rows"`
	Metrics        map[string]float64  `json:"metrics"`
	AppliedFilters map[string][]string `json:"applied_filters"`
}
