package translator

import "time"

// ============================================================================
// QUERY INTENT — Contract between the extractor and the engine
// ============================================================================
// The compiled representation of a question. Built once per request by the
// ordered extraction pipeline; the engine never mutates it.
// ============================================================================

// Operator is a filter comparison operator.
type Operator string

const (
	OpContains Operator = "contains"
	OpEq       Operator = "="
	OpLt       Operator = "<"
	OpLte      Operator = "<="
	OpGt       Operator = ">"
	OpGte      Operator = ">="
)

// Filter is one AND-combined record predicate. Contains filters carry Text;
// relational filters carry Value.
type Filter struct {
	Field string   `json:"field"`
	Op    Operator `json:"op"`
	Text  string   `json:"text,omitempty"`
	Value float64  `json:"value,omitempty"`
}

// DateRange bounds the purchase date, inclusive on both ends. A nil bound
// means unbounded on that side.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// AggKind is an aggregation kind.
type AggKind string

const (
	AggSum   AggKind = "sum"
	AggMean  AggKind = "mean"
	AggCount AggKind = "count"
)

// Aggregation requests one computation over a canonical field (or the
// pseudo-field "count"), emitted under a fixed output alias.
type Aggregation struct {
	Field string  `json:"field"`
	Kind  AggKind `json:"kind"`
	Alias string  `json:"alias"`
}

// OrderBy describes the requested result ordering.
type OrderBy struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // "asc" or "desc"
}

// QueryIntent is the structured form of a free-text question.
type QueryIntent struct {
	Filters        []Filter      `json:"filters"`
	DateRange      DateRange     `json:"date_range"`
	GroupBy        []string      `json:"group_by"`
	Aggregations   []Aggregation `json:"aggregations"`
	OrderBy        *OrderBy      `json:"order_by,omitempty"`
	Limit          *int          `json:"limit,omitempty"`
	AssumedDefault bool          `json:"assumed_default"`
}

// AggregationFor returns the aggregation requested for a field, if any.
// At most one aggregation exists per field.
func (q QueryIntent) AggregationFor(field string) (Aggregation, bool) {
	for _, a := range q.Aggregations {
		if a.Field == field {
			return a, true
		}
	}
	return Aggregation{}, false
}

// HasAggregation reports whether an aggregation was requested for a field.
func (q QueryIntent) HasAggregation(field string) bool {
	_, ok := q.AggregationFor(field)
	return ok
}

func (q QueryIntent) hasLimit() bool {
	return q.Limit != nil && *q.Limit != 0
}
