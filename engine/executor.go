package engine

import (
	"github.com/consulta-org/consulta/catalog"
	"github.com/consulta-org/consulta/translator"
)

// ============================================================================
// EXECUTOR — Sequences the query pipeline
// ============================================================================
// Pipeline:
//   1. Apply filters + date range
//   2. Group and aggregate (or aggregate flat)
//   3. Sort and limit
//   4. Build summary and applied-filter descriptors
//
// Execute is total over any QueryIntent: unknown fields degrade, never fail.
// The dataset is read-only; every intermediate structure is request-scoped.
// ============================================================================

// Execute runs a compiled QueryIntent against the dataset.
func Execute(intent translator.QueryIntent, dataset []catalog.Record) *Result {
	filtered := ApplyFilters(dataset, intent.Filters, intent.DateRange)

	var rows []Row
	metrics := map[string]float64{}

	if len(intent.GroupBy) > 0 {
		grouped, m := GroupAndAggregate(filtered, intent.GroupBy, intent.Aggregations)
		rows = SortAndLimit(grouped, intent.OrderBy, intent.Limit)
		metrics = m
	} else {
		if len(intent.Aggregations) > 0 {
			metrics = AggregateFlat(filtered, intent.Aggregations)
		}
		rows = SortAndLimit(recordRows(filtered), intent.OrderBy, intent.Limit)
	}

	return &Result{
		Summary:        BuildSummary(intent, len(rows)),
		Rows:           rows,
		Metrics:        metrics,
		AppliedFilters: appliedFilters(intent.Filters),
	}
}

func recordRows(records []catalog.Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row(r.AsRow())
	}
	return rows
}

// appliedFilters groups human-readable filter descriptors by field.
func appliedFilters(filters []translator.Filter) map[string][]string {
	out := make(map[string][]string, len(filters))
	for _, f := range filters {
		var desc string
		if f.Op == translator.OpContains {
			desc = f.Text
		} else {
			desc = string(f.Op) + " " + FormatNumber(f.Value)
		}
		out[f.Field] = append(out[f.Field], desc)
	}
	return out
}
