package engine

import (
	"fmt"
	"sort"

	"github.com/consulta-org/consulta/translator"
)

// ============================================================================
// SORT/LIMIT STAGE — Stable ordering, truncation, hard cap
// ============================================================================

// SortAndLimit orders rows by the optional order spec, applies the requested
// limit, and unconditionally caps the result at MaxRows. The sort is stable;
// values compare numerically when they coerce, lexicographically otherwise,
// and rows missing the order field compare as 0. An order field absent from
// the rows falls back to a normalized-text match against the row keys, and
// when nothing matches the rows pass through in their current order.
func SortAndLimit(rows []Row, order *translator.OrderBy, limit *int) []Row {
	if order != nil && len(rows) > 0 {
		field := resolveOrderField(rows[0], order.Field)
		desc := order.Direction == "desc"
		sorted := make([]Row, len(rows))
		copy(sorted, rows)
		sort.SliceStable(sorted, func(i, j int) bool {
			a := sorted[i][field]
			b := sorted[j][field]
			if desc {
				return lessValue(b, a)
			}
			return lessValue(a, b)
		})
		rows = sorted
	}
	if limit != nil && *limit < len(rows) {
		rows = rows[:*limit]
	}
	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	return rows
}

// resolveOrderField maps the order token onto an actual row key, handling
// case/accent mismatches between the token and a produced aggregation alias.
func resolveOrderField(first Row, field string) string {
	if _, ok := first[field]; ok {
		return field
	}
	for key := range first {
		if translator.Normalize(key) == field {
			return key
		}
	}
	return field
}

// lessValue compares two cell values. Missing cells count as 0; pairs that
// both coerce compare numerically, everything else compares as text.
func lessValue(a, b any) bool {
	if a == nil {
		a = 0.0
	}
	if b == nil {
		b = 0.0
	}
	an, aOK := toNumber(a)
	bn, bOK := toNumber(b)
	if aOK && bOK {
		return an < bn
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
