package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/consulta-org/consulta/catalog"
	"github.com/consulta-org/consulta/translator"
)

// ============================================================================
// FILTER ENGINE — AND-combined predicates plus the date range
// ============================================================================
// A filter referencing a field the record does not have is vacuously true.
// Contains filters compare normalized text containment; relational filters
// coerce the record value to a number and exclude the record on failure.
// The result preserves dataset order.
// ============================================================================

// ApplyFilters returns the ordered subsequence of records passing every
// filter and the date range.
func ApplyFilters(records []catalog.Record, filters []translator.Filter, dr translator.DateRange) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if !matchesAll(r, filters) {
			continue
		}
		if !inDateRange(r, dr) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesAll(r catalog.Record, filters []translator.Filter) bool {
	for _, f := range filters {
		value, ok := r.Field(f.Field)
		if !ok {
			continue // unknown field: vacuously true
		}
		if !matches(value, f) {
			return false
		}
	}
	return true
}

func matches(value any, f translator.Filter) bool {
	if f.Op == translator.OpContains {
		want := translator.Normalize(f.Text)
		have := translator.Normalize(fmt.Sprint(value))
		return strings.Contains(have, want)
	}

	n, ok := toNumber(value)
	if !ok {
		return false // coercion failure excludes the record
	}
	switch f.Op {
	case translator.OpGt:
		return n > f.Value
	case translator.OpGte:
		return n >= f.Value
	case translator.OpLt:
		return n < f.Value
	case translator.OpLte:
		return n <= f.Value
	case translator.OpEq:
		return n == f.Value
	}
	return true
}

func inDateRange(r catalog.Record, dr translator.DateRange) bool {
	if dr.Start == nil && dr.End == nil {
		return true
	}
	d, err := time.Parse("2006-01-02", r.PurchaseDate)
	if err != nil {
		return false
	}
	if dr.Start != nil && d.Before(*dr.Start) {
		return false
	}
	if dr.End != nil && d.After(*dr.End) {
		return false
	}
	return true
}

// toNumber coerces a record value to float64. Strings are parsed; anything
// unparseable fails the coercion.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
