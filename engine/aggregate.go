package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/consulta-org/consulta/catalog"
	"github.com/consulta-org/consulta/translator"
)

// ============================================================================
// AGGREGATION ENGINE — Grouped and ungrouped computation
// ============================================================================
// Grouped mode partitions records by the group-by value tuple, preserving
// first-encounter order, and computes per-group rows plus overall metrics.
// Overall mean metrics in grouped mode are the mean of the per-group means,
// not a flat mean over all records; that asymmetry is intentional.
// ============================================================================

// bucket accumulates one group during partitioning.
type bucket struct {
	keys  []any // group-by values, aligned with the groupBy fields
	count int
	sums  map[string]float64
}

// GroupAndAggregate partitions records by the group-by tuple and computes
// the requested aggregations per group and overall.
func GroupAndAggregate(records []catalog.Record, groupBy []string, aggs []translator.Aggregation) ([]Row, map[string]float64) {
	var order []string
	buckets := make(map[string]*bucket)

	for _, r := range records {
		keys := make([]any, len(groupBy))
		parts := make([]string, len(groupBy))
		for i, field := range groupBy {
			v, _ := r.Field(field)
			keys[i] = v
			parts[i] = fmt.Sprint(v)
		}
		key := strings.Join(parts, "\x1f")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{keys: keys, sums: make(map[string]float64)}
			buckets[key] = b
			order = append(order, key)
		}
		b.count++
		for _, a := range aggs {
			if a.Field == "count" {
				continue
			}
			if v, ok := r.Field(a.Field); ok {
				if n, ok := toNumber(v); ok {
					b.sums[a.Field] += n
				}
			}
		}
	}

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		row := make(Row, len(groupBy)+len(aggs))
		for i, field := range groupBy {
			row[field] = b.keys[i]
		}
		for _, a := range aggs {
			switch a.Kind {
			case translator.AggCount:
				row[a.Alias] = b.count
			case translator.AggSum:
				row[a.Alias] = round2(b.sums[a.Field])
			case translator.AggMean:
				if b.count > 0 {
					row[a.Alias] = round2(b.sums[a.Field] / float64(b.count))
				} else {
					row[a.Alias] = 0.0
				}
			}
		}
		rows = append(rows, row)
	}

	metrics := make(map[string]float64, len(aggs))
	for _, a := range aggs {
		switch a.Kind {
		case translator.AggCount:
			total := 0
			for _, key := range order {
				total += buckets[key].count
			}
			metrics[a.Alias] = float64(total)
		case translator.AggSum:
			var total float64
			for _, key := range order {
				total += buckets[key].sums[a.Field]
			}
			metrics[a.Alias] = round2(total)
		case translator.AggMean:
			// Mean of the per-group means, weighting by group.
			var sum float64
			var n int
			for _, key := range order {
				b := buckets[key]
				if b.count > 0 {
					sum += b.sums[a.Field] / float64(b.count)
					n++
				}
			}
			if n > 0 {
				metrics[a.Alias] = round2(sum / float64(n))
			}
		}
	}

	return rows, metrics
}

// AggregateFlat computes aggregations directly over an ungrouped record
// sequence; means here are true global means.
func AggregateFlat(records []catalog.Record, aggs []translator.Aggregation) map[string]float64 {
	metrics := make(map[string]float64, len(aggs))
	for _, a := range aggs {
		switch a.Kind {
		case translator.AggCount:
			metrics[a.Alias] = float64(len(records))
		case translator.AggSum:
			metrics[a.Alias] = round2(sumField(records, a.Field))
		case translator.AggMean:
			if len(records) == 0 {
				metrics[a.Alias] = 0
				continue
			}
			metrics[a.Alias] = round2(sumField(records, a.Field) / float64(len(records)))
		}
	}
	return metrics
}

func sumField(records []catalog.Record, field string) float64 {
	var total float64
	for _, r := range records {
		if v, ok := r.Field(field); ok {
			if n, ok := toNumber(v); ok {
				total += n
			}
		}
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
