package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/consulta-org/consulta/translator"
)

// ============================================================================
// SUMMARY GENERATOR — Human-readable description of the executed query
// ============================================================================
// One period-joined sentence covering aggregations, grouping, filters, and
// the default-interpretation note. When none of those apply it states how
// many rows are shown.
// ============================================================================

// BuildSummary renders the executed intent as a sentence. shown is the number
// of rows in the response.
func BuildSummary(intent translator.QueryIntent, shown int) string {
	var parts []string

	if len(intent.Aggregations) > 0 {
		descriptions := lo.Map(intent.Aggregations, func(a translator.Aggregation, _ int) string {
			return describeAggregation(a)
		})
		parts = append(parts, "Se calcularon "+strings.Join(descriptions, ", "))
	}

	if len(intent.GroupBy) > 0 {
		parts = append(parts, "agrupado por "+strings.Join(intent.GroupBy, ", "))
	}

	if len(intent.Filters) > 0 {
		descriptions := lo.Map(intent.Filters, func(f translator.Filter, _ int) string {
			return DescribeFilter(f)
		})
		parts = append(parts, "con filtros: "+strings.Join(descriptions, ", "))
	}

	if intent.AssumedDefault {
		parts = append(parts, "Interpretación por defecto: top 10 por beneficio")
	}

	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("Se muestran %d registros filtrados del catálogo", shown))
	}

	return strings.Join(parts, ". ")
}

// DescribeFilter renders one filter for summaries and applied-filter lists.
func DescribeFilter(f translator.Filter) string {
	if f.Op == translator.OpContains {
		return fmt.Sprintf("%s contiene '%s'", f.Field, f.Text)
	}
	return fmt.Sprintf("%s %s %s", f.Field, f.Op, FormatNumber(f.Value))
}

func describeAggregation(a translator.Aggregation) string {
	switch a.Kind {
	case translator.AggCount:
		return "conteo de registros"
	case translator.AggSum:
		return "suma de " + a.Field
	case translator.AggMean:
		return "promedio de " + a.Field
	}
	return a.Alias
}

// FormatNumber renders a float without a trailing ".0" for whole values.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
