package translator

import (
	"strconv"
	"strings"
	"time"

	"github.com/consulta-org/consulta/catalog"
)

// ============================================================================
// INTENT EXTRACTOR — Ordered pattern rules over normalized text
// ============================================================================
// Extraction is a fixed pipeline over one intent accumulator; later rules
// read results set by earlier ones, so the order below is load-bearing.
// Extraction never fails: an absent pattern simply leaves the corresponding
// intent field empty, and malformed fragments are silently skipped.
// ============================================================================

// Extract compiles a free-text question into a QueryIntent using the current
// time as the reference date.
func Extract(text string) QueryIntent {
	return ExtractAt(text, time.Now())
}

// ExtractAt is Extract with an explicit reference date for relative ranges
// ("ultimos N meses", "este año").
func ExtractAt(raw string, now time.Time) QueryIntent {
	text := SubstituteAliases(Normalize(raw))
	var intent QueryIntent

	// 1. Group-by phrases.
	for _, g := range groupableFields {
		if strings.Contains(text, g.Phrase) {
			intent.GroupBy = append(intent.GroupBy, g.Field)
		}
	}

	// 2. Date range. "entre A y B" beats separate "desde"/"hasta"; relative
	// ranges below overwrite both bounds at once.
	if m := betweenDatesRe.FindStringSubmatch(text); m != nil {
		intent.DateRange.Start = parseDate(m[1])
		intent.DateRange.End = parseDate(m[2])
	} else {
		if m := sinceDateRe.FindStringSubmatch(text); m != nil {
			intent.DateRange.Start = parseDate(m[1])
		}
		if m := untilDateRe.FindStringSubmatch(text); m != nil {
			intent.DateRange.End = parseDate(m[1])
		}
	}
	// Relative bounds are truncated to date-only UTC: record dates parse as
	// UTC midnights, and carrying the clock time (or a local zone) would
	// exclude records on the inclusive boundary days.
	if m := lastMonthsRe.FindStringSubmatch(text); m != nil {
		if months, err := strconv.Atoi(m[1]); err == nil {
			start := dateOnly(now.AddDate(0, 0, -months*30))
			end := dateOnly(now)
			intent.DateRange = DateRange{Start: &start, End: &end}
		}
	}
	if strings.Contains(text, "este ano") {
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end := dateOnly(now)
		intent.DateRange = DateRange{Start: &start, End: &end}
	}

	// 3. Explicit string filters per field. Every match becomes its own
	// contains-filter; they AND-combine downstream.
	for _, rule := range stringFilterPatterns {
		for _, re := range rule.Patterns {
			for _, m := range re.FindAllStringSubmatch(text, -1) {
				if value := truncateValue(m[1]); value != "" {
					intent.Filters = append(intent.Filters, Filter{
						Field: rule.Field,
						Op:    OpContains,
						Text:  value,
					})
				}
			}
		}
	}

	// 4. Product-kind keywords, first matching synonym per group.
	for _, st := range subtypeSynonyms {
		for _, re := range st.Synonyms {
			if re.MatchString(text) {
				intent.Filters = append(intent.Filters, Filter{
					Field: catalog.FieldProduct,
					Op:    OpContains,
					Text:  st.Keyword,
				})
				break
			}
		}
	}

	// 5. Numeric filters: a fragment needs both a comparator phrase and a
	// number, otherwise it is skipped.
	for _, np := range numericPatterns {
		for _, fragment := range np.Scan.FindAllString(text, -1) {
			op, ok := detectComparator(fragment)
			if !ok {
				continue
			}
			value, ok := extractNumber(fragment)
			if !ok {
				continue
			}
			intent.Filters = append(intent.Filters, Filter{Field: np.Field, Op: op, Value: value})
		}
	}
	// Second pass: "al menos N" always emits >=. It may duplicate a filter
	// from the scan above, which is harmless under AND combination.
	for _, np := range numericPatterns {
		for _, m := range np.AtLeast.FindAllStringSubmatch(text, -1) {
			value, ok := parseNumber(m[2])
			if !ok {
				continue
			}
			intent.Filters = append(intent.Filters, Filter{Field: np.Field, Op: OpGte, Value: value})
		}
	}

	// 6. Aggregation triggers, first matching phrase per field.
	for _, rule := range aggregationTriggers {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				intent.Aggregations = append(intent.Aggregations, Aggregation{
					Field: rule.Field,
					Kind:  rule.Kind,
					Alias: rule.Alias,
				})
				break
			}
		}
	}

	// 7. Grouping implies a count.
	if len(intent.GroupBy) > 0 && !intent.HasAggregation("count") {
		intent.Aggregations = append(intent.Aggregations, Aggregation{
			Field: "count",
			Kind:  AggCount,
			Alias: "conteo",
		})
	}

	// 8. Limit: "top N" beats "primeros N".
	if m := topLimitRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.Limit = &n
		}
	} else if m := firstLimitRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.Limit = &n
		}
	}

	// 9. Order clause; without one, a trailing "por <field>" after a limit is
	// read as an implicit descending order.
	if m := orderClauseRe.FindStringSubmatch(text); m != nil {
		direction := "asc"
		if strings.HasPrefix(m[1], "desc") {
			direction = "desc"
		}
		intent.OrderBy = &OrderBy{Field: orderField(m[2]), Direction: direction}
	} else if intent.hasLimit() && strings.Contains(text, "por") {
		if m := trailingByRe.FindStringSubmatch(text); m != nil {
			intent.OrderBy = &OrderBy{Field: orderField(m[1]), Direction: "desc"}
		}
	}

	// 10. Sorting an aggregated field means sorting the computed column.
	if intent.OrderBy != nil {
		if agg, ok := intent.AggregationFor(intent.OrderBy.Field); ok {
			intent.OrderBy.Field = agg.Alias
		}
	}

	// 11. Grouped and limited but unordered: pick a descending order from the
	// requested aggregations by fixed priority.
	if len(intent.GroupBy) > 0 && intent.hasLimit() && intent.OrderBy == nil {
		for _, field := range []string{catalog.FieldProfit, catalog.FieldListPrice, catalog.FieldStockQuantity, "count"} {
			if agg, ok := intent.AggregationFor(field); ok {
				intent.OrderBy = &OrderBy{Field: agg.Alias, Direction: "desc"}
				break
			}
		}
	}

	// 12. Nothing extracted at all: assume "top 10 by profit".
	if len(intent.Filters) == 0 && len(intent.Aggregations) == 0 && len(intent.GroupBy) == 0 {
		ten := 10
		intent.OrderBy = &OrderBy{Field: catalog.FieldProfit, Direction: "desc"}
		intent.Limit = &ten
		intent.AssumedDefault = true
	}

	return intent
}

// SubstituteAliases rewrites every field synonym in text onto its canonical
// field name in one left-to-right pass, taking the longest alias at each
// position. Substituted output is never rescanned, so a short alias cannot
// match inside a canonical name emitted for a longer one ("stock" inside the
// replacement for "cantidad en stock").
func SubstituteAliases(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		matched := false
		for _, e := range aliasSubstitutions {
			if strings.HasPrefix(text[i:], e.Alias) {
				b.WriteString(e.Field)
				i += len(e.Alias)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}

// ResolveField maps a field name or synonym to its canonical field name.
// Canonical names resolve to themselves; unknown tokens return "".
func ResolveField(name string) string {
	n := Normalize(name)
	if field, ok := fieldAliasLookup[n]; ok {
		return field
	}
	if catalog.IsCanonical(n) {
		return n
	}
	return ""
}

// truncateValue trims a captured value and cuts it at the first stop phrase.
func truncateValue(value string) string {
	text := strings.Trim(value, " \t\n\r'\"")
	for _, stop := range valueStopPhrases {
		if i := strings.Index(text, stop); i != -1 {
			text = text[:i]
		}
	}
	return strings.Trim(text, " ,.;:\t\n\r'\"")
}

// orderField turns a captured order token into a field name, canonical when
// the token resolves, verbatim otherwise (the sorter degrades gracefully).
// Stop phrases are cut from the raw capture first: trimming before cutting
// would eat the trailing space a capture like "profit top " needs for the
// " top " phrase to match, leaving "profit_top" as the field.
func orderField(captured string) string {
	for _, stop := range valueStopPhrases {
		if i := strings.Index(captured, stop); i != -1 {
			captured = captured[:i]
		}
	}
	field := strings.ReplaceAll(truncateValue(captured), " ", "_")
	if canonical := ResolveField(field); canonical != "" {
		return canonical
	}
	return field
}

// detectComparator returns the first operator whose keyword occurs in the
// fragment, in comparisonKeywords order.
func detectComparator(fragment string) (Operator, bool) {
	for _, c := range comparisonKeywords {
		for _, kw := range c.Keywords {
			if strings.Contains(fragment, kw) {
				return c.Op, true
			}
		}
	}
	return "", false
}

// extractNumber pulls the first number out of a fragment.
func extractNumber(fragment string) (float64, bool) {
	return parseNumber(numberRe.FindString(fragment))
}

// parseNumber parses a number with either decimal separator.
func parseNumber(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// dateOnly drops the clock time and zone, keeping the calendar date as a
// UTC midnight. Matches how record purchase dates parse.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(raw string) *time.Time {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
