package translator

import (
	"regexp"
	"sort"

	"github.com/consulta-org/consulta/catalog"
)

// ============================================================================
// RULE TABLES — Configuration as data
// ============================================================================
// The extractor consults these static tables; precedence is encoded in table
// order (first match wins) and in alias length (longest match first). The
// vocabulary is Spanish; alias substitution rewrites it onto the canonical
// field names before any pattern rule runs, so pattern tables are expressed
// in the post-substitution space.
// ============================================================================

type aliasEntry struct {
	Alias string
	Field string
}

// fieldAliasEntries maps natural-language field synonyms to canonical fields.
// Order here is the tie-breaker when two aliases have the same length.
var fieldAliasEntries = []aliasEntry{
	{"cantidad en stock", catalog.FieldStockQuantity},
	{"cantidad stock", catalog.FieldStockQuantity},
	{"existencias", catalog.FieldStockQuantity},
	{"stock", catalog.FieldStockQuantity},
	{"inventario", catalog.FieldStockQuantity},
	{"beneficio", catalog.FieldProfit},
	{"benificio", catalog.FieldProfit}, // common misspelling
	{"margen", catalog.FieldProfit},
	{"ganancia", catalog.FieldProfit},
	{"ganancias", catalog.FieldProfit},
	{"precio de venta", catalog.FieldListPrice},
	{"precio venta", catalog.FieldListPrice},
	{"precio", catalog.FieldListPrice},
	{"pvp", catalog.FieldListPrice},
	{"costo", catalog.FieldPurchaseCost},
	{"coste", catalog.FieldPurchaseCost},
	{"compra", catalog.FieldPurchaseCost},
	{"fecha de compra", catalog.FieldPurchaseDate},
	{"fechacompra", catalog.FieldPurchaseDate},
	{"producto", catalog.FieldProduct},
	{"marca", catalog.FieldBrand},
	{"tipo", catalog.FieldSubtype},
	{"modelo", catalog.FieldModel},
}

// fieldAliasLookup resolves a normalized alias in O(1).
var fieldAliasLookup = func() map[string]string {
	m := make(map[string]string, len(fieldAliasEntries))
	for _, e := range fieldAliasEntries {
		m[e.Alias] = e.Field
	}
	return m
}()

// aliasSubstitutions is fieldAliasEntries sorted by decreasing alias length,
// so a shorter alias never matches inside a longer one during substitution.
var aliasSubstitutions = func() []aliasEntry {
	entries := make([]aliasEntry, len(fieldAliasEntries))
	copy(entries, fieldAliasEntries)
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Alias) > len(entries[j].Alias)
	})
	return entries
}()

// groupableFields maps grouping phrases to canonical fields. Table order is
// the order group-by fields are appended when several phrases are present.
var groupableFields = []struct {
	Field  string
	Phrase string
}{
	{catalog.FieldBrand, "por brand"},
	{catalog.FieldSubtype, "por subtype"},
	{catalog.FieldProduct, "por product"},
	{catalog.FieldModel, "por model"},
}

// subtypeSynonyms recognizes product-kind keywords anywhere in the text and
// turns them into product-contains filters. First matching synonym per group
// wins.
var subtypeSynonyms = []struct {
	Keyword  string
	Synonyms []*regexp.Regexp
}{
	{"portatil", wholeWords("portatil", "portatiles", "laptop", "notebook")},
	{"smartphone", wholeWords("smartphone", "movil", "moviles", "celular", "celulares")},
	{"tablet", wholeWords("tablet", "tablets")},
	{"monitor", wholeWords("monitor", "monitores")},
	{"auriculares", wholeWords("auricular", "auriculares", "headset")},
}

func wholeWords(words ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return res
}

// numericFieldSynonyms lists, per numeric field, the tokens that can anchor a
// comparison fragment. The Spanish synonyms ("precio", "margen", ...) are
// already folded onto the canonical names by alias substitution; "ventas" is
// the one synonym with no field alias of its own.
var numericFieldSynonyms = []struct {
	Field    string
	Synonyms []string
}{
	{catalog.FieldListPrice, []string{"list_price"}},
	{catalog.FieldPurchaseCost, []string{"purchase_cost"}},
	{catalog.FieldProfit, []string{"profit", "ventas"}},
	{catalog.FieldStockQuantity, []string{"stock_quantity"}},
}

// numericPattern holds the compiled scanners for one field synonym.
type numericPattern struct {
	Field   string
	Scan    *regexp.Regexp // "<synonym> [words] <number>"
	AtLeast *regexp.Regexp // "<synonym> al menos|como minimo|minimo <number>"
}

var numericPatterns = func() []numericPattern {
	var out []numericPattern
	for _, rule := range numericFieldSynonyms {
		for _, syn := range rule.Synonyms {
			q := regexp.QuoteMeta(syn)
			out = append(out, numericPattern{
				Field:   rule.Field,
				Scan:    regexp.MustCompile(q + `\s+([a-z\s]+)?(\d+(?:[\.,]\d+)?)`),
				AtLeast: regexp.MustCompile(q + `\s+(al menos|como minimo|minimo)\s+(\d+(?:[\.,]\d+)?)`),
			})
		}
	}
	return out
}()

// comparisonKeywords maps comparator phrases to operators. Outer order is the
// precedence: the first operator whose keyword occurs in a fragment wins.
var comparisonKeywords = []struct {
	Op       Operator
	Keywords []string
}{
	{OpGte, []string{"mayor o igual que", "al menos", "como minimo", "minimo", "mayor o igual a"}},
	{OpGt, []string{"mayor que", "mayor a", "mas de", "mas que", "superior a"}},
	{OpLte, []string{"menor o igual que", "como maximo", "no mas de", "no mas que", "hasta", "a lo sumo", "menor o igual a"}},
	{OpLt, []string{"menor que", "menor a", "menos de", "por debajo de", "inferior a"}},
	{OpEq, []string{"igual a", "exactamente"}},
}

// aggregationTriggers maps trigger phrases to an aggregation with its fixed
// output alias. First matching phrase per field wins; one entry per field.
var aggregationTriggers = []struct {
	Field    string
	Kind     AggKind
	Alias    string
	Keywords []string
}{
	{catalog.FieldProfit, AggSum, "total_beneficio", []string{"profit total", "profit global", "ventas totales"}},
	{catalog.FieldListPrice, AggMean, "pvp_medio", []string{"list_price medio", "list_price promedio"}},
	{catalog.FieldStockQuantity, AggSum, "stock_total", []string{"stock_quantity total", "stock_quantity totales"}},
}

// valueStopPhrases truncate a captured filter value at the first occurrence
// of any connective that starts the next clause.
var valueStopPhrases = []string{
	" con ",
	" que ",
	" y ",
	" donde ",
	" desde ",
	" hasta ",
	" entre ",
	" top ",
	" orden",
	" mayor",
	" menor",
	" sum",
	" promedi",
	" media",
	" ultimos",
	" ultimo",
}

// stringFilterPatterns capture explicit "<field> is/equals <value>" phrasings
// per string field.
var stringFilterPatterns = []struct {
	Field    string
	Patterns []*regexp.Regexp
}{
	{catalog.FieldBrand, []*regexp.Regexp{
		regexp.MustCompile(`brand\s+(?:es\s+|=|igual\s+a\s+|llamada\s+|llamado\s+)?['"]?([a-z0-9\s\-]+)`),
		regexp.MustCompile(`de\s+brand\s+['"]?([a-z0-9\s\-]+)`),
	}},
	{catalog.FieldProduct, []*regexp.Regexp{
		regexp.MustCompile(`product\s+(?:es\s+|=|igual\s+a\s+)?['"]?([a-z0-9\s\-]+)`),
		regexp.MustCompile(`de\s+product\s+['"]?([a-z0-9\s\-]+)`),
	}},
	{catalog.FieldSubtype, []*regexp.Regexp{
		regexp.MustCompile(`subtype\s+(?:es\s+|=|igual\s+a\s+)?['"]?([a-z0-9\s\-]+)`),
		regexp.MustCompile(`de\s+subtype\s+['"]?([a-z0-9\s\-]+)`),
	}},
	{catalog.FieldModel, []*regexp.Regexp{
		regexp.MustCompile(`model\s+(?:es\s+|=|igual\s+a\s+|llamado\s+)?['"]?([a-z0-9\s\-]+)`),
		regexp.MustCompile(`model\s+que\s+contenga\s+['"]?([a-z0-9\s\-]+)`),
	}},
}

// Date, limit, and order clause patterns.
var (
	betweenDatesRe = regexp.MustCompile(`entre\s+(\d{4}-\d{2}-\d{2})\s+y\s+(\d{4}-\d{2}-\d{2})`)
	sinceDateRe    = regexp.MustCompile(`desde\s+(\d{4}-\d{2}-\d{2})`)
	untilDateRe    = regexp.MustCompile(`hasta\s+(\d{4}-\d{2}-\d{2})`)
	lastMonthsRe   = regexp.MustCompile(`ultimos?\s+(\d+)\s+meses`)
	topLimitRe     = regexp.MustCompile(`top\s+(\d+)`)
	firstLimitRe   = regexp.MustCompile(`primeros?\s+(\d+)`)
	orderClauseRe  = regexp.MustCompile(`ordenad[oa]s?\s+(ascendente|descendente|asc|desc)?\s*por\s+([a-z_\s]+)`)
	trailingByRe   = regexp.MustCompile(`por\s+([a-z_\s]+)$`)
	numberRe       = regexp.MustCompile(`\d+(?:[\.,]\d+)?`)
)

// FieldAliases returns the alias → canonical field mapping for the host
// fields() operation.
func FieldAliases() map[string]string {
	out := make(map[string]string, len(fieldAliasLookup))
	for k, v := range fieldAliasLookup {
		out[k] = v
	}
	return out
}
