// Package helpers contains small output utilities shared by the CLI.
package helpers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/consulta-org/consulta/catalog"
	"github.com/consulta-org/consulta/engine"
	"github.com/consulta-org/consulta/translator"
)

// ============================================================================
// CSV OUTPUT — Result rows as CSV (ready for Sheets/Excel)
// ============================================================================

// ResultColumns derives a stable column order for result rows: group-by
// fields followed by aggregation aliases for grouped queries, the canonical
// field order for record rows.
func ResultColumns(intent translator.QueryIntent) []string {
	if len(intent.GroupBy) == 0 {
		return catalog.FieldNames
	}
	columns := make([]string, 0, len(intent.GroupBy)+len(intent.Aggregations))
	columns = append(columns, intent.GroupBy...)
	for _, a := range intent.Aggregations {
		columns = append(columns, a.Alias)
	}
	return columns
}

// WriteRowsCSV writes a header plus one line per row. Missing cells render
// empty.
func WriteRowsCSV(w io.Writer, columns []string, rows []engine.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	line := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			if v, ok := row[col]; ok {
				line[i] = fmt.Sprint(v)
			} else {
				line[i] = ""
			}
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
