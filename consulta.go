// Package consulta turns Spanish natural-language questions into structured
// queries over a synthetic product catalog.
//
// The pipeline has three stages: translator compiles the question into a
// QueryIntent by normalizing the text and applying ordered extraction rules;
// engine executes the intent (filter, group, aggregate, sort, limit) over the
// in-memory dataset; catalog generates and describes the dataset. The server
// package exposes the operations over HTTP and MCP, and cmd/consulta wraps
// them in a CLI.
//
// This root package is the library entry point for hosts that want the
// pipeline without a transport shell.
package consulta

import (
	"github.com/consulta-org/consulta/catalog"
	"github.com/consulta-org/consulta/engine"
	"github.com/consulta-org/consulta/translator"
)

// Ask compiles a Spanish question and executes it over the given dataset.
func Ask(question string, dataset []catalog.Record) *engine.Result {
	return engine.Execute(translator.Extract(question), dataset)
}
