// Package server exposes the four host operations over HTTP and MCP.
// The shells are pure plumbing: every operation is synchronous, reads the
// immutable dataset, and allocates only request-scoped state, so concurrent
// requests are safe without locking.
package server

import (
	"time"

	"github.com/consulta-org/consulta/catalog"
	"github.com/consulta-org/consulta/config"
	"github.com/consulta-org/consulta/engine"
	"github.com/consulta-org/consulta/obs"
	"github.com/consulta-org/consulta/translator"
)

// Service owns the dataset and answers the four host operations.
type Service struct {
	cfg     config.Config
	dataset []catalog.Record
}

// New generates the dataset once and returns a ready Service.
func New(cfg config.Config) *Service {
	return &Service{
		cfg:     cfg,
		dataset: catalog.Generate(cfg.DatasetSize, cfg.DatasetSeed, time.Now()),
	}
}

// FieldsResponse lists the canonical fields and the accepted aliases.
type FieldsResponse struct {
	Fields  []string          `json:"fields"`
	Aliases map[string]string `json:"aliases"`
}

// Schema returns the field → {type, example} mapping.
func (s *Service) Schema() map[string]catalog.FieldInfo {
	return catalog.Schema(s.dataset)
}

// Sample returns the first clamp(n, 1, dataset size) records.
func (s *Service) Sample(n int) []catalog.Record {
	return catalog.Sample(s.dataset, n)
}

// Fields returns the canonical field names plus the full alias mapping.
func (s *Service) Fields() FieldsResponse {
	return FieldsResponse{Fields: catalog.FieldNames, Aliases: translator.FieldAliases()}
}

// Execute runs an already-compiled intent against the dataset.
func (s *Service) Execute(intent translator.QueryIntent) *engine.Result {
	return engine.Execute(intent, s.dataset)
}

// Query compiles a free-text question and executes it against the dataset.
func (s *Service) Query(text string) *engine.Result {
	intent := translator.Extract(text)
	result := engine.Execute(intent, s.dataset)
	obs.Logger.Info("query_executed",
		"question", text,
		"filters", len(intent.Filters),
		"group_by", intent.GroupBy,
		"rows", len(result.Rows),
		"assumed_default", intent.AssumedDefault,
	)
	return result
}
