package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consulta-org/consulta/config"
	"github.com/consulta-org/consulta/translator"
)

func TestServiceOperations(t *testing.T) {
	svc := New(config.Config{DatasetSize: 15, DatasetSeed: 2025})

	assert.Len(t, svc.Schema(), 9)
	assert.Len(t, svc.Sample(4), 4)

	fields := svc.Fields()
	assert.Len(t, fields.Fields, 9)
	assert.Equal(t, "list_price", fields.Aliases["pvp"])

	result := svc.Query("stock total por tipo")
	require.NotNil(t, result)
	assert.Contains(t, result.Summary, "agrupado por subtype")
	assert.Contains(t, result.Metrics, "stock_total")
	assert.Contains(t, result.Metrics, "conteo")
}

func TestServiceExecute(t *testing.T) {
	svc := New(config.Config{DatasetSize: 15, DatasetSeed: 2025})
	result := svc.Execute(translator.Extract("hola"))
	require.NotNil(t, result)
	assert.True(t, len(result.Rows) <= 10)
}

func TestMCPServerBuilds(t *testing.T) {
	svc := New(config.Config{DatasetSize: 5, DatasetSeed: 1})
	require.NotNil(t, svc.MCPServer("test"))
}
