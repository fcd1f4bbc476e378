package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ============================================================
// MCP surface: the same four operations as HTTP, exposed as
// tools over stdio for agent hosts.
// ============================================================

// MCPServer builds an MCP server exposing the catalog operations.
func (s *Service) MCPServer(version string) *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer("consulta", version,
		mcpserver.WithToolCapabilities(false),
	)

	srv.AddTool(
		mcp.NewTool("schema",
			mcp.WithDescription("Devuelve el esquema del catálogo: tipo y ejemplo de cada campo."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(s.Schema())
		},
	)

	srv.AddTool(
		mcp.NewTool("sample",
			mcp.WithDescription("Devuelve una muestra de registros del catálogo."),
			mcp.WithNumber("n",
				mcp.Description("Número de registros a devolver."),
				mcp.DefaultNumber(5),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			n := req.GetInt("n", 5)
			return jsonResult(s.Sample(n))
		},
	)

	srv.AddTool(
		mcp.NewTool("fields",
			mcp.WithDescription("Lista los campos canónicos y sus alias en español."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return jsonResult(s.Fields())
		},
	)

	srv.AddTool(
		mcp.NewTool("query_nl",
			mcp.WithDescription("Ejecuta una consulta en lenguaje natural (español) sobre el catálogo y devuelve resumen, filas y métricas."),
			mcp.WithString("pregunta",
				mcp.Description("La pregunta en español, por ejemplo: 'portátiles de marca Acme con beneficio mayor a 100'."),
				mcp.Required(),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			pregunta, err := req.RequireString("pregunta")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return jsonResult(s.Query(pregunta))
		},
	)

	return srv
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
