// Package server bridges the tool registry onto the Model Context
// Protocol. Tool schemas are passed through untouched; handlers map the
// registry's (text, error) contract onto MCP result/error content.
package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/TuliEscobar/mcp-linkedin/internal/tool"
)

const serverName = "mcp-linkedin"

// New builds an MCP server exposing every tool in the registry.
func New(reg *tool.Registry, version string, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.Default()
	}

	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, name := range reg.List() {
		t, ok := reg.Get(name)
		if !ok {
			continue
		}
		schema, err := json.Marshal(t.Parameters())
		if err != nil {
			logger.Error("marshal tool schema", "tool", name, "error", err)
			continue
		}
		s.AddTool(
			mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema),
			handler(t, logger),
		)
	}
	return s
}

// handler adapts one tool to the MCP call contract. Tools that fold
// failures into their text result come back as ordinary text; the
// unguarded ones surface as protocol-level tool errors.
func handler(t tool.Tool, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug("tool call", "tool", t.Name())
		out, err := t.Execute(ctx, req.Params.Arguments)
		if err != nil {
			logger.Error("tool call failed", "tool", t.Name(), "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// ServeStdio runs the server over stdin/stdout until the stream closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
