package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	engine    types.Engine
	config    types.Config
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(engine types.Engine, config types.Config) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version)

	return &CalcServer{
		mcpServer: mcpServer,
		engine:    engine,
		config:    config,
	}
}

// Serve registers the calculator tools and serves the MCP server over stdio,
// blocking until the server shuts down
func (s *CalcServer) Serve(ctx context.Context) error {
	slog.Info("Starting calc MCP server", "config", s.config)

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	calculateTool := tools.NewCalculateTool(s.engine, s.config)
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	divideTool := tools.NewDivideTool(s.engine, s.config)
	s.mcpServer.AddTool(divideTool.GetTool(), divideTool.Handle)

	historyTool := tools.NewHistoryTool(s.engine, s.config)
	s.mcpServer.AddTool(historyTool.GetTool(), historyTool.Handle)
}
