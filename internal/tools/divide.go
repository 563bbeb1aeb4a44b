package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// DivideTool handles direct division requests. Unlike calc.calculate, a
// division by zero is not handled here: the engine error surfaces directly
// as a tool error.
type DivideTool struct {
	engine types.Engine
	config types.Config
}

// NewDivideTool creates a new divide tool
func NewDivideTool(engine types.Engine, config types.Config) *DivideTool {
	return &DivideTool{
		engine: engine,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *DivideTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDivide,
		mcp.WithDescription("Divide one number by another, failing on division by zero"),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("Dividend")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Divisor")),
	)
	return tool
}

// Handle processes the tool request
func (t *DivideTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := mcp.ParseFloat64(req, "a", 0)
	b := mcp.ParseFloat64(req, "b", 0)

	quotient, err := t.engine.Divide(a, b)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to divide: %v", err)), nil
	}

	toolResult := results.DivideToolResult{
		Dividend: a,
		Divisor:  b,
		Quotient: quotient,
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
