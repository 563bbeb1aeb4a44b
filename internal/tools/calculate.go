package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles calculation requests. A division by zero is handled
// inside the engine, so this tool reports it as a null result rather than a
// tool error.
type CalculateTool struct {
	engine types.Engine
	config types.Config
}

// NewCalculateTool creates a new calculate tool
func NewCalculateTool(engine types.Engine, config types.Config) *CalculateTool {
	return &CalculateTool{
		engine: engine,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Perform a calculation, round the result, and record it in the history"),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation to perform: add, subtract, multiply, or divide")),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operationName := mcp.ParseString(req, "operation", "")
	if operationName == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}

	operation, err := types.ParseOperation(operationName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse operation: %v", err)), nil
	}

	a := mcp.ParseFloat64(req, "a", 0)
	b := mcp.ParseFloat64(req, "b", 0)

	result, err := t.engine.Calculate(operation, a, b)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to calculate: %v", err)), nil
	}

	toolResult := results.CalculateToolResult{
		Operation: operation,
		A:         a,
		B:         b,
		Result:    result,
	}
	if result == nil {
		toolResult.Message = fmt.Sprintf("Division of %v by zero was handled; no result was produced.", a)
	} else {
		toolResult.Message = fmt.Sprintf("Calculated %v %s %v = %v.", a, operation, b, *result)
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
