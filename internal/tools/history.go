package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool handles history requests
type HistoryTool struct {
	engine types.Engine
	config types.Config
}

// NewHistoryTool creates a new history tool
func NewHistoryTool(engine types.Engine, config types.Config) *HistoryTool {
	return &HistoryTool{
		engine: engine,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *HistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolHistory,
		mcp.WithDescription("List the recorded calculations, oldest first"),
	)
	return tool
}

// Handle processes the tool request
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := t.engine.History()
	if entries == nil {
		entries = make([]types.HistoryEntry, 0)
	}

	toolResult := results.HistoryToolResult{
		Count:   len(entries),
		Entries: entries,
	}
	if len(entries) == 0 {
		toolResult.Message = "No calculations have been recorded yet."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d recorded calculation(s).", len(entries))
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
