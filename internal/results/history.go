package results

import "github.com/averycrespi/calc-mcp/pkg/types"

// HistoryToolResult represents the result of the calc.history tool
type HistoryToolResult struct {
	Count   int                  `json:"count"`
	Message string               `json:"message"`
	Entries []types.HistoryEntry `json:"entries"`
}
