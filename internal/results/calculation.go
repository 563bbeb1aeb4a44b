package results

import "github.com/averycrespi/calc-mcp/pkg/types"

// CalculateToolResult represents the result of the calc.calculate tool.
// A null result means the calculation was a handled division by zero.
type CalculateToolResult struct {
	Operation types.Operation `json:"operation"`
	A         float64         `json:"a"`
	B         float64         `json:"b"`
	Result    *float64        `json:"result"`
	Message   string          `json:"message,omitempty"`
}
