package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolCalculate = ToolPrefix + "calculate"
	ToolDivide    = ToolPrefix + "divide"
	ToolHistory   = ToolPrefix + "history"
)
