package results

// DivideToolResult represents the result of the calc.divide tool
type DivideToolResult struct {
	Dividend float64 `json:"dividend"`
	Divisor  float64 `json:"divisor"`
	Quotient float64 `json:"quotient"`
}
