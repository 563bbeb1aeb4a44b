package types

// Config represents the configuration for the calc-mcp server
type Config struct {
	Precision int    `json:"precision,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
}
