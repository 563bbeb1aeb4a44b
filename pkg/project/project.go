package project

// Name is the project name, used as the MCP server name
const Name = "calc-mcp"

// Version is the project version
const Version = "0.1.0"
