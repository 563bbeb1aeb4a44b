package server

import (
	"log/slog"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalcServer(t *testing.T) {
	config := types.Config{Precision: 2, LogLevel: "info"}
	engine := calculator.New(config, nil, slog.Default())

	calcServer := NewCalcServer(engine, config)

	require.NotNil(t, calcServer)
	assert.NotNil(t, calcServer.mcpServer)
	assert.Equal(t, config, calcServer.config)
}

func TestCalcServerImplementsInterface(t *testing.T) {
	config := types.Config{}
	engine := calculator.New(config, nil, slog.Default())

	var _ types.Server = NewCalcServer(engine, config)
}

func TestRegisterTools(t *testing.T) {
	config := types.Config{Precision: 2}
	engine := calculator.New(config, nil, slog.Default())
	calcServer := NewCalcServer(engine, config)

	assert.NotPanics(t, func() {
		calcServer.registerTools()
	})
}
