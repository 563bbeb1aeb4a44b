package tools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives the tools against a real calculator engine, end to end:
// a few calculations, a handled division by zero, a failed direct division,
// and finally the history.
func TestToolsEndToEnd(t *testing.T) {
	engine := calculator.New(types.Config{Precision: 2}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	config := types.Config{Precision: 2}

	calculateTool := NewCalculateTool(engine, config)
	divideTool := NewDivideTool(engine, config)
	historyTool := NewHistoryTool(engine, config)

	calculations := []struct {
		operation string
		a         float64
		b         float64
		expected  float64
	}{
		{"add", 10, 5, 15},
		{"subtract", 10, 5, 5},
		{"multiply", 10, 5, 50},
		{"divide", 10, 3, 3.33},
	}

	for _, c := range calculations {
		result, err := calculateTool.Handle(context.Background(), newRequest(map[string]interface{}{
			"operation": c.operation,
			"a":         c.a,
			"b":         c.b,
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var toolResult results.CalculateToolResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &toolResult))
		require.NotNil(t, toolResult.Result)
		assert.Equal(t, c.expected, *toolResult.Result)
	}

	// Division by zero through calc.calculate is handled, not an error
	result, err := calculateTool.Handle(context.Background(), newRequest(map[string]interface{}{
		"operation": "divide",
		"a":         float64(10),
		"b":         float64(0),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var calcResult results.CalculateToolResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &calcResult))
	assert.Nil(t, calcResult.Result)

	// The same division through calc.divide fails fast
	result, err = divideTool.Handle(context.Background(), newRequest(map[string]interface{}{
		"a": float64(10),
		"b": float64(0),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Cannot divide 10 by zero")

	// Only calc.calculate calls touch the history
	result, err = historyTool.Handle(context.Background(), newRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var historyResult results.HistoryToolResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &historyResult))
	assert.Equal(t, 5, historyResult.Count)
	assert.Equal(t, "10 add 5 = 15", historyResult.Entries[0].String())
	assert.Equal(t, "10 divide 0 = none", historyResult.Entries[4].String())
}
