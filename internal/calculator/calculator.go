package calculator

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

var _ types.Engine = &Calculator{}

const defaultPrecision = 2

// Divide returns a / b, failing fast with a DivisionByZeroError when b is
// zero. No side effects, no internal recovery.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &types.DivisionByZeroError{Dividend: a}
	}
	return a / b, nil
}

// stdDivider dispatches to the package-level Divide function
type stdDivider struct{}

func (stdDivider) Divide(a, b float64) (float64, error) {
	return Divide(a, b)
}

// Calculator implements the calculator engine. Its history only grows, in
// call order, and only through Calculate.
//
// The Calculator is not safe for concurrent use: every operation is an
// immediate, terminating computation within a single call stack.
type Calculator struct {
	precision int
	divider   types.Divider
	logger    *slog.Logger
	history   []types.HistoryEntry
}

// New creates a new Calculator. A nil divider falls back to the standard
// division, and a nil logger falls back to slog.Default().
func New(config types.Config, divider types.Divider, logger *slog.Logger) *Calculator {
	precision := config.Precision
	if precision <= 0 {
		precision = defaultPrecision
	}
	if divider == nil {
		divider = stdDivider{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Calculator{
		precision: precision,
		divider:   divider,
		logger:    logger,
	}
}

// Divide returns a / b, failing with a DivisionByZeroError when b is zero
func (c *Calculator) Divide(a, b float64) (float64, error) {
	return Divide(a, b)
}

// PerformOperation dispatches op to the matching arithmetic function.
// A division by zero is absorbed here: it is logged exactly once and
// converted into a nil result, never propagated to the caller. Operations
// outside the recognized set fail with an UnsupportedOperationError.
func (c *Calculator) PerformOperation(op types.Operation, a, b float64) (*float64, error) {
	switch op {
	case types.OperationAdd:
		result := a + b
		return &result, nil
	case types.OperationSubtract:
		result := a - b
		return &result, nil
	case types.OperationMultiply:
		result := a * b
		return &result, nil
	case types.OperationDivide:
		result, err := c.divider.Divide(a, b)
		if err != nil {
			var divErr *types.DivisionByZeroError
			if errors.As(err, &divErr) {
				c.logger.Warn("Attempted to divide by zero", "dividend", a, "error", err)
				return nil, nil
			}
			return nil, fmt.Errorf("failed to divide %v by %v: %w", a, b, err)
		}
		return &result, nil
	default:
		return nil, &types.UnsupportedOperationError{Operation: string(op)}
	}
}

// Calculate delegates to PerformOperation with the same arguments, rounds a
// non-nil result to the configured precision, and appends one history entry.
// It performs no error handling of its own: a division by zero has already
// been normalized into a nil result by PerformOperation.
func (c *Calculator) Calculate(op types.Operation, a, b float64) (*float64, error) {
	result, err := c.PerformOperation(op, a, b)
	if err != nil {
		return nil, err
	}

	var rounded *float64
	if result != nil {
		r := roundTo(*result, c.precision)
		rounded = &r
	}

	c.history = append(c.history, types.HistoryEntry{
		Operation: op,
		A:         a,
		B:         b,
		Result:    rounded,
	})

	return rounded, nil
}

// History returns a copy of the recorded calculations, oldest first
func (c *Calculator) History() []types.HistoryEntry {
	history := make([]types.HistoryEntry, len(c.history))
	copy(history, c.history)
	return history
}

// roundTo rounds v to the given number of decimal digits
func roundTo(v float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))
	return math.Round(v*shift) / shift
}
