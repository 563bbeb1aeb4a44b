package types

import "fmt"

// DivisionByZeroError reports an attempt to divide by zero.
// It carries the offending dividend in its message.
type DivisionByZeroError struct {
	Dividend float64
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Cannot divide %v by zero", e.Dividend)
}

// UnsupportedOperationError reports an operation outside the recognized set
type UnsupportedOperationError struct {
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %q", e.Operation)
}
