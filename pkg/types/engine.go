package types

// Divider performs division. It is the seam that lets tests stub out the
// division step that PerformOperation dispatches to.
type Divider interface {
	Divide(a, b float64) (float64, error)
}

// Engine defines the calculator interface
type Engine interface {
	// Divide returns a / b, failing with a DivisionByZeroError when b is zero.
	// The error is the direct, sole signal to the caller.
	Divide(a, b float64) (float64, error)

	// PerformOperation dispatches op to the matching arithmetic function.
	// A division by zero is handled internally: it is logged and converted
	// into a nil result instead of an error.
	PerformOperation(op Operation, a, b float64) (*float64, error)

	// Calculate delegates to PerformOperation, rounds a non-nil result to the
	// configured precision, and appends one history entry per completed call.
	Calculate(op Operation, a, b float64) (*float64, error)

	// History returns a copy of the recorded calculations, oldest first.
	History() []HistoryEntry
}
