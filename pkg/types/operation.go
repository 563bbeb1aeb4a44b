package types

// Operation represents a calculator operation as an enum
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
)

// ParseOperation returns the Operation for a given operation name.
// Unrecognized names fail with an UnsupportedOperationError.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(name); op {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide:
		return op, nil
	default:
		return "", &UnsupportedOperationError{Operation: name}
	}
}
