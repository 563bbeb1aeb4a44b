package types

import "fmt"

// HistoryEntry records a single completed calculation.
// A nil Result means the calculation was a handled division by zero.
type HistoryEntry struct {
	Operation Operation `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    *float64  `json:"result"`
}

// String renders the entry in "a op b = result" form
func (e HistoryEntry) String() string {
	if e.Result == nil {
		return fmt.Sprintf("%v %s %v = none", e.A, e.Operation, e.B)
	}
	return fmt.Sprintf("%v %s %v = %v", e.A, e.Operation, e.B, *e.Result)
}
