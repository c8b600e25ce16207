package model

import "fmt"

// StructuralError marks a fault in a tree or a reference it makes (unknown
// variable, variable not allowed in this program kind, write targeting a
// non-dynamic cell) as opposed to an external or timing failure. Game Runner
// and evolution code treat it uniformly with a turn timeout: the offending
// side takes the timeout penalty and the game ends, it is never allowed to
// escape as a process-level error.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural fault: %s", e.Reason)
}

func NewStructuralError(reason string) *StructuralError {
	return &StructuralError{Reason: reason}
}
