package domain

import "fmt"

// ValidationError rejects a write that violates a model constraint. It is
// returned before anything is persisted.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Msg)
}
