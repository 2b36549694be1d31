package core

import "fmt"

// ValidationError reports a missing mandatory credential field.
// It is raised before any cache or network access and is never cached.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Field)
}
