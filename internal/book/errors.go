package book

import "fmt"

// ValidationError reports raw input rejected by a field's validation rule.
// The field keeps its previous value when validation fails.
type ValidationError struct {
	Field  string // field kind: "name", "phone" or "birthday"
	Input  string // the rejected raw input
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// NotFoundError reports a lookup for a value the record does not hold.
type NotFoundError struct {
	What  string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.Value)
}
