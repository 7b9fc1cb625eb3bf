package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedVariable is matched by a [VariableError] raised when no
	// source of the scope chain binds a placeholder.
	ErrUnresolvedVariable = errors.New("unresolved configuration variable")

	// ErrCyclicVariable is matched by a [VariableError] raised when keys
	// reference each other in a cycle.
	ErrCyclicVariable = errors.New("cyclic configuration variable")
)

// VariableError reports a fatal placeholder resolution failure.
type VariableError struct {
	// Kind is ErrUnresolvedVariable or ErrCyclicVariable.
	Kind error
	// Variable is the placeholder name that could not be bound.
	Variable string
	// Key is the configuration key whose value was being resolved.
	Key string
	// Value is the original, unresolved value of Key.
	Value string
	// Chain lists the keys forming the cycle, first key repeated at the end.
	// Empty for unresolved variables.
	Chain []string
}

// Error implements the error interface.
func (e *VariableError) Error() string {
	if errors.Is(e.Kind, ErrCyclicVariable) {
		return fmt.Sprintf("invalid configuration: cyclic reference %s", strings.Join(e.Chain, " -> "))
	}
	return fmt.Sprintf("invalid configuration: no value defined for ${%s} in value %q of property %q",
		e.Variable, e.Value, e.Key)
}

// Unwrap returns the error kind so that errors.Is matches the sentinels.
func (e *VariableError) Unwrap() error {
	return e.Kind
}
