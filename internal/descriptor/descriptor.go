// Package descriptor declares the blocking operations a generation run
// wraps and validates them against the value-kind registry before any
// source is emitted.
package descriptor

import (
	"fmt"

	"futuregen/internal/registry"
)

// Param is one declared parameter of a wrapped operation.
type Param struct {
	// Kind is the canonical name of a registered value kind.
	Kind string
	// Name is the parameter identifier as it appears in the wrapped
	// call ("cursor", "reply", "error").
	Name string
}

// Operation describes one blocking operation to wrap. For an operation
// named "cursor_next" the generator emits FutureCursorNext, which
// packages the arguments and dispatches a worker, and
// backgroundCursorNext, which runs the real call and resolves the
// future.
type Operation struct {
	// Name uniquely identifies the operation, snake_case.
	Name string
	// Returns is the kind name of the wrapped call's return value.
	Returns string
	// Call optionally names the target-package function the
	// background routine invokes. Empty means the PascalCase form of
	// Name.
	Call string
	// Params are the wrapped call's parameters in declared order.
	Params []Param
}

// ValidationError reports the first descriptor that referenced an
// unregistered kind. It names both the kind and the operation so the
// manifest author can find the typo without reading generator output.
type ValidationError struct {
	Kind      string // the unregistered kind name
	Operation string // the operation that referenced it
	Where     string // "return value" or the parameter name
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("descriptor: operation %q references unregistered kind %q (%s)",
		e.Operation, e.Kind, e.Where)
}

// Validate checks every operation's return kind and parameter kinds
// against the registry, plus operation-name uniqueness. The first
// failure aborts generation: emitting code that references an
// undefined kind would produce uncompilable output, so this is a hard
// configuration error, never skipped. Validate must pass before any
// file is written.
func Validate(reg *registry.Registry, ops []Operation) error {
	if !reg.Frozen() {
		return fmt.Errorf("descriptor: registry must be frozen before validation")
	}

	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		if op.Name == "" {
			return fmt.Errorf("descriptor: operation with empty name")
		}
		if seen[op.Name] {
			return fmt.Errorf("descriptor: duplicate operation %q", op.Name)
		}
		seen[op.Name] = true

		if _, ok := reg.Resolve(op.Returns); !ok {
			return &ValidationError{Kind: op.Returns, Operation: op.Name, Where: "return value"}
		}
		for _, p := range op.Params {
			if _, ok := reg.Resolve(p.Kind); !ok {
				return &ValidationError{Kind: p.Kind, Operation: op.Name, Where: "parameter " + p.Name}
			}
		}
	}
	return nil
}
