// Package registry holds the closed set of value kinds a generation
// run may reference. The set is declared once from the manifest,
// frozen before validation, and immutable afterwards; every kind used
// by an operation descriptor must resolve here before any source is
// emitted.
package registry

import "fmt"

// Kind describes one representational category of value that can
// travel through a generated future: a parameter or a return slot.
type Kind struct {
	// Name is the canonical snake_case key ("bool", "error_ptr",
	// "string_array"). Unique across the registry.
	Name string

	// GoType is the representation descriptor: the Go type the kind
	// is stored as in the generated Value container ("*ClientError",
	// "[]string"). Self-describing primitives leave it empty and use
	// Name as the type.
	GoType string

	// Release optionally names a function in the target package that
	// frees an owned payload. Kinds without a hook release as a
	// no-op.
	Release string
}

// Type returns the Go type the kind is represented as.
func (k Kind) Type() string {
	if k.GoType != "" {
		return k.GoType
	}
	return k.Name
}

// Owned reports whether values of this kind carry a resource the
// container must release.
func (k Kind) Owned() bool {
	return k.Release != ""
}

// Registry is the frozen kind set for one generation run. Not safe
// for concurrent registration; generation is a single pass.
type Registry struct {
	kinds  []Kind
	byName map[string]int
	frozen bool
}

// New returns an empty, unfrozen registry.
func New() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a kind. Duplicate names and post-freeze registration
// are configuration errors: the kind set is fixed and small, so a
// collision means the manifest is wrong, not that a retry is wanted.
func (r *Registry) Register(k Kind) error {
	if r.frozen {
		return fmt.Errorf("registry: cannot register kind %q after freeze", k.Name)
	}
	if k.Name == "" {
		return fmt.Errorf("registry: kind with empty name")
	}
	if _, dup := r.byName[k.Name]; dup {
		return fmt.Errorf("registry: duplicate kind %q", k.Name)
	}
	r.byName[k.Name] = len(r.kinds)
	r.kinds = append(r.kinds, k)
	return nil
}

// Resolve looks a kind up by canonical name.
func (r *Registry) Resolve(name string) (Kind, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Kind{}, false
	}
	return r.kinds[i], true
}

// Freeze closes the registry. Validation and emission only operate on
// frozen registries.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Kinds returns the registered kinds in registration order. The slice
// is a copy; mutating it does not touch the registry.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.kinds)
}
