// Package config loads the generation manifest: the static list of
// value kinds and blocking operations a run generates futures for.
// The manifest is an explicit object handed through validation and
// emission; there is no ambient process-wide generator state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"futuregen/internal/descriptor"
	"futuregen/internal/registry"
)

// DefaultRuntimeImport is the import path of the resolution core the
// generated source depends on.
const DefaultRuntimeImport = "futuregen/pkg/future"

// Manifest is the complete input of one generation run.
type Manifest struct {
	// Source is the path the manifest was loaded from, for the
	// generated-file header. Set by Load, never serialized.
	Source string `yaml:"-"`

	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`

	// Output is the path the generated file is written to. Defaults
	// to futures_gen.go in the working directory.
	Output string `yaml:"output,omitempty"`

	// Runtime overrides the import path of the futures runtime.
	Runtime string `yaml:"runtime,omitempty"`

	// Kinds declares every value kind operations may reference.
	Kinds []KindDecl `yaml:"kinds"`

	// Operations declares the blocking calls to wrap.
	Operations []OpDecl `yaml:"operations"`
}

// KindDecl declares one value kind.
type KindDecl struct {
	Name string `yaml:"name"`
	// Type is the Go representation; empty for self-describing
	// primitives whose name is the type ("bool", "string", "uint32").
	Type string `yaml:"type,omitempty"`
	// Release names a target-package function that frees an owned
	// payload when the holding Value is released or overwritten.
	Release string `yaml:"release,omitempty"`
}

// OpDecl declares one wrapped operation.
type OpDecl struct {
	Name    string `yaml:"name"`
	Returns string `yaml:"returns"`
	// Call overrides the target-package function the background
	// routine invokes; empty means the PascalCase form of Name.
	Call   string      `yaml:"call,omitempty"`
	Params []ParamDecl `yaml:"params,omitempty"`
}

// ParamDecl declares one parameter of a wrapped operation.
type ParamDecl struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

// Load reads and decodes a manifest, applies defaults, and checks its
// shape. Kind/operation cross-validation is descriptor.Validate's job,
// not Load's.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	m.Source = filepath.Base(path)
	m.ApplyDefaults()
	if err := m.CheckShape(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Save writes the manifest as YAML. Used by `futuregen init` to drop a
// starter manifest into a project.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ResolveOutput returns the output path anchored at the manifest's
// directory, so generation lands next to the manifest no matter where
// the generator was invoked from. Absolute outputs pass through.
func (m *Manifest) ResolveOutput(manifestPath string) string {
	if filepath.IsAbs(m.Output) {
		return m.Output
	}
	return filepath.Join(filepath.Dir(manifestPath), m.Output)
}

// ApplyDefaults fills the optional fields.
func (m *Manifest) ApplyDefaults() {
	if m.Output == "" {
		m.Output = "futures_gen.go"
	}
	if m.Runtime == "" {
		m.Runtime = DefaultRuntimeImport
	}
}

// CheckShape verifies the manifest is structurally usable before the
// registry is built: package name present and a legal identifier, at
// least one kind, every declaration named. Fail here reads better than
// a template explosion later.
func (m *Manifest) CheckShape() error {
	if !isIdent(m.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", m.Package)
	}
	if len(m.Kinds) == 0 {
		return fmt.Errorf("no kinds declared")
	}
	for i, k := range m.Kinds {
		if k.Name == "" {
			return fmt.Errorf("kind #%d has no name", i+1)
		}
	}
	for i, op := range m.Operations {
		if op.Name == "" {
			return fmt.Errorf("operation #%d has no name", i+1)
		}
		if op.Returns == "" {
			return fmt.Errorf("operation %q has no return kind", op.Name)
		}
		for j, p := range op.Params {
			if p.Kind == "" || p.Name == "" {
				return fmt.Errorf("operation %q parameter #%d needs both kind and name", op.Name, j+1)
			}
		}
	}
	return nil
}

// BuildRegistry registers every declared kind and freezes the result.
// A duplicate kind name surfaces here as a fatal configuration error.
func (m *Manifest) BuildRegistry() (*registry.Registry, error) {
	reg := registry.New()
	for _, k := range m.Kinds {
		err := reg.Register(registry.Kind{Name: k.Name, GoType: k.Type, Release: k.Release})
		if err != nil {
			return nil, err
		}
	}
	reg.Freeze()
	return reg, nil
}

// Descriptors converts the declared operations into descriptors for
// validation and emission.
func (m *Manifest) Descriptors() []descriptor.Operation {
	ops := make([]descriptor.Operation, 0, len(m.Operations))
	for _, op := range m.Operations {
		d := descriptor.Operation{
			Name:    op.Name,
			Returns: op.Returns,
			Call:    op.Call,
		}
		for _, p := range op.Params {
			d.Params = append(d.Params, descriptor.Param{Kind: p.Kind, Name: p.Name})
		}
		ops = append(ops, d)
	}
	return ops
}

// Default returns the starter manifest written by `futuregen init`: a
// ping operation over a two-kind registry, enough to generate and run.
func Default() *Manifest {
	m := &Manifest{
		Package: "client",
		Kinds: []KindDecl{
			{Name: "bool"},
			{Name: "const_char_ptr", Type: "string"},
		},
		Operations: []OpDecl{
			{
				Name:    "ping",
				Returns: "bool",
				Params:  []ParamDecl{{Kind: "const_char_ptr", Name: "msg"}},
			},
		},
	}
	m.ApplyDefaults()
	return m
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
