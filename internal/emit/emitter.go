// Package emit renders a validated generation manifest into one
// compilable Go source file. Rendering is a single static pass:
// registry → validation → render model → template → gofmt → AST
// check → write. Any failure aborts before a byte reaches disk.
package emit

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"futuregen/internal/config"
	"futuregen/internal/descriptor"
)

// Emitter turns manifests into generated source.
type Emitter struct {
	log *zap.Logger
}

// New returns an Emitter logging through log. A nil logger disables
// logging.
func New(log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{log: log}
}

// Generate validates the manifest and renders the generated file,
// returning gofmt-formatted source. Nothing is written to disk; the
// caller decides where the bytes go.
func (e *Emitter) Generate(m *config.Manifest) ([]byte, error) {
	reg, err := m.BuildRegistry()
	if err != nil {
		return nil, err
	}
	ops := m.Descriptors()
	if err := descriptor.Validate(reg, ops); err != nil {
		return nil, err
	}

	model, err := buildFile(m.Source, m.Package, m.Runtime, reg, ops)
	if err != nil {
		return nil, err
	}

	e.log.Debug("rendering generated source",
		zap.String("package", m.Package),
		zap.Int("kinds", reg.Len()),
		zap.Int("operations", len(ops)))

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// A manifest that renders unparseable source (a Go keyword as
		// a type, say) must not produce a file at all.
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}

	if err := checkDecls(src, model); err != nil {
		return nil, err
	}
	return src, nil
}

// GenerateFile renders the manifest and writes the result to path,
// creating parent directories as needed.
func (e *Emitter) GenerateFile(m *config.Manifest, path string) error {
	src, err := e.Generate(m)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("write generated file: %w", err)
	}

	e.log.Info("generated futures",
		zap.String("path", path),
		zap.Int("bytes", len(src)),
		zap.Int("operations", len(m.Operations)))
	return nil
}

// checkDecls parses the rendered source and verifies every accessor
// and future/background pair the model promises actually got emitted.
// A miss here is template drift, not a manifest problem, but it is
// still caught before the file is written.
func checkDecls(src []byte, model *File) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "futures_gen.go", src, 0)
	if err != nil {
		return fmt.Errorf("parse generated source: %w", err)
	}

	funcs := make(map[string]bool)
	ast.Inspect(file, func(n ast.Node) bool {
		if fn, ok := n.(*ast.FuncDecl); ok {
			funcs[fn.Name.Name] = true
		}
		return true
	})

	var want []string
	for _, k := range model.Kinds {
		want = append(want, "Set"+k.Go, "Get"+k.Go)
	}
	for _, op := range model.Ops {
		want = append(want, "Future"+op.Go, "background"+op.Go)
	}
	for _, name := range want {
		if !funcs[name] {
			return fmt.Errorf("emit: generated source is missing %s", name)
		}
	}
	return nil
}
