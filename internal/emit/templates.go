package emit

import "text/template"

// fileTmpl stamps the full generated file: the tagged Value container
// with per-kind accessors, the Future handle, and one future/background
// pair per operation. Output is piped through go/format, so the
// template only has to be syntactically exact, not gofmt-exact.
var fileTmpl = template.Must(template.New("futures").Parse(fileTemplate))

const fileTemplate = `// Code generated by futuregen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
	"time"

	"{{.Runtime}}"
)

// Kind discriminates the value held by a Value container.
type Kind uint8

const (
	KindNone Kind = iota
{{- range .Kinds}}
	Kind{{.Go}}
{{- end}}
)

var kindNames = [...]string{
	KindNone: "none",
{{- range .Kinds}}
	Kind{{.Go}}: "{{.Name}}",
{{- end}}
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value holds at most one live value of one registered kind. It is not
// safe for concurrent mutation; exactly one party owns it at any phase
// of a future's life.
type Value struct {
	kind Kind
	v    any
}

// Kind returns the discriminant of the live value.
func (v *Value) Kind() Kind { return v.kind }

// Release frees any owned payload and empties the container. Safe to
// call repeatedly; a payload is released at most once.
func (v *Value) Release() {
	v.dispose()
	v.kind = KindNone
	v.v = nil
}

func (v *Value) dispose() {
{{- if .OwnedKinds}}
	switch v.kind {
{{- range .OwnedKinds}}
	case Kind{{.Go}}:
		if p := v.v.({{.Type}}); p != nil {
			{{.Release}}(p)
		}
{{- end}}
	}
{{- end}}
}
{{range .Kinds}}
// Set{{.Go}} stores a value of kind "{{.Name}}", releasing any
// previously live owned payload first.
func (v *Value) Set{{.Go}}(x {{.Type}}) {
	v.dispose()
	v.kind = Kind{{.Go}}
	v.v = x
}

// Get{{.Go}} returns the live value as kind "{{.Name}}". Reading any
// other kind is a contract violation and panics.
func (v *Value) Get{{.Go}}() {{.Type}} {
	if v.kind != Kind{{.Go}} {
		panic(fmt.Sprintf("future value: read as %q, holds %q", Kind{{.Go}}, v.kind))
	}
	return v.v.({{.Type}})
}
{{end}}
// Future is the handle to one background-dispatched operation: one
// Value per declared parameter, one for the return value, and the
// one-shot resolution core. A future is shared by exactly two parties,
// the dispatching caller and its worker, with a single-writer then
// single-reader discipline.
type Future struct {
	core   *future.Core
	params []Value
	ret    Value
}

func newFuture(nparams int) *Future {
	return &Future{core: future.NewCore(), params: make([]Value, nparams)}
}

// resolve stores the return value and wakes the waiter. Called exactly
// once, by the background routine; a second call panics.
func (f *Future) resolve(v Value) {
	f.ret = v
	f.core.Resolve()
}

// Param returns the i'th argument slot. The worker reads the argument
// slots before resolving; the caller must not touch them while the
// operation is in flight.
func (f *Future) Param(i int) *Value { return &f.params[i] }

// Resolved reports whether the operation has completed, without
// blocking.
func (f *Future) Resolved() bool { return f.core.Resolved() }

// WaitFor blocks until resolution or until d elapses, reporting
// whether the future resolved. The worker runs to completion either
// way.
func (f *Future) WaitFor(d time.Duration) bool { return f.core.WaitFor(d) }

// Release frees every owned argument and the return slot. Call once,
// after the future has resolved and its value has been read.
func (f *Future) Release() {
	for i := range f.params {
		f.params[i].Release()
	}
	f.ret.Release()
}
{{range .Kinds}}
// Get{{.Go}} blocks until the operation completes, then returns its
// result as kind "{{.Name}}". Idempotent once resolved.
func (f *Future) Get{{.Go}}() {{.Type}} {
	f.core.Wait()
	return f.ret.Get{{.Go}}()
}
{{end}}
{{- range .Ops}}
// Future{{.Go}} packages its arguments into a future and launches
// {{.Call}} on a background worker. It returns the handle immediately;
// block on one of the Get accessors for the result.
func Future{{.Go}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Arg}} {{$p.Kind.Type}}{{end}}) *Future {
	f := newFuture({{len .Params}})
{{- range .Params}}
	f.params[{{.Index}}].Set{{.Kind.Go}}({{.Arg}})
{{- end}}
	go background{{.Go}}(f)
	return f
}

// background{{.Go}} runs on the worker: it unpacks the arguments,
// makes the real blocking call, and resolves the future with its
// result.
func background{{.Go}}(f *Future) {
	var ret Value
	ret.Set{{.Return.Go}}({{.Call}}({{range $i, $p := .Params}}{{if $i}}, {{end}}f.params[{{$p.Index}}].Get{{$p.Kind.Go}}(){{end}}))
	f.resolve(ret)
}
{{end}}`
