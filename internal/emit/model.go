package emit

import (
	"fmt"
	"strings"

	"futuregen/internal/descriptor"
	"futuregen/internal/registry"
)

// File is the render model for one generated source file. It is built
// from a frozen registry and validated descriptors only; the template
// never touches the registry directly.
type File struct {
	Source  string // manifest path for the generated-file header
	Package string
	Runtime string // import path of the futures runtime
	Kinds   []KindModel
	Ops     []OpModel
}

// KindModel is one registered kind with its derived Go spellings.
type KindModel struct {
	Name    string // canonical name, e.g. "const_char_ptr"
	Go      string // accessor suffix, e.g. "ConstCharPtr"
	Type    string // Go representation, e.g. "string"
	Release string // release hook, empty for unowned kinds
}

// OpModel is one operation with its derived Go spellings.
type OpModel struct {
	Name   string // canonical name, e.g. "cursor_next"
	Go     string // e.g. "CursorNext"
	Call   string // target-package function the worker invokes
	Return KindModel
	Params []ParamModel
}

// ParamModel is one parameter slot of an operation's future.
type ParamModel struct {
	Index int
	Name  string // canonical name, e.g. "db_name"
	Arg   string // Go argument identifier, e.g. "dbName"
	Kind  KindModel
}

// OwnedKinds returns the kinds that carry a release hook, in
// registration order. Drives the dispose switch in the template.
func (f *File) OwnedKinds() []KindModel {
	var owned []KindModel
	for _, k := range f.Kinds {
		if k.Release != "" {
			owned = append(owned, k)
		}
	}
	return owned
}

// GoName converts a canonical snake_case name to its exported Go
// spelling: "client_command_simple" becomes "ClientCommandSimple".
func GoName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// goKeywords are spellings a parameter name must not collapse to.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// goArg converts a canonical parameter name to an unexported Go
// argument identifier: "db_name" becomes "dbName". Names that collapse
// to a Go keyword get an "arg" prefix.
func goArg(name string) string {
	n := GoName(name)
	if n == "" {
		return "anon"
	}
	arg := strings.ToLower(n[:1]) + n[1:]
	if goKeywords[arg] {
		return "arg" + n
	}
	return arg
}

// buildFile derives the render model. The registry must be frozen and
// the operations already validated against it; an unresolvable kind
// here is an internal error, not a user-facing one.
func buildFile(source, pkg, runtime string, reg *registry.Registry, ops []descriptor.Operation) (*File, error) {
	f := &File{
		Source:  source,
		Package: pkg,
		Runtime: runtime,
	}

	models := make(map[string]KindModel, reg.Len())
	spellings := make(map[string]string, reg.Len())
	for _, k := range reg.Kinds() {
		km := KindModel{
			Name:    k.Name,
			Go:      GoName(k.Name),
			Type:    k.Type(),
			Release: k.Release,
		}
		// Distinct canonical names must stay distinct once the
		// underscores are folded away, or the accessors collide.
		if prev, clash := spellings[km.Go]; clash {
			return nil, fmt.Errorf("emit: kinds %q and %q both spell as %s in Go", prev, k.Name, km.Go)
		}
		spellings[km.Go] = k.Name
		models[k.Name] = km
		f.Kinds = append(f.Kinds, km)
	}

	opSpellings := make(map[string]string, len(ops))
	for _, op := range ops {
		ret, ok := models[op.Returns]
		if !ok {
			return nil, fmt.Errorf("emit: operation %q passed validation with unknown kind %q", op.Name, op.Returns)
		}
		if prev, clash := opSpellings[GoName(op.Name)]; clash {
			return nil, fmt.Errorf("emit: operations %q and %q both spell as %s in Go", prev, op.Name, GoName(op.Name))
		}
		opSpellings[GoName(op.Name)] = op.Name
		om := OpModel{
			Name:   op.Name,
			Go:     GoName(op.Name),
			Call:   op.Call,
			Return: ret,
		}
		if om.Call == "" {
			om.Call = om.Go
		}
		for i, p := range op.Params {
			pk, ok := models[p.Kind]
			if !ok {
				return nil, fmt.Errorf("emit: operation %q passed validation with unknown kind %q", op.Name, p.Kind)
			}
			om.Params = append(om.Params, ParamModel{Index: i, Name: p.Name, Arg: goArg(p.Name), Kind: pk})
		}
		f.Ops = append(f.Ops, om)
	}
	return f, nil
}
