// Package schema resolves an ABI description -- the set of type, struct,
// and action declarations published alongside a contract -- into a graph
// of [Type] values that the json-to-binary and binary-to-json engines in
// package abi can walk directly, without re-deriving alias chains or
// struct layouts on every call.
//
// The resolution rules (suffix synthesis for "?" and "[]", alias
// flattening, struct inheritance via base, the depth-32 recursion cap)
// follow the reference ABI resolver: get_type, fill_struct, and
// create_contract.
package schema

import (
	"strings"

	"github.com/indexsupply/chainabi/internal/xerr"
)

// maxTypeDepth bounds how many "?"/"[]" suffixes or alias hops Resolve
// will peel off a single type name before giving up. The reference
// resolver enforces the same limit.
const maxTypeDepth = 32

// Kind tags which variant of Type is populated.
type Kind byte

const (
	KindPrimitive Kind = iota
	KindAlias
	KindOptional
	KindArray
	KindStruct
)

// Field is one member of a struct type, in declaration order with base
// fields (if any) first.
type Field struct {
	Name string
	Type *Type
}

// Type is a node in the resolved ABI type graph. Exactly one of the
// Kind-specific fields is meaningful for a given Kind:
//
//	KindPrimitive: Prim names the codec in package abi/prim.
//	KindAlias:     Elem is the aliased-to type.
//	KindOptional:  Elem is the wrapped type ("T?").
//	KindArray:     Elem is the element type ("T[]").
//	KindStruct:    Fields is the flattened field list (base first).
type Type struct {
	Name   string
	Kind   Kind
	Prim   string
	Elem   *Type
	Fields []Field
}

// Descriptor is the wire shape of an ABI description: the JSON document
// that names every type, struct, and action a contract exposes. The abi
// tags let package abi/native (de)serialize a Descriptor in its own
// binary form, the way the ABI description itself travels on the wire
// before there's a resolved Contract available to decode it with.
type Descriptor struct {
	Version  string        `json:"version" abi:"version,string"`
	Types    []AliasDecl   `json:"types" abi:"types"`
	Structs  []StructDecl  `json:"structs" abi:"structs"`
	Actions  []ActionDecl  `json:"actions" abi:"actions"`
	Tables   []TableDecl   `json:"tables,omitempty" abi:"tables"`
	Variants []VariantDecl `json:"variants,omitempty" abi:"variants"`
}

type AliasDecl struct {
	NewTypeName string `json:"new_type_name" abi:"new_type_name,string"`
	Type        string `json:"type" abi:"type,string"`
}

type FieldDecl struct {
	Name string `json:"name" abi:"name,string"`
	Type string `json:"type" abi:"type,string"`
}

type StructDecl struct {
	Name   string      `json:"name" abi:"name,string"`
	Base   string      `json:"base" abi:"base,string"`
	Fields []FieldDecl `json:"fields" abi:"fields"`
}

type ActionDecl struct {
	Name string `json:"name" abi:"name,name"`
	Type string `json:"type" abi:"type,string"`
}

type TableDecl struct {
	Name      string `json:"name" abi:"name,name"`
	Type      string `json:"type" abi:"type,string"`
	IndexType string `json:"index_type" abi:"index_type,string"`
}

type VariantDecl struct {
	Name  string   `json:"name" abi:"name,string"`
	Types []string `json:"types" abi:"types,string"`
}

// Contract is the resolved form of a Descriptor: every type name a
// caller might ask for, already flattened into a [Type] graph, plus the
// action-name to type-name mapping used to pick a root type for an
// incoming action payload.
type Contract struct {
	types   map[string]*Type
	Actions map[string]string // action name -> type name
	Tables  map[string]string // table name -> type name
}

// GetType returns the resolved type registered under name, or an
// "unknown type" error. name may itself carry "?"/"[]" suffixes, in
// which case the wrapper type is synthesized (and cached) on first
// request, exactly as the reference resolver's get_type does.
func (c *Contract) GetType(name string) (*Type, error) {
	return c.getType(name, 0)
}

func (c *Contract) getType(name string, depth int) (*Type, error) {
	if depth > maxTypeDepth {
		return nil, xerr.ErrAbiRecursionLimit
	}
	if t, ok := c.types[name]; ok {
		return t, nil
	}
	switch {
	case strings.HasSuffix(name, "?"):
		base := strings.TrimSuffix(name, "?")
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "[]") {
			return nil, xerr.ErrNoNesting
		}
		elem, err := c.getType(base, depth+1)
		if err != nil {
			return nil, err
		}
		t := &Type{Name: name, Kind: KindOptional, Elem: elem}
		c.types[name] = t
		return t, nil
	case strings.HasSuffix(name, "[]"):
		base := strings.TrimSuffix(name, "[]")
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "[]") {
			return nil, xerr.ErrNoNesting
		}
		elem, err := c.getType(base, depth+1)
		if err != nil {
			return nil, err
		}
		t := &Type{Name: name, Kind: KindArray, Elem: elem}
		c.types[name] = t
		return t, nil
	default:
		return nil, xerr.UnknownType(name)
	}
}

// builtinPrims is the registry of names that resolve directly to a
// package abi/prim codec, independent of any particular ABI
// description.
var builtinPrims = []string{
	"bool",
	"int8", "uint8",
	"int16", "uint16",
	"int32", "uint32",
	"int64", "uint64",
	"int128", "uint128",
	"varint32", "varuint32",
	"float32", "float64", "float128",
	"time_point_sec", "time_point", "block_timestamp_type",
	"name",
	"bytes", "string",
	"checksum160", "checksum256", "checksum512",
	"public_key", "private_key", "signature",
	"symbol", "symbol_code", "asset",
}

// Resolve builds a Contract from an ABI description. It registers the
// built-in primitives, then the declared aliases and structs, rejecting
// duplicate or missing names before flattening struct inheritance
// chains (base first) and filling in the action and table maps.
func Resolve(d *Descriptor) (*Contract, error) {
	c := &Contract{
		types:   make(map[string]*Type, len(builtinPrims)+len(d.Types)+len(d.Structs)),
		Actions: make(map[string]string, len(d.Actions)),
		Tables:  make(map[string]string, len(d.Tables)),
	}
	for _, p := range builtinPrims {
		c.types[p] = &Type{Name: p, Kind: KindPrimitive, Prim: p}
	}
	// extended_asset is a built-in compound type (an asset plus the
	// name of the contract it's issued by) rather than a flat
	// primitive, so it's synthesized as a two-field struct here instead
	// of living in builtinPrims.
	c.types["extended_asset"] = &Type{
		Name: "extended_asset",
		Kind: KindStruct,
		Fields: []Field{
			{Name: "quantity", Type: c.types["asset"]},
			{Name: "contract", Type: c.types["name"]},
		},
	}

	// Register every alias and struct name up front (as placeholders for
	// structs) so forward references between declarations resolve,
	// exactly as create_contract does in two passes: names first, bodies
	// second.
	structByName := make(map[string]StructDecl, len(d.Structs))
	for _, s := range d.Structs {
		if s.Name == "" {
			return nil, xerr.ErrStructMissingName
		}
		if _, dup := c.types[s.Name]; dup {
			return nil, xerr.RedefinesType(s.Name)
		}
		structByName[s.Name] = s
		c.types[s.Name] = &Type{Name: s.Name, Kind: KindStruct}
	}
	for _, a := range d.Types {
		if a.NewTypeName == "" {
			return nil, xerr.ErrTypeMissingName
		}
		if _, dup := c.types[a.NewTypeName]; dup {
			return nil, xerr.RedefinesType(a.NewTypeName)
		}
		// the aliased-to type is resolved lazily below, once every name
		// in the description is at least registered as a placeholder.
		c.types[a.NewTypeName] = &Type{Name: a.NewTypeName, Kind: KindAlias}
	}

	for _, a := range d.Types {
		elem, err := c.getType(a.Type, 0)
		if err != nil {
			return nil, err
		}
		c.types[a.NewTypeName].Elem = elem
	}
	// flatten each alias so Elem is the first non-alias type at the end
	// of its chain; a chain longer than maxTypeDepth, or a cycle, is
	// rejected.
	for _, a := range d.Types {
		t := c.types[a.NewTypeName]
		target := t.Elem
		for hops := 0; target.Kind == KindAlias; hops++ {
			if hops >= maxTypeDepth {
				return nil, xerr.ErrAbiRecursionLimit
			}
			target = target.Elem
		}
		t.Elem = target
	}

	filled := make(map[string]bool, len(structByName))
	var fillErr error
	for name := range structByName {
		fillStruct(c, structByName, name, filled, make(map[string]bool), 0, &fillErr)
		if fillErr != nil {
			return nil, fillErr
		}
	}

	for _, act := range d.Actions {
		if act.Name == "" {
			return nil, xerr.ErrTypeMissingName
		}
		c.Actions[act.Name] = act.Type
	}
	for _, tbl := range d.Tables {
		c.Tables[tbl.Name] = tbl.Type
	}
	return c, nil
}

// fillStruct resolves name's field list in place, first recursing into
// its base (if any) so inherited fields land before the struct's own,
// matching fill_struct's base-then-self order. inStack detects cycles
// through base chains; depth enforces the same recursion cap as
// getType.
func fillStruct(
	c *Contract,
	decls map[string]StructDecl,
	name string,
	filled map[string]bool,
	inStack map[string]bool,
	depth int,
	errOut *error,
) {
	if *errOut != nil || filled[name] {
		return
	}
	if depth > maxTypeDepth || inStack[name] {
		*errOut = xerr.ErrAbiRecursionLimit
		return
	}
	decl, ok := decls[name]
	if !ok {
		*errOut = xerr.UnknownType(name)
		return
	}

	var fields []Field
	if decl.Base != "" {
		if _, isStruct := decls[decl.Base]; isStruct {
			inStack[name] = true
			fillStruct(c, decls, decl.Base, filled, inStack, depth+1, errOut)
			inStack[name] = false
			if *errOut != nil {
				return
			}
			fields = append(fields, c.types[decl.Base].Fields...)
		} else {
			baseType, err := c.getType(decl.Base, depth+1)
			if err != nil {
				*errOut = err
				return
			}
			if baseType.Kind != KindStruct {
				*errOut = xerr.NotAStruct(decl.Base)
				return
			}
			fields = append(fields, baseType.Fields...)
		}
	}

	seen := make(map[string]bool, len(decl.Fields))
	for _, f := range decl.Fields {
		if f.Name == "" {
			*errOut = xerr.ErrStructMissingName
			return
		}
		if seen[f.Name] {
			*errOut = xerr.RedefinesType(f.Name)
			return
		}
		seen[f.Name] = true
		ft, err := c.getType(f.Type, depth+1)
		if err != nil {
			*errOut = err
			return
		}
		fields = append(fields, Field{Name: f.Name, Type: ft})
	}

	c.types[name].Fields = fields
	filled[name] = true
}
