package schema

import (
	"testing"

	"github.com/indexsupply/chainabi/tc"
)

func TestResolveStructWithBase(t *testing.T) {
	d := &Descriptor{
		Structs: []StructDecl{
			{Name: "base_row", Fields: []FieldDecl{
				{Name: "id", Type: "uint64"},
			}},
			{Name: "transfer", Base: "base_row", Fields: []FieldDecl{
				{Name: "from", Type: "name"},
				{Name: "to", Type: "name"},
				{Name: "quantity", Type: "asset"},
				{Name: "memo", Type: "string"},
			}},
		},
		Actions: []ActionDecl{
			{Name: "transfer", Type: "transfer"},
		},
	}
	c, err := Resolve(d)
	tc.NoErr(t, err)

	tt, err := c.GetType("transfer")
	tc.NoErr(t, err)
	tc.WantGot(t, KindStruct, tt.Kind)
	tc.WantGot(t, 5, len(tt.Fields))
	tc.WantGot(t, "id", tt.Fields[0].Name)
	tc.WantGot(t, "memo", tt.Fields[4].Name)
	tc.WantGot(t, "transfer", c.Actions["transfer"])
}

func TestResolveAliasChain(t *testing.T) {
	d := &Descriptor{
		Types: []AliasDecl{
			{NewTypeName: "account_name", Type: "name"},
			{NewTypeName: "owner_name", Type: "account_name"},
		},
	}
	c, err := Resolve(d)
	tc.NoErr(t, err)

	tt, err := c.GetType("owner_name")
	tc.NoErr(t, err)
	tc.WantGot(t, KindAlias, tt.Kind)
	tc.WantGot(t, KindPrimitive, tt.Elem.Kind)
	tc.WantGot(t, "name", tt.Elem.Name)
}

func TestResolveOptionalAndArraySuffixes(t *testing.T) {
	c, err := Resolve(&Descriptor{})
	tc.NoErr(t, err)

	opt, err := c.GetType("uint64?")
	tc.NoErr(t, err)
	tc.WantGot(t, KindOptional, opt.Kind)
	tc.WantGot(t, "uint64", opt.Elem.Name)

	arr, err := c.GetType("name[]")
	tc.NoErr(t, err)
	tc.WantGot(t, KindArray, arr.Kind)
	tc.WantGot(t, "name", arr.Elem.Name)
}

func TestResolveRejectsDoubleNesting(t *testing.T) {
	c, err := Resolve(&Descriptor{})
	tc.NoErr(t, err)

	_, err = c.GetType("uint64?[]")
	if err == nil {
		t.Fatal("expected error for array-of-optional nesting")
	}
	_, err = c.GetType("uint64[]?")
	if err == nil {
		t.Fatal("expected error for optional-of-array nesting")
	}
}

func TestResolveRejectsDuplicateStruct(t *testing.T) {
	d := &Descriptor{
		Structs: []StructDecl{
			{Name: "foo", Fields: []FieldDecl{{Name: "a", Type: "uint8"}}},
			{Name: "foo", Fields: []FieldDecl{{Name: "b", Type: "uint8"}}},
		},
	}
	_, err := Resolve(d)
	if err == nil {
		t.Fatal("expected error for duplicate struct name")
	}
}

func TestResolveRejectsUnknownType(t *testing.T) {
	d := &Descriptor{
		Structs: []StructDecl{
			{Name: "foo", Fields: []FieldDecl{{Name: "a", Type: "not_a_real_type"}}},
		},
	}
	_, err := Resolve(d)
	if err == nil {
		t.Fatal("expected error for unknown field type")
	}
}

func TestResolveRejectsNonStructBase(t *testing.T) {
	d := &Descriptor{
		Structs: []StructDecl{
			{Name: "foo", Base: "uint64", Fields: []FieldDecl{{Name: "a", Type: "uint8"}}},
		},
	}
	_, err := Resolve(d)
	if err == nil {
		t.Fatal("expected error for non-struct base")
	}
}

func TestResolveExtendedAssetIsBuiltin(t *testing.T) {
	c, err := Resolve(&Descriptor{})
	tc.NoErr(t, err)
	tt, err := c.GetType("extended_asset")
	tc.NoErr(t, err)
	tc.WantGot(t, KindStruct, tt.Kind)
	tc.WantGot(t, 2, len(tt.Fields))
}
