package native

import (
	"testing"

	"github.com/indexsupply/chainabi/abi/schema"
	"github.com/indexsupply/chainabi/tc"
)

func TestMarshalUnmarshalDescriptor(t *testing.T) {
	d := schema.Descriptor{
		Version: "eosio::abi/1.1",
		Types: []schema.AliasDecl{
			{NewTypeName: "account_name", Type: "name"},
		},
		Structs: []schema.StructDecl{
			{Name: "transfer", Fields: []schema.FieldDecl{
				{Name: "from", Type: "name"},
				{Name: "to", Type: "name"},
			}},
		},
		Actions: []schema.ActionDecl{
			{Name: "transfer", Type: "transfer"},
		},
		Tables:   []schema.TableDecl{},
		Variants: []schema.VariantDecl{},
	}

	b, err := Marshal(&d)
	tc.NoErr(t, err)

	var got schema.Descriptor
	err = Unmarshal(b, &got)
	tc.NoErr(t, err)
	tc.WantGot(t, d, got)
}

func TestMarshalUnmarshalEmptyDescriptor(t *testing.T) {
	d := schema.Descriptor{
		Version:  "eosio::abi/1.1",
		Types:    []schema.AliasDecl{},
		Structs:  []schema.StructDecl{},
		Actions:  []schema.ActionDecl{},
		Tables:   []schema.TableDecl{},
		Variants: []schema.VariantDecl{},
	}
	b, err := Marshal(&d)
	tc.NoErr(t, err)

	var got schema.Descriptor
	err = Unmarshal(b, &got)
	tc.NoErr(t, err)
	tc.WantGot(t, d, got)
}

func TestPairUsesEachElementsOwnSerializer(t *testing.T) {
	p := Pair{First: "42", Second: "deadbeef", FirstPrim: "uint16", SecondPrim: "bytes"}
	b, err := MarshalPair(p)
	tc.NoErr(t, err)

	got, n, err := UnmarshalPair(b, "uint16", "bytes")
	tc.NoErr(t, err)
	tc.WantGot(t, len(b), n)
	tc.WantGot(t, "42", got.First)
	tc.WantGot(t, "deadbeef", got.Second)
}
