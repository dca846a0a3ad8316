package abi

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/indexsupply/chainabi/abi/schema"
	"github.com/indexsupply/chainabi/sax"
	"github.com/indexsupply/chainabi/tc"
)

func transferContract(t *testing.T) *schema.Contract {
	t.Helper()
	d := &schema.Descriptor{
		Structs: []schema.StructDecl{
			{Name: "transfer", Fields: []schema.FieldDecl{
				{Name: "from", Type: "name"},
				{Name: "to", Type: "name"},
				{Name: "quantity", Type: "asset"},
				{Name: "memo", Type: "string"},
			}},
		},
		Actions: []schema.ActionDecl{
			{Name: "transfer", Type: "transfer"},
		},
	}
	c, err := schema.Resolve(d)
	tc.NoErr(t, err)
	return c
}

func TestEncodeDecodeStructRoundTrip(t *testing.T) {
	c := transferContract(t)
	doc := `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"hi"}`

	src := sax.NewJSONSource(strings.NewReader(doc))
	bin, err := Encode(c, "transfer", src)
	tc.NoErr(t, err)

	sink := sax.NewJSONSink()
	err = Decode(c, "transfer", bin, sink)
	tc.NoErr(t, err)
	tc.WantGot(t, doc, string(sink.Bytes()))
}

func TestEncodeDecodeArrayAndOptional(t *testing.T) {
	d := &schema.Descriptor{
		Structs: []schema.StructDecl{
			{Name: "batch", Fields: []schema.FieldDecl{
				{Name: "ids", Type: "uint64[]"},
				{Name: "note", Type: "string?"},
			}},
		},
	}
	c, err := schema.Resolve(d)
	tc.NoErr(t, err)

	// uint64 decodes to a quoted string (§6.3: only 32-bit-and-narrower
	// integers emit as bare JSON numbers), so the decoded text differs
	// from the unquoted numbers in the encoded input.
	cases := []struct {
		in   string
		want string
	}{
		{
			in:   `{"ids":[1,2,3],"note":"hello"}`,
			want: `{"ids":["1","2","3"],"note":"hello"}`,
		},
		{
			in:   `{"ids":[],"note":null}`,
			want: `{"ids":[],"note":null}`,
		},
	}
	for _, tt := range cases {
		src := sax.NewJSONSource(strings.NewReader(tt.in))
		bin, err := Encode(c, "batch", src)
		tc.NoErr(t, err)

		sink := sax.NewJSONSink()
		err = Decode(c, "batch", bin, sink)
		tc.NoErr(t, err)
		tc.WantGot(t, tt.want, string(sink.Bytes()))
	}
}

func TestEncodeRejectsFieldOrderMismatch(t *testing.T) {
	c := transferContract(t)
	doc := `{"to":"bob","from":"alice","quantity":"1.0000 EOS","memo":"hi"}`
	src := sax.NewJSONSource(strings.NewReader(doc))
	_, err := Encode(c, "transfer", src)
	if err == nil {
		t.Fatal("expected error for out-of-order fields")
	}
}

func TestEncodeRejectsUnknownField(t *testing.T) {
	c := transferContract(t)
	doc := `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"hi","extra":1}`
	src := sax.NewJSONSource(strings.NewReader(doc))
	_, err := Encode(c, "transfer", src)
	if err == nil {
		t.Fatal("expected error for unexpected trailing field")
	}
}

func TestDecodeDetectsTruncatedInput(t *testing.T) {
	c := transferContract(t)
	doc := `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"hi"}`
	src := sax.NewJSONSource(strings.NewReader(doc))
	bin, err := Encode(c, "transfer", src)
	tc.NoErr(t, err)

	sink := sax.NewJSONSink()
	err = Decode(c, "transfer", bin[:len(bin)-1], sink)
	if err == nil {
		t.Fatal("expected error decoding truncated binary")
	}
}

func TestOptionalStructBoundaryScenario(t *testing.T) {
	d := &schema.Descriptor{
		Structs: []schema.StructDecl{
			{Name: "T", Fields: []schema.FieldDecl{
				{Name: "a", Type: "uint8"},
			}},
		},
	}
	c, err := schema.Resolve(d)
	tc.NoErr(t, err)

	src := sax.NewJSONSource(strings.NewReader(`null`))
	bin, err := Encode(c, "T?", src)
	tc.NoErr(t, err)
	tc.WantGot(t, "00", hex.EncodeToString(bin))

	src = sax.NewJSONSource(strings.NewReader(`{"a":7}`))
	bin, err = Encode(c, "T?", src)
	tc.NoErr(t, err)
	tc.WantGot(t, "0107", hex.EncodeToString(bin))
}

func TestInheritanceBoundaryScenario(t *testing.T) {
	d := &schema.Descriptor{
		Structs: []schema.StructDecl{
			{Name: "Parent", Fields: []schema.FieldDecl{
				{Name: "p", Type: "uint8"},
			}},
			{Name: "Child", Base: "Parent", Fields: []schema.FieldDecl{
				{Name: "c", Type: "uint8"},
			}},
		},
	}
	c, err := schema.Resolve(d)
	tc.NoErr(t, err)

	src := sax.NewJSONSource(strings.NewReader(`{"p":1,"c":2}`))
	bin, err := Encode(c, "Child", src)
	tc.NoErr(t, err)
	tc.WantGot(t, "0102", hex.EncodeToString(bin))

	src = sax.NewJSONSource(strings.NewReader(`{"c":2,"p":1}`))
	if _, err := Encode(c, "Child", src); err == nil {
		t.Fatal("expected error for reversed key order")
	}
}

func TestEncodeBinaryMatchesKnownBytes(t *testing.T) {
	d := &schema.Descriptor{
		Structs: []schema.StructDecl{
			{Name: "one_uint8", Fields: []schema.FieldDecl{
				{Name: "x", Type: "uint8"},
			}},
		},
	}
	c, err := schema.Resolve(d)
	tc.NoErr(t, err)

	src := sax.NewJSONSource(strings.NewReader(`{"x":255}`))
	bin, err := Encode(c, "one_uint8", src)
	tc.NoErr(t, err)
	tc.WantGot(t, "ff", hex.EncodeToString(bin))

	// uint8 is narrow enough to decode back to a bare JSON number, not
	// a quoted string.
	sink := sax.NewJSONSink()
	err = Decode(c, "one_uint8", bin, sink)
	tc.NoErr(t, err)
	tc.WantGot(t, `{"x":255}`, string(sink.Bytes()))
}
