package native

import (
	"github.com/indexsupply/chainabi/abi/prim"
	"github.com/indexsupply/chainabi/internal/xerr"
)

// Pair mirrors the (uint16, bytes) tuples abi_extensions entries are
// made of in the reference implementation. FirstPrim and SecondPrim
// name each element's own codec in package abi/prim -- the reference
// implementation's serializer for this tuple reuses the first
// element's serializer for the second, which silently mis-decodes any
// extension whose second element isn't itself a uint16; this version
// keeps the two independent, as the REDESIGN notes call for.
type Pair struct {
	First      string
	Second     string
	FirstPrim  string
	SecondPrim string
}

// MarshalPair encodes p using First's codec followed by Second's own
// codec, rather than reapplying First's.
func MarshalPair(p Pair) ([]byte, error) {
	firstCodec, err := prim.Get(p.FirstPrim)
	if err != nil {
		return nil, err
	}
	buf, err := firstCodec.DecodeJSON(nil, p.First)
	if err != nil {
		return nil, xerr.Path("first", err)
	}

	secondCodec, err := prim.Get(p.SecondPrim)
	if err != nil {
		return nil, err
	}
	buf, err = secondCodec.DecodeJSON(buf, p.Second)
	if err != nil {
		return nil, xerr.Path("second", err)
	}
	return buf, nil
}

// UnmarshalPair is MarshalPair's inverse. firstPrim and secondPrim name
// the codec for each element; the returned Pair carries the same names
// back out so a caller can re-marshal it unchanged.
func UnmarshalPair(data []byte, firstPrim, secondPrim string) (Pair, int, error) {
	firstCodec, err := prim.Get(firstPrim)
	if err != nil {
		return Pair{}, 0, err
	}
	first, n1, err := firstCodec.EncodeJSON(data)
	if err != nil {
		return Pair{}, 0, xerr.Path("first", err)
	}

	secondCodec, err := prim.Get(secondPrim)
	if err != nil {
		return Pair{}, 0, err
	}
	second, n2, err := secondCodec.EncodeJSON(data[n1:])
	if err != nil {
		return Pair{}, 0, xerr.Path("second", err)
	}

	return Pair{
		First:      first,
		Second:     second,
		FirstPrim:  firstPrim,
		SecondPrim: secondPrim,
	}, n1 + n2, nil
}
