// Package prim implements the leaf-level codecs named in an ABI
// description: fixed-width integers, the LEB128 varints, the
// name/symbol/asset family, timestamps, and the key/signature blobs.
// Every codec here is grounded on the reference implementation's
// primitive table (abieos.hpp's serializer specializations).
//
// A Codec's JSON side always deals in strings: the json-to-binary
// engine in package abi hands it the text of a sax.String event (even
// for things that look like JSON numbers -- the tokenizer is
// configured to defer numeric parsing here, so 64 and 128-bit values
// never round-trip through a float64), and its binary-to-json side
// hands back text that the engine emits as a bare number or a quoted
// string, as the codec's Number method reports. The one
// exception is "bool", whose JSON form is the literal true/false
// token; the engine special-cases that name rather than routing it
// through a Codec.
package prim

import "github.com/indexsupply/chainabi/internal/xerr"

// Codec converts one primitive type between its binary ABI encoding and
// its JSON-level text.
type Codec interface {
	// DecodeJSON appends the binary encoding of s to dst.
	DecodeJSON(dst []byte, s string) ([]byte, error)
	// EncodeJSON reads the type's binary encoding from the front of src
	// and returns its JSON text plus the number of bytes consumed.
	EncodeJSON(src []byte) (text string, n int, err error)
	// Number reports whether EncodeJSON's text is a bare JSON numeric
	// literal (uint8/16/32, int8/16/32, the varints, float32/float64)
	// rather than a quoted string (everything else, including 64 and
	// 128-bit integers).
	Number() bool
}

// registry maps every name builtinPrims lists in package abi/schema to
// its codec. "bool" is deliberately absent -- see the package doc.
var registry = map[string]Codec{
	"int8":    fixedIntCodec{size: 1, signed: true},
	"uint8":   fixedIntCodec{size: 1, signed: false},
	"int16":   fixedIntCodec{size: 2, signed: true},
	"uint16":  fixedIntCodec{size: 2, signed: false},
	"int32":   fixedIntCodec{size: 4, signed: true},
	"uint32":  fixedIntCodec{size: 4, signed: false},
	"int64":   fixedIntCodec{size: 8, signed: true},
	"uint64":  fixedIntCodec{size: 8, signed: false},
	"int128":  int128Codec{signed: true},
	"uint128": int128Codec{signed: false},

	"varint32":  varintCodec{signed: true},
	"varuint32": varintCodec{signed: false},

	"float32":  float32Codec{},
	"float64":  float64Codec{},
	"float128": float128Codec{},

	"time_point_sec":       timePointSecCodec{},
	"time_point":           timePointCodec{},
	"block_timestamp_type": blockTimestampCodec{},

	"name": nameCodec{},

	"bytes":  bytesCodec{},
	"string": stringCodec{},

	"checksum160": checksumCodec{size: 20},
	"checksum256": checksumCodec{size: 32},
	"checksum512": checksumCodec{size: 64},

	"public_key":  publicKeyCodec{},
	"private_key": privateKeyCodec{},
	"signature":   signatureCodec{},

	"symbol_code": symbolCodeCodec{},
	"symbol":      symbolCodec{},
	"asset":       assetCodec{},
}

// Get returns the codec registered for name, or an error if name isn't
// one of the built-in primitives.
func Get(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, xerr.UnknownType(name)
	}
	return c, nil
}
