// Package abi implements a bidirectional binary/JSON codec driven by a
// runtime ABI description: call [schema.Resolve] once per contract to
// build a [schema.Contract], then use [Encode] and [Decode] to convert
// any of its declared types between the two representations.
//
// Both directions walk the resolved type graph by plain recursion with
// an explicit depth counter, the same shape the reference
// implementation's json_to_bin/bin_to_json use their own 128-frame
// stack for -- a handwritten call stack buys nothing in Go, where the
// runtime stack already grows on demand, so the cap is enforced by
// checking depth against maxDepth at every descent instead.
package abi

import (
	"io"
	"log/slog"

	"github.com/indexsupply/chainabi/abi/prim"
	"github.com/indexsupply/chainabi/abi/schema"
	"github.com/indexsupply/chainabi/internal/xerr"
	"github.com/indexsupply/chainabi/sax"
	"github.com/indexsupply/chainabi/varint"
)

// maxDepth mirrors the reference implementation's max_stack_size: a
// struct, optional, or array nested more than this many levels deep is
// rejected outright rather than risking runaway recursion on
// adversarial input.
const maxDepth = 128

// Encode converts one JSON value, read from src, into its binary ABI
// encoding for typeName. Errors from inside a struct or array carry a
// breadcrumb of field names and indices back to the root, assembled as
// the walk unwinds.
func Encode(c *schema.Contract, typeName string, src sax.Source) ([]byte, error) {
	t, err := c.GetType(typeName)
	if err != nil {
		slog.Error("encode", "type", typeName, "error", err)
		return nil, err
	}
	out, err := encodeValue(t, src, 0)
	if err != nil {
		slog.Error("encode", "type", typeName, "error", err)
		return nil, err
	}
	if _, err := src.Next(); err != io.EOF {
		slog.Error("encode", "type", typeName, "error", xerr.ErrExtraData)
		return nil, xerr.ErrExtraData
	}
	return out, nil
}

// Decode converts the binary ABI encoding of typeName in data into a
// JSON value, driving sink with the matching sax events. It returns an
// error if data has bytes left over once the value is fully decoded.
func Decode(c *schema.Contract, typeName string, data []byte, sink sax.Sink) error {
	t, err := c.GetType(typeName)
	if err != nil {
		slog.Error("decode", "type", typeName, "error", err)
		return err
	}
	n, err := decodeValue(t, data, sink, 0)
	if err != nil {
		slog.Error("decode", "type", typeName, "error", err)
		return err
	}
	if n != len(data) {
		slog.Error("decode", "type", typeName, "error", xerr.ErrExtraData)
		return xerr.ErrExtraData
	}
	return nil
}

func encodeValue(t *schema.Type, src sax.Source, depth int) ([]byte, error) {
	ev, err := src.Next()
	if err != nil {
		return nil, err
	}
	return encodeValueFrom(t, ev, src, depth)
}

// encodeValueFrom encodes t's value given its already-consumed first
// event. Splitting this out from encodeValue is what lets an optional
// or array frame peek one event ahead (to tell a null from a present
// value, or to notice the matching end-of-array) without putting it
// back on the source.
func encodeValueFrom(t *schema.Type, ev sax.Event, src sax.Source, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, xerr.ErrRecursionLimit
	}
	switch t.Kind {
	case schema.KindAlias:
		return encodeValueFrom(t.Elem, ev, src, depth+1)

	case schema.KindOptional:
		if ev.Kind == sax.Null {
			return []byte{0}, nil
		}
		inner, err := encodeValueFrom(t.Elem, ev, src, depth+1)
		if err != nil {
			return nil, err
		}
		return append([]byte{1}, inner...), nil

	case schema.KindArray:
		if ev.Kind != sax.StartArray {
			return nil, xerr.ErrExpectedArray
		}
		var elems []byte
		var count uint32
		for {
			ev2, err := src.Next()
			if err != nil {
				return nil, err
			}
			if ev2.Kind == sax.EndArray {
				break
			}
			b, err := encodeValueFrom(t.Elem, ev2, src, depth+1)
			if err != nil {
				return nil, xerr.Path(indexPath(count), err)
			}
			elems = append(elems, b...)
			count++
		}
		out := varint.PutUvarint32(nil, count)
		return append(out, elems...), nil

	case schema.KindStruct:
		if ev.Kind != sax.StartObject {
			return nil, xerr.ErrExpectedObject
		}
		return encodeStructBody(t, src, depth)

	case schema.KindPrimitive:
		return encodePrimFrom(t.Prim, ev)

	default:
		return nil, xerr.UnknownType(t.Name)
	}
}

// integerPrims lists every primitive whose JSON side also accepts a
// bare boolean, treated as 0/1, alongside its usual string or number
// text -- the same leniency the reference implementation's
// json_to_bin grants integer fields.
var integerPrims = map[string]bool{
	"int8": true, "uint8": true,
	"int16": true, "uint16": true,
	"int32": true, "uint32": true,
	"int64": true, "uint64": true,
	"int128": true, "uint128": true,
	"varint32": true, "varuint32": true,
}

func encodePrimFrom(name string, ev sax.Event) ([]byte, error) {
	if name == "bool" {
		if ev.Kind != sax.Bool {
			return nil, xerr.ErrExpectedNumOrBool
		}
		if ev.BoolVal {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	}
	codec, err := prim.Get(name)
	if err != nil {
		return nil, err
	}
	if ev.Kind == sax.Bool && integerPrims[name] {
		if ev.BoolVal {
			return codec.DecodeJSON(nil, "1")
		}
		return codec.DecodeJSON(nil, "0")
	}
	if ev.Kind != sax.String {
		return nil, xerr.ExpectedStringContaining(name)
	}
	return codec.DecodeJSON(nil, ev.Text)
}

// encodeStructBody consumes fields in declaration order -- base fields
// first, own fields after -- the same order fill_struct lays a struct
// out in. A key that doesn't match the next expected field name, or
// one left over once every field is filled, is reported by name rather
// than position.
func encodeStructBody(t *schema.Type, src sax.Source, depth int) ([]byte, error) {
	var buf []byte
	for _, f := range t.Fields {
		ev, err := src.Next()
		if err != nil {
			return nil, err
		}
		if ev.Kind != sax.Key || ev.Text != f.Name {
			return nil, xerr.ExpectedField(f.Name)
		}
		b, err := encodeValue(f.Type, src, depth+1)
		if err != nil {
			return nil, xerr.Path(f.Name, err)
		}
		buf = append(buf, b...)
	}
	ev, err := src.Next()
	if err != nil {
		return nil, err
	}
	switch ev.Kind {
	case sax.EndObject:
		return buf, nil
	case sax.Key:
		return nil, xerr.UnexpectedField(ev.Text)
	default:
		return nil, xerr.ErrExpectedObject
	}
}

func decodeValue(t *schema.Type, data []byte, sink sax.Sink, depth int) (int, error) {
	if depth > maxDepth {
		return 0, xerr.ErrRecursionLimit
	}
	switch t.Kind {
	case schema.KindAlias:
		return decodeValue(t.Elem, data, sink, depth+1)

	case schema.KindOptional:
		if len(data) < 1 {
			return 0, xerr.ErrReadPastEnd
		}
		if data[0] == 0 {
			if err := sink.Null(); err != nil {
				return 0, err
			}
			return 1, nil
		}
		n, err := decodeValue(t.Elem, data[1:], sink, depth+1)
		if err != nil {
			return 0, err
		}
		return 1 + n, nil

	case schema.KindArray:
		count, prefix, err := varint.Uvarint32(data)
		if err != nil {
			return 0, err
		}
		if err := sink.StartArray(); err != nil {
			return 0, err
		}
		consumed := prefix
		for i := uint32(0); i < count; i++ {
			n, err := decodeValue(t.Elem, data[consumed:], sink, depth+1)
			if err != nil {
				return 0, err
			}
			consumed += n
		}
		if err := sink.EndArray(); err != nil {
			return 0, err
		}
		return consumed, nil

	case schema.KindStruct:
		if err := sink.StartObject(); err != nil {
			return 0, err
		}
		consumed := 0
		for _, f := range t.Fields {
			if err := sink.Key(f.Name); err != nil {
				return 0, err
			}
			n, err := decodeValue(f.Type, data[consumed:], sink, depth+1)
			if err != nil {
				return 0, err
			}
			consumed += n
		}
		if err := sink.EndObject(); err != nil {
			return 0, err
		}
		return consumed, nil

	case schema.KindPrimitive:
		return decodePrim(t.Prim, data, sink)

	default:
		return 0, xerr.UnknownType(t.Name)
	}
}

func decodePrim(name string, data []byte, sink sax.Sink) (int, error) {
	if name == "bool" {
		if len(data) < 1 {
			return 0, xerr.ErrReadPastEnd
		}
		if err := sink.Bool(data[0] != 0); err != nil {
			return 0, err
		}
		return 1, nil
	}
	codec, err := prim.Get(name)
	if err != nil {
		return 0, err
	}
	text, n, err := codec.EncodeJSON(data)
	if err != nil {
		return 0, err
	}
	if codec.Number() {
		if err := sink.Number(text); err != nil {
			return 0, err
		}
	} else if err := sink.String(text); err != nil {
		return 0, err
	}
	return n, nil
}

func indexPath(i uint32) string {
	return "[" + itoa(i) + "]"
}

func itoa(i uint32) string {
	if i == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}
