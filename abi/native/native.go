// Package native is a second, independent codec for the same wire
// format package abi implements: instead of walking a resolved
// schema.Contract, it walks a Go struct's fields directly via reflect,
// guided by `abi:"name,prim"` tags. It exists because the ABI
// description itself -- the document schema.Resolve consumes -- is
// also transmitted on the wire in its own binary encoding, and there
// is no schema.Contract available yet to decode it with; a struct tag
// is all schema.Descriptor has to go on.
//
// Grounded on genabi/gen.go's Descriptor/Field struct walking, moved
// from code-generation time to call time via reflect.
package native

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/indexsupply/chainabi/abi/prim"
	"github.com/indexsupply/chainabi/internal/xerr"
)

// Marshal encodes v, a struct (or pointer to one) tagged with
// `abi:"name,prim"`, into its binary ABI form.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, xerr.ErrExpectedObject
		}
		rv = rv.Elem()
	}
	return marshalValue(rv, "")
}

// Unmarshal decodes data into v, a pointer to a struct tagged with
// `abi:"name,prim"`.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return xerr.ErrExpectedObject
	}
	n, err := unmarshalValue(data, rv.Elem(), "")
	if err != nil {
		return err
	}
	if n != len(data) {
		return xerr.ErrExtraData
	}
	return nil
}

type tag struct {
	name string
	prim string
}

func parseTag(f reflect.StructField) (tag, bool) {
	raw, ok := f.Tag.Lookup("abi")
	if !ok || raw == "-" {
		return tag{}, false
	}
	name, prim, found := cut(raw, ',')
	if !found {
		name, prim = raw, ""
	}
	return tag{name: name, prim: prim}, true
}

func cut(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func marshalValue(rv reflect.Value, primName string) ([]byte, error) {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return []byte{0}, nil
		}
		inner, err := marshalValue(rv.Elem(), primName)
		if err != nil {
			return nil, err
		}
		return append([]byte{1}, inner...), nil

	case reflect.Slice:
		var elems []byte
		for i := 0; i < rv.Len(); i++ {
			b, err := marshalValue(rv.Index(i), primName)
			if err != nil {
				return nil, xerr.Path(strconv.Itoa(i), err)
			}
			elems = append(elems, b...)
		}
		codec, err := prim.Get("varuint32")
		if err != nil {
			return nil, err
		}
		out, err := codec.DecodeJSON(nil, strconv.Itoa(rv.Len()))
		if err != nil {
			return nil, err
		}
		return append(out, elems...), nil

	case reflect.Struct:
		var buf []byte
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			t, ok := parseTag(f)
			if !ok {
				continue
			}
			b, err := marshalValue(rv.Field(i), t.prim)
			if err != nil {
				return nil, xerr.Path(t.name, err)
			}
			buf = append(buf, b...)
		}
		return buf, nil

	case reflect.Bool:
		if rv.Bool() {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case reflect.String:
		codec, err := prim.Get(primName)
		if err != nil {
			return nil, err
		}
		return codec.DecodeJSON(nil, rv.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		codec, err := prim.Get(primName)
		if err != nil {
			return nil, err
		}
		return codec.DecodeJSON(nil, strconv.FormatInt(rv.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		codec, err := prim.Get(primName)
		if err != nil {
			return nil, err
		}
		return codec.DecodeJSON(nil, strconv.FormatUint(rv.Uint(), 10))

	default:
		return nil, errors.New("native: marshal: unsupported kind " + rv.Kind().String())
	}
}

func unmarshalValue(data []byte, rv reflect.Value, primName string) (int, error) {
	switch rv.Kind() {
	case reflect.Ptr:
		if len(data) < 1 {
			return 0, xerr.ErrReadPastEnd
		}
		if data[0] == 0 {
			rv.Set(reflect.Zero(rv.Type()))
			return 1, nil
		}
		rv.Set(reflect.New(rv.Type().Elem()))
		n, err := unmarshalValue(data[1:], rv.Elem(), primName)
		if err != nil {
			return 0, err
		}
		return 1 + n, nil

	case reflect.Slice:
		codec, err := prim.Get("varuint32")
		if err != nil {
			return 0, err
		}
		countText, prefix, err := codec.EncodeJSON(data)
		if err != nil {
			return 0, err
		}
		count, err := strconv.ParseUint(countText, 10, 32)
		if err != nil {
			return 0, xerr.ErrBadNumberFormat
		}
		rv.Set(reflect.MakeSlice(rv.Type(), int(count), int(count)))
		consumed := prefix
		for i := 0; i < int(count); i++ {
			n, err := unmarshalValue(data[consumed:], rv.Index(i), primName)
			if err != nil {
				return 0, xerr.Path(strconv.Itoa(i), err)
			}
			consumed += n
		}
		return consumed, nil

	case reflect.Struct:
		consumed := 0
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			t, ok := parseTag(f)
			if !ok {
				continue
			}
			n, err := unmarshalValue(data[consumed:], rv.Field(i), t.prim)
			if err != nil {
				return 0, xerr.Path(t.name, err)
			}
			consumed += n
		}
		return consumed, nil

	case reflect.Bool:
		if len(data) < 1 {
			return 0, xerr.ErrReadPastEnd
		}
		rv.SetBool(data[0] != 0)
		return 1, nil

	case reflect.String:
		codec, err := prim.Get(primName)
		if err != nil {
			return 0, err
		}
		text, n, err := codec.EncodeJSON(data)
		if err != nil {
			return 0, err
		}
		rv.SetString(text)
		return n, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		codec, err := prim.Get(primName)
		if err != nil {
			return 0, err
		}
		text, n, err := codec.EncodeJSON(data)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, xerr.ErrBadNumberFormat
		}
		rv.SetInt(v)
		return n, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		codec, err := prim.Get(primName)
		if err != nil {
			return 0, err
		}
		text, n, err := codec.EncodeJSON(data)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return 0, xerr.ErrBadNumberFormat
		}
		rv.SetUint(v)
		return n, nil

	default:
		return 0, errors.New("native: unmarshal: unsupported kind " + rv.Kind().String())
	}
}
