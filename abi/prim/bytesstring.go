package prim

import (
	"encoding/hex"

	"github.com/indexsupply/chainabi/internal/xerr"
	"github.com/indexsupply/chainabi/varint"
)

// bytesCodec packs a varuint32 length prefix followed by raw bytes; its
// JSON text is the hex encoding of those bytes.
type bytesCodec struct{}

func (bytesCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, xerr.ErrOddHexDigits
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, xerr.ErrExpectedHexString
	}
	dst = varint.PutUvarint32(dst, uint32(len(b)))
	return append(dst, b...), nil
}

// Number is false: bytes round-trip as a hex string.
func (bytesCodec) Number() bool { return false }

func (bytesCodec) EncodeJSON(src []byte) (string, int, error) {
	n, prefix, err := varint.Uvarint32(src)
	if err != nil {
		return "", 0, err
	}
	end := prefix + int(n)
	if end > len(src) {
		return "", 0, xerr.ErrInvalidStringSize
	}
	return hex.EncodeToString(src[prefix:end]), end, nil
}

// stringCodec packs a varuint32 length prefix followed by raw UTF-8
// bytes; its JSON text is the string itself, unescaped.
type stringCodec struct{}

func (stringCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	dst = varint.PutUvarint32(dst, uint32(len(s)))
	return append(dst, s...), nil
}

// Number is false: string is always a quoted JSON string.
func (stringCodec) Number() bool { return false }

func (stringCodec) EncodeJSON(src []byte) (string, int, error) {
	n, prefix, err := varint.Uvarint32(src)
	if err != nil {
		return "", 0, err
	}
	end := prefix + int(n)
	if end > len(src) {
		return "", 0, xerr.ErrInvalidStringSize
	}
	return string(src[prefix:end]), end, nil
}
