package prim

import (
	"strconv"

	"github.com/indexsupply/chainabi/internal/xerr"
	"github.com/indexsupply/chainabi/varint"
)

// varintCodec wraps package varint's LEB128 codec so it can sit in the
// same registry as the fixed-width primitives.
type varintCodec struct {
	signed bool
}

func (c varintCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if c.signed {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, xerr.ErrBadNumberFormat
		}
		return varint.PutVarint32(dst, int32(v)), nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, xerr.ErrBadNumberFormat
	}
	return varint.PutUvarint32(dst, uint32(v)), nil
}

// Number is always true: varint32/varuint32 are 32-bit values, narrow
// enough for a bare JSON number.
func (c varintCodec) Number() bool { return true }

func (c varintCodec) EncodeJSON(src []byte) (string, int, error) {
	if c.signed {
		v, n, err := varint.Varint32(src)
		if err != nil {
			return "", 0, err
		}
		return strconv.FormatInt(int64(v), 10), n, nil
	}
	v, n, err := varint.Uvarint32(src)
	if err != nil {
		return "", 0, err
	}
	return strconv.FormatUint(uint64(v), 10), n, nil
}
