package prim

import (
	"strconv"

	"github.com/indexsupply/chainabi/internal/xerr"
)

// fixedIntCodec packs a size-byte little-endian integer, signed or
// unsigned. ABI integers are little-endian throughout, the opposite
// byte order from bint's big-endian uint64 packing -- the two packages
// solve the same shape of problem for opposite wire formats.
type fixedIntCodec struct {
	size   int
	signed bool
}

func (c fixedIntCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if c.signed {
		v, err := strconv.ParseInt(s, 10, c.size*8)
		if err != nil {
			return nil, xerr.ErrBadNumberFormat
		}
		return appendLE(dst, uint64(v), c.size), nil
	}
	v, err := strconv.ParseUint(s, 10, c.size*8)
	if err != nil {
		return nil, xerr.ErrBadNumberFormat
	}
	return appendLE(dst, v, c.size), nil
}

// Number reports true for the 8/16/32-bit widths (§6.3's "narrower
// integers emit as JSON numbers"); the 64-bit widths stay quoted, since
// a uint64 can exceed what a JSON number can represent exactly.
func (c fixedIntCodec) Number() bool { return c.size <= 4 }

func (c fixedIntCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < c.size {
		return "", 0, xerr.ErrReadPastEnd
	}
	v := readLE(src[:c.size])
	if c.signed {
		return strconv.FormatInt(signExtend(v, c.size), 10), c.size, nil
	}
	return strconv.FormatUint(v, 10), c.size, nil
}

// appendLE appends n's low size bytes, little-endian, to dst.
func appendLE(dst []byte, n uint64, size int) []byte {
	for i := 0; i < size; i++ {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst
}

// readLE decodes a little-endian unsigned integer from b, which must be
// no more than 8 bytes.
func readLE(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// signExtend interprets the low size bytes of v as a two's-complement
// signed integer.
func signExtend(v uint64, size int) int64 {
	bits := uint(size * 8)
	if bits == 64 {
		return int64(v)
	}
	signBit := uint64(1) << (bits - 1)
	if v&signBit != 0 {
		return int64(v | ^(signBit<<1 - 1))
	}
	return int64(v)
}
