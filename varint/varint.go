// LEB128 variable-length integer encoding/decoding.
//
// Unsigned values are emitted 7 bits at a time, low group first, with
// the continuation bit (0x80) set on every group but the last. Signed
// values are zig-zag mapped onto the unsigned encoding so that small
// magnitude negative numbers stay short.
package varint

import "github.com/indexsupply/chainabi/internal/xerr"

// PutUvarint32 appends the LEB128 encoding of v to b and returns the
// extended slice. Mirrors bint.Encode's slice-in/slice-out shape.
func PutUvarint32(b []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b = append(b, c)
		if v == 0 {
			return b
		}
	}
}

// PutVarint32 zig-zag encodes v and appends its LEB128 form to b.
func PutVarint32(b []byte, v int32) []byte {
	return PutUvarint32(b, uint32((v<<1)^(v>>31)))
}

// Uvarint32 decodes a LEB128 unsigned 32-bit integer from the front of
// b, returning the value and the number of bytes consumed. An error is
// returned if b is exhausted before a terminating group is found.
func Uvarint32(b []byte) (uint32, int, error) {
	var (
		result uint32
		shift  uint
	)
	for i := 0; ; i++ {
		if i >= len(b) {
			return 0, 0, xerr.Errorf("varint: %w", errReadPastEnd)
		}
		if shift >= 32 {
			return 0, 0, xerr.Errorf("varint: %w", errOutOfRange)
		}
		c := b[i]
		result |= uint32(c&0x7f) << shift
		shift += 7
		if c&0x80 == 0 {
			return result, i + 1, nil
		}
	}
}

// Varint32 decodes a zig-zag LEB128 signed 32-bit integer.
func Varint32(b []byte) (int32, int, error) {
	u, n, err := Uvarint32(b)
	if err != nil {
		return 0, 0, err
	}
	return int32(u>>1) ^ -int32(u&1), n, nil
}
