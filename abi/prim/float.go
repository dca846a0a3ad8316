package prim

import (
	"encoding/hex"
	"math"
	"strconv"

	"github.com/indexsupply/chainabi/internal/xerr"
)

type float32Codec struct{}

func (float32Codec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, xerr.ErrBadNumberFormat
	}
	return appendLE(dst, uint64(math.Float32bits(float32(v))), 4), nil
}

func (float32Codec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 4 {
		return "", 0, xerr.ErrReadPastEnd
	}
	bits := uint32(readLE(src[:4]))
	v := math.Float32frombits(bits)
	return strconv.FormatFloat(float64(v), 'g', -1, 32), 4, nil
}

// Number is true: float32 emits as a bare JSON number.
func (float32Codec) Number() bool { return true }

type float64Codec struct{}

func (float64Codec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, xerr.ErrBadNumberFormat
	}
	return appendLE(dst, math.Float64bits(v), 8), nil
}

func (float64Codec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 8 {
		return "", 0, xerr.ErrReadPastEnd
	}
	bits := readLE(src[:8])
	v := math.Float64frombits(bits)
	return strconv.FormatFloat(v, 'g', -1, 64), 8, nil
}

// Number is true: float64 emits as a bare JSON number.
func (float64Codec) Number() bool { return true }

// float128Codec has no native Go arithmetic type to decode into, so --
// same as the reference implementation -- it round-trips the 16 raw
// bytes as a hex string rather than parsing them as a number.
type float128Codec struct{}

func (float128Codec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if len(s) != 32 {
		return nil, xerr.ErrBadHexLength
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, xerr.ErrExpectedHexString
	}
	return append(dst, b...), nil
}

func (float128Codec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 16 {
		return "", 0, xerr.ErrReadPastEnd
	}
	return hex.EncodeToString(src[:16]), 16, nil
}

// Number is false: float128 round-trips as a lowercase hex string, the
// same quoted shape as the checksum types.
func (float128Codec) Number() bool { return false }
