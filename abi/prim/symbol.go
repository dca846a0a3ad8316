package prim

import (
	"strconv"
	"strings"

	"github.com/indexsupply/chainabi/internal/xerr"
)

// symbolCodeCodec packs up to 7 uppercase ASCII letters into a
// little-endian uint64, first character in the lowest byte, unused
// high bytes zero.
type symbolCodeCodec struct{}

func validateSymbolCode(s string) error {
	if len(s) == 0 || len(s) > 7 {
		return xerr.ExpectedStringContaining("symbol_code")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return xerr.ExpectedStringContaining("symbol_code")
		}
	}
	return nil
}

func (symbolCodeCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if err := validateSymbolCode(s); err != nil {
		return nil, err
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		n |= uint64(s[i]) << (8 * i)
	}
	return appendLE(dst, n, 8), nil
}

// Number is false: a symbol code is a quoted string.
func (symbolCodeCodec) Number() bool { return false }

func (symbolCodeCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 8 {
		return "", 0, xerr.ErrReadPastEnd
	}
	var buf [7]byte
	n := 0
	for i := 0; i < 7; i++ {
		c := src[i]
		if c == 0 {
			break
		}
		buf[i] = c
		n++
	}
	return string(buf[:n]), 8, nil
}

// symbolCodec packs a symbol as a single little-endian uint64:
// (symbol_code << 8) | precision, exactly the way string_to_symbol
// builds it -- not a separate precision byte plus an 8-byte code field.
// Its JSON text is "<precision>,<CODE>".
type symbolCodec struct{}

func (symbolCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return nil, xerr.ExpectedStringContaining("symbol")
	}
	prec, err := strconv.ParseUint(s[:comma], 10, 8)
	if err != nil {
		return nil, xerr.ErrExpectedNonNegative
	}
	code := s[comma+1:]
	if err := validateSymbolCode(code); err != nil {
		return nil, err
	}
	var codeVal uint64
	for i := 0; i < len(code); i++ {
		codeVal |= uint64(code[i]) << (8 * i)
	}
	word := (codeVal << 8) | prec
	return appendLE(dst, word, 8), nil
}

// Number is false: "<precision>,<CODE>" is a quoted string.
func (symbolCodec) Number() bool { return false }

func (symbolCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 8 {
		return "", 0, xerr.ErrReadPastEnd
	}
	word := readLE(src[:8])
	prec := word & 0xff
	codeVal := word >> 8
	var buf [7]byte
	n := 0
	for i := 0; i < 7; i++ {
		c := byte(codeVal >> (8 * i))
		if c == 0 {
			break
		}
		buf[i] = c
		n++
	}
	return strconv.FormatUint(prec, 10) + "," + string(buf[:n]), 8, nil
}

// assetCodec packs a signed little-endian int64 amount followed by a
// symbol (precision + code), as the JSON text "<amount> <CODE>" with
// the amount rendered at the symbol's own decimal precision.
type assetCodec struct{}

func (assetCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	space := strings.IndexByte(s, ' ')
	if space < 0 {
		return nil, xerr.ExpectedStringContaining("asset")
	}
	amountText := s[:space]
	code := s[space+1:]
	if err := validateSymbolCode(code); err != nil {
		return nil, err
	}

	neg := strings.HasPrefix(amountText, "-")
	digits := strings.TrimPrefix(amountText, "-")
	whole, frac, hasFrac := strings.Cut(digits, ".")
	precision := 0
	if hasFrac {
		precision = len(frac)
	}

	amount, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return nil, xerr.ErrBadNumberFormat
	}
	if neg {
		amount = -amount
	}

	dst = appendLE(dst, uint64(amount), 8)
	return symbolCodec{}.DecodeJSON(dst, strconv.Itoa(precision)+","+code)
}

// Number is false: "<amount> <CODE>" is a quoted string.
func (assetCodec) Number() bool { return false }

func (assetCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 16 {
		return "", 0, xerr.ErrReadPastEnd
	}
	amount := int64(readLE(src[:8]))
	symText, n, err := symbolCodec{}.EncodeJSON(src[8:])
	if err != nil {
		return "", 0, err
	}
	precText, code, _ := strings.Cut(symText, ",")
	precision, err := strconv.Atoi(precText)
	if err != nil {
		return "", 0, err
	}

	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	for len(digits) <= precision {
		digits = "0" + digits
	}
	var amountText string
	if precision == 0 {
		amountText = digits
	} else {
		split := len(digits) - precision
		amountText = digits[:split] + "." + digits[split:]
	}
	if neg {
		amountText = "-" + amountText
	}
	return amountText + " " + code, 8 + n, nil
}
