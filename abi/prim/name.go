package prim

import (
	"strings"

	"github.com/indexsupply/chainabi/internal/xerr"
)

const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

// nameCodec packs an EOSIO-style account/action name: up to 13
// characters from a 32-symbol alphabet, 5 bits each except the last
// character which only gets 4, into a little-endian uint64.
type nameCodec struct{}

func charToSymbol(c byte) (uint64, error) {
	switch {
	case c == '.':
		return 0, nil
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, nil
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, nil
	default:
		return 0, xerr.ExpectedStringContaining("name")
	}
}

func (nameCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if len(s) > 13 {
		return nil, xerr.ExpectedStringContaining("name")
	}
	var n uint64
	for i := 0; i < 13; i++ {
		var sym uint64
		if i < len(s) {
			var err error
			sym, err = charToSymbol(s[i])
			if err != nil {
				return nil, err
			}
		}
		if i < 12 {
			sym &= 0x1f
			sym <<= 64 - 5*uint(i+1)
		} else {
			sym &= 0x0f
		}
		n |= sym
	}
	return appendLE(dst, n, 8), nil
}

// Number is false: a name is a quoted string, never a bare number.
func (nameCodec) Number() bool { return false }

func (nameCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 8 {
		return "", 0, xerr.ErrReadPastEnd
	}
	n := readLE(src[:8])
	var buf [13]byte
	tmp := n
	for i := 0; i <= 12; i++ {
		var idx uint64
		if i == 0 {
			idx = tmp & 0x0f
			tmp >>= 4
		} else {
			idx = tmp & 0x1f
			tmp >>= 5
		}
		buf[12-i] = nameCharmap[idx]
	}
	return strings.TrimRight(string(buf[:]), "."), 8, nil
}
