package prim

import (
	"encoding/hex"

	"github.com/indexsupply/chainabi/internal/xerr"
)

// checksumCodec packs a fixed-size hash blob, hex-encoded on the JSON
// side with no length prefix on the wire.
type checksumCodec struct {
	size int
}

func (c checksumCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	if len(s) != c.size*2 {
		return nil, xerr.ErrBadHexLength
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, xerr.ErrExpectedHexString
	}
	return append(dst, b...), nil
}

func (c checksumCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < c.size {
		return "", 0, xerr.ErrReadPastEnd
	}
	return hex.EncodeToString(src[:c.size]), c.size, nil
}

// Number is false: checksums round-trip as lowercase hex strings.
func (c checksumCodec) Number() bool { return false }
