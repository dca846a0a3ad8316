package prim

import (
	"github.com/btcsuite/btcutil/base58"

	"github.com/indexsupply/chainabi/internal/xerr"
)

// publicKeyCodec, privateKeyCodec, and signatureCodec all pack a
// one-byte curve tag (0 for K1, 1 for R1) followed by the curve's fixed
// payload. The JSON side is a checksummed base58 string -- the same
// shape of encoding the reference implementation uses for keys,
// produced here with btcutil's CheckEncode/CheckDecode rather than a
// hand-rolled checksum.
type publicKeyCodec struct{}

const pubKeyPayloadLen = 33

func (publicKeyCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	data, version, err := base58.CheckDecode(s)
	if err != nil || len(data) != pubKeyPayloadLen {
		return nil, xerr.ExpectedStringContaining("public_key")
	}
	dst = append(dst, version)
	return append(dst, data...), nil
}

// Number is false: keys are quoted base58 strings.
func (publicKeyCodec) Number() bool { return false }

func (publicKeyCodec) EncodeJSON(src []byte) (string, int, error) {
	n := 1 + pubKeyPayloadLen
	if len(src) < n {
		return "", 0, xerr.ErrReadPastEnd
	}
	return base58.CheckEncode(src[1:n], src[0]), n, nil
}

type privateKeyCodec struct{}

const privKeyPayloadLen = 32

func (privateKeyCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	data, version, err := base58.CheckDecode(s)
	if err != nil || len(data) != privKeyPayloadLen {
		return nil, xerr.ExpectedStringContaining("private_key")
	}
	dst = append(dst, version)
	return append(dst, data...), nil
}

// Number is false: keys are quoted base58 strings.
func (privateKeyCodec) Number() bool { return false }

func (privateKeyCodec) EncodeJSON(src []byte) (string, int, error) {
	n := 1 + privKeyPayloadLen
	if len(src) < n {
		return "", 0, xerr.ErrReadPastEnd
	}
	return base58.CheckEncode(src[1:n], src[0]), n, nil
}

type signatureCodec struct{}

const sigPayloadLen = 65

func (signatureCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	data, version, err := base58.CheckDecode(s)
	if err != nil || len(data) != sigPayloadLen {
		return nil, xerr.ExpectedStringContaining("signature")
	}
	dst = append(dst, version)
	return append(dst, data...), nil
}

// Number is false: signatures are quoted base58 strings.
func (signatureCodec) Number() bool { return false }

func (signatureCodec) EncodeJSON(src []byte) (string, int, error) {
	n := 1 + sigPayloadLen
	if len(src) < n {
		return "", 0, xerr.ErrReadPastEnd
	}
	return base58.CheckEncode(src[1:n], src[0]), n, nil
}
