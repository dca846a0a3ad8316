package xerr

import "errors"

// The fixed catalog of user-facing messages from spec §6.4. The
// primitives and the abi engines return these values rather than
// ad-hoc text (package varint wraps them with Errorf, and Path keeps
// them on the %w chain when it adds field/index context), so that
// callers can errors.Is against a stable set.
var (
	ErrReadPastEnd          = errors.New("read past end")
	ErrInvalidStringSize    = errors.New("invalid string size")
	ErrOutOfRange           = errors.New("number is out of range")
	ErrBadNumberFormat      = errors.New("number is out of range or has bad format")
	ErrExpectedNonNegative  = errors.New("expected non-negative number")
	ErrExpectedNumOrBool    = errors.New("expected number or boolean")
	ErrOddHexDigits         = errors.New("odd number of hex digits")
	ErrExpectedHexString    = errors.New("expected hex string")
	ErrBadHexLength         = errors.New("hex string has incorrect length")
	ErrExpectedObject       = errors.New("expected object")
	ErrExpectedArray        = errors.New("expected array")
	ErrUnknownFieldNative   = errors.New("unknown field")
	ErrAbiRecursionLimit    = errors.New("abi recursion limit reached")
	ErrRecursionLimit       = errors.New("recursion limit reached")
	ErrStructMissingName    = errors.New("abi has a struct with a missing name")
	ErrTypeMissingName      = errors.New("abi has a type with a missing name")
	ErrNoNesting            = errors.New("optional and array don't support nesting")
	ErrExtraData            = errors.New("extra data")
)

// ExpectedStringContaining builds the "expected string containing <T>"
// family of messages (§6.4), one per primitive domain.
func ExpectedStringContaining(t string) error {
	return errors.New("expected string containing " + t)
}

// ExpectedField builds `expected field "<name>"`.
func ExpectedField(name string) error {
	return errors.New(`expected field "` + name + `"`)
}

// UnexpectedField builds `unexpected field "<name>"`.
func UnexpectedField(name string) error {
	return errors.New(`unexpected field "` + name + `"`)
}

// UnknownType builds `unknown type "<name>"`.
func UnknownType(name string) error {
	return errors.New(`unknown type "` + name + `"`)
}

// RedefinesType builds `abi redefines type "<name>"`.
func RedefinesType(name string) error {
	return errors.New(`abi redefines type "` + name + `"`)
}

// NotAStruct builds `abi type "<name>" is not a struct`.
func NotAStruct(name string) error {
	return errors.New(`abi type "` + name + `" is not a struct`)
}
