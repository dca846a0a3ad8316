// Shared error wrapping and the fixed catalog of user-facing messages
// the codec raises. Errorf is adapted from isxerrors.Errorf; Path adds
// breadcrumb context on the same %w chain.
package xerr

import "golang.org/x/xerrors"

// Errorf wraps xerrors.Errorf but returns nil if none of args is an
// error, so call sites can write Errorf(fmt, err) without an extra
// `if err != nil` when err might legitimately be nil.
func Errorf(format string, args ...interface{}) error {
	for i := range args {
		if _, ok := args[i].(error); ok {
			return xerrors.Errorf(format, args...)
		}
	}
	return nil
}

// Path wraps err with a navigation breadcrumb assembled by the
// json-to-binary engine (Type.field.field[i]) per the error-handling
// design: the outer catch augments the message, it does not replace
// the underlying error kind.
func Path(path string, err error) error {
	if err == nil {
		return nil
	}
	if path == "" {
		return err
	}
	return xerrors.Errorf("%s: %w", path, err)
}
