package varint

import "github.com/indexsupply/chainabi/internal/xerr"

var (
	errReadPastEnd = xerr.ErrReadPastEnd
	errOutOfRange  = xerr.ErrOutOfRange
)
