package digitview

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("digitview")

// Construction is the only fallible operation in the package.
var (
	ErrInvalidRadix = Error.New("invalid radix")
	ErrNilNumber    = Error.New("nil number")
)
