package digitview

import "github.com/calebcase/oops"

// Integer is the set of fixed width integer types a view can adapt.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// direction selects which end of the number position 0 maps to.
type direction int

const (
	forward direction = iota
	reverse
)

// View adapts a borrowed integer to behave like an indexable,
// iterable container of its digits in a radix. Index 0 is the most
// significant digit and Size()-1 the least significant.
//
// The view must not outlive the integer, and while it or any accessor
// derived from it is in use nothing else may mutate the integer.
type View[T Integer] struct {
	number *T
	radix  uint64
	digits int
}

// New returns a view sized to the current magnitude of the number.
// The number zero gets exactly 1 digit.
func New[T Integer](number *T, radix uint64) (*View[T], error) {
	if number == nil {
		return nil, oops.Trace(ErrNilNumber)
	}
	if radix < 2 {
		return nil, oops.Trace(ErrInvalidRadix)
	}

	return &View[T]{
		number: number,
		radix:  radix,
		digits: totalDigits(*number, radix),
	}, nil
}

// NewWithSize returns a view with an explicit number of digits,
// irrespective of the number's current magnitude. Digits beyond the
// magnitude read as zero and may be written.
//
// Setting the size smaller than the number's magnitude leaves the
// hidden high digits inaccessible while they continue to affect
// decoded low digits through the divide and modulo rule. That is a
// caller hazard, not a checked condition.
func NewWithSize[T Integer](number *T, radix uint64, digits int) (*View[T], error) {
	if number == nil {
		return nil, oops.Trace(ErrNilNumber)
	}
	if radix < 2 {
		return nil, oops.Trace(ErrInvalidRadix)
	}
	if digits < 0 {
		digits = 0
	}

	return &View[T]{
		number: number,
		radix:  radix,
		digits: digits,
	}, nil
}

// Size returns the number of digits in the view. It never changes
// after construction, even when writes grow or shrink the magnitude.
func (v *View[T]) Size() int {
	return v.digits
}

// Number returns the current value of the adapted integer.
func (v *View[T]) Number() T {
	return *v.number
}

// At returns a mutable accessor for the digit at index. Out of range
// indices clamp rather than fail.
func (v *View[T]) At(index int) Digit[T] {
	return Digit[T]{digit[T]{
		number: v.number,
		weight: v.weight(index, forward),
		radix:  v.radix,
	}}
}

// ConstAt returns a read only accessor for the digit at index.
func (v *View[T]) ConstAt(index int) ConstDigit[T] {
	return v.At(index).Const()
}

// Digits decodes every digit, most significant first.
func (v *View[T]) Digits() []T {
	ds := make([]T, v.digits)
	for i := range ds {
		ds[i] = v.At(i).Value()
	}

	return ds
}

// Const returns a read only view of the same number.
func (v *View[T]) Const() ConstView[T] {
	return ConstView[T]{view: v}
}

// clamp bounds a position to [0, digits]. The position digits is the
// one past the end sentinel.
func (v *View[T]) clamp(pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > v.digits {
		pos = v.digits
	}

	return pos
}

// weight returns the divisor isolating the digit at index for the
// given direction. The index is clamped to [0, digits]. Every digit
// read and write in the package funnels through this rule.
//
// The divisor is built by repeated multiplication to keep the
// arithmetic integral.
//
// N.B. This could be converted to a lookup table later for speed.
func (v *View[T]) weight(index int, dir direction) uint64 {
	index = v.clamp(index)

	w := uint64(1)
	if dir == forward {
		for i := index + 1; i < v.digits; i++ {
			w *= v.radix
		}
	} else {
		for i := 0; i < index; i++ {
			w *= v.radix
		}
	}

	return w
}

// magnitude returns the absolute value widened to uint64. Widening
// before negating keeps the minimum value of a signed type from
// overflowing.
func magnitude[T Integer](v T) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}

// totalDigits returns the number of radix digits in the number. Zero
// has exactly 1 digit.
func totalDigits[T Integer](number T, radix uint64) int {
	u := magnitude(number)
	d := 0

	for {
		d++
		u /= radix

		if u == 0 {
			break
		}
	}

	return d
}

// ConstView is a read only view of a number's digits: same positions
// and weights as View, no write path.
type ConstView[T Integer] struct {
	view *View[T]
}

// NewConst returns a read only view sized to the current magnitude of
// the number.
func NewConst[T Integer](number *T, radix uint64) (ConstView[T], error) {
	v, err := New(number, radix)
	if err != nil {
		return ConstView[T]{}, err
	}

	return v.Const(), nil
}

// Size returns the number of digits in the view.
func (v ConstView[T]) Size() int {
	return v.view.Size()
}

// Number returns the current value of the adapted integer.
func (v ConstView[T]) Number() T {
	return v.view.Number()
}

// At returns a read only accessor for the digit at index. Out of
// range indices clamp rather than fail.
func (v ConstView[T]) At(index int) ConstDigit[T] {
	return v.view.ConstAt(index)
}

// Digits decodes every digit, most significant first.
func (v ConstView[T]) Digits() []T {
	return v.view.Digits()
}

// Begin returns a read only forward iterator at the most significant
// digit.
func (v ConstView[T]) Begin() ConstIter[T] {
	return v.view.CBegin()
}

// End returns the read only forward sentinel.
func (v ConstView[T]) End() ConstIter[T] {
	return v.view.CEnd()
}

// RBegin returns a read only reverse iterator at the least
// significant digit.
func (v ConstView[T]) RBegin() ConstIter[T] {
	return v.view.CRBegin()
}

// REnd returns the read only reverse sentinel.
func (v ConstView[T]) REnd() ConstIter[T] {
	return v.view.CREnd()
}
