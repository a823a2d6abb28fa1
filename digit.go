package digitview

// digit is the shared accessor state: a borrow of the number plus the
// positional weight isolating one digit. It does not store the digit
// value; reads decode it from the number on demand.
type digit[T Integer] struct {
	number *T
	weight uint64
	radix  uint64
}

// Value decodes the digit. The result is always in [0, radix-1],
// independent of the number's sign.
func (d digit[T]) Value() T {
	return T(magnitude(*d.number) / d.weight % d.radix)
}

// Digit is a read write accessor for one digit position. It fills the
// role a mutable element reference has in an ordinary container.
type Digit[T Integer] struct {
	digit[T]
}

// ConstDigit is a read only accessor for one digit position. It has
// no write methods; read only ness is a property of the type, not a
// checked flag.
type ConstDigit[T Integer] struct {
	digit[T]
}

// Const widens to a read only accessor. There is no narrowing in the
// other direction.
func (d Digit[T]) Const() ConstDigit[T] {
	return ConstDigit[T]{d.digit}
}

// Set replaces the digit, mutating the number in place. The value is
// reduced modulo radix. Every other digit keeps its value, and the
// sign of the number survives as long as the magnitude stays nonzero.
// An all zero magnitude is plain zero; there is no negative zero.
func (d Digit[T]) Set(value T) {
	negative := *d.number < 0

	mag := magnitude(*d.number)
	mag -= mag / d.weight % d.radix * d.weight
	mag += uint64(value%T(d.radix)) * d.weight

	if negative {
		*d.number = -T(mag)
	} else {
		*d.number = T(mag)
	}
}

// Inc adds one to the digit and returns the new value, wrapping
// modulo radix.
func (d Digit[T]) Inc() T {
	d.Set(d.Value() + 1)

	return d.Value()
}

// Dec subtracts one from the digit and returns the new value.
func (d Digit[T]) Dec() T {
	d.Set(d.Value() - 1)

	return d.Value()
}

// PostInc adds one to the digit and returns the prior value.
func (d Digit[T]) PostInc() T {
	prev := d.Value()
	d.Set(prev + 1)

	return prev
}

// PostDec subtracts one from the digit and returns the prior value.
func (d Digit[T]) PostDec() T {
	prev := d.Value()
	d.Set(prev - 1)

	return prev
}

// Equal reports whether both digits decode to the same value.
func (d Digit[T]) Equal(o ConstDigit[T]) bool {
	return d.Value() == o.Value()
}

// Less reports whether this digit decodes below the other.
func (d Digit[T]) Less(o ConstDigit[T]) bool {
	return d.Value() < o.Value()
}

// Swap exchanges the two digit values, not the accessors. Both
// accessors must come from views over the same number and radix;
// swapping across numbers is caller error and goes unchecked.
func (d Digit[T]) Swap(o Digit[T]) {
	d1 := d.Value()
	d2 := o.Value()

	d.Set(d2)
	o.Set(d1)
}

// Equal reports whether both digits decode to the same value.
func (d ConstDigit[T]) Equal(o ConstDigit[T]) bool {
	return d.Value() == o.Value()
}

// Less reports whether this digit decodes below the other.
func (d ConstDigit[T]) Less(o ConstDigit[T]) bool {
	return d.Value() < o.Value()
}
