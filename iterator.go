package digitview

// Iter is a random access cursor over the digits of a view, yielding
// mutable accessors. Position arithmetic clamps to [0, Size()]; the
// position Size() is the one past the end sentinel in both traversal
// directions. Iterators have value semantics: arithmetic returns a
// new iterator and never signals an error.
type Iter[T Integer] struct {
	view *View[T]
	pos  int
	dir  direction
}

// Begin returns a forward iterator at the most significant digit.
func (v *View[T]) Begin() Iter[T] {
	return Iter[T]{view: v, pos: 0, dir: forward}
}

// End returns the forward sentinel.
func (v *View[T]) End() Iter[T] {
	return Iter[T]{view: v, pos: v.digits, dir: forward}
}

// RBegin returns a reverse iterator at the least significant digit.
// Incrementing walks toward the most significant digit.
func (v *View[T]) RBegin() Iter[T] {
	return Iter[T]{view: v, pos: 0, dir: reverse}
}

// REnd returns the reverse sentinel.
func (v *View[T]) REnd() Iter[T] {
	return Iter[T]{view: v, pos: v.digits, dir: reverse}
}

// CBegin returns a read only forward iterator at the most significant
// digit.
func (v *View[T]) CBegin() ConstIter[T] {
	return v.Begin().Const()
}

// CEnd returns the read only forward sentinel.
func (v *View[T]) CEnd() ConstIter[T] {
	return v.End().Const()
}

// CRBegin returns a read only reverse iterator at the least
// significant digit.
func (v *View[T]) CRBegin() ConstIter[T] {
	return v.RBegin().Const()
}

// CREnd returns the read only reverse sentinel.
func (v *View[T]) CREnd() ConstIter[T] {
	return v.REnd().Const()
}

// Next returns the iterator advanced one position.
func (it Iter[T]) Next() Iter[T] {
	return it.Add(1)
}

// Prev returns the iterator moved back one position.
func (it Iter[T]) Prev() Iter[T] {
	return it.Sub(1)
}

// Add returns the iterator advanced n positions, clamped.
func (it Iter[T]) Add(n int) Iter[T] {
	it.pos = it.view.clamp(it.pos + n)

	return it
}

// Sub returns the iterator moved back n positions, clamped.
func (it Iter[T]) Sub(n int) Iter[T] {
	return it.Add(-n)
}

// Distance returns how many positions this iterator is past the
// other.
func (it Iter[T]) Distance(o Iter[T]) int {
	return it.pos - o.pos
}

// Equal reports whether both iterators are at the same position.
func (it Iter[T]) Equal(o Iter[T]) bool {
	return it.pos == o.pos
}

// Less reports whether this iterator is before the other.
func (it Iter[T]) Less(o Iter[T]) bool {
	return it.pos < o.pos
}

// Done reports whether the iterator is at the sentinel.
func (it Iter[T]) Done() bool {
	return it.pos >= it.view.digits
}

// Digit dereferences to the accessor at the current position. The
// weight comes from the view's single rule for the iterator's
// direction; reverse traversal never touches a reversed buffer.
func (it Iter[T]) Digit() Digit[T] {
	return Digit[T]{digit[T]{
		number: it.view.number,
		weight: it.view.weight(it.pos, it.dir),
		radix:  it.view.radix,
	}}
}

// Const widens to a read only iterator.
func (it Iter[T]) Const() ConstIter[T] {
	return ConstIter[T]{it: it}
}

// ConstIter mirrors Iter with read only accessors.
type ConstIter[T Integer] struct {
	it Iter[T]
}

// Next returns the iterator advanced one position.
func (it ConstIter[T]) Next() ConstIter[T] {
	return ConstIter[T]{it: it.it.Next()}
}

// Prev returns the iterator moved back one position.
func (it ConstIter[T]) Prev() ConstIter[T] {
	return ConstIter[T]{it: it.it.Prev()}
}

// Add returns the iterator advanced n positions, clamped.
func (it ConstIter[T]) Add(n int) ConstIter[T] {
	return ConstIter[T]{it: it.it.Add(n)}
}

// Sub returns the iterator moved back n positions, clamped.
func (it ConstIter[T]) Sub(n int) ConstIter[T] {
	return ConstIter[T]{it: it.it.Sub(n)}
}

// Distance returns how many positions this iterator is past the
// other.
func (it ConstIter[T]) Distance(o ConstIter[T]) int {
	return it.it.Distance(o.it)
}

// Equal reports whether both iterators are at the same position.
func (it ConstIter[T]) Equal(o ConstIter[T]) bool {
	return it.it.Equal(o.it)
}

// Less reports whether this iterator is before the other.
func (it ConstIter[T]) Less(o ConstIter[T]) bool {
	return it.it.Less(o.it)
}

// Done reports whether the iterator is at the sentinel.
func (it ConstIter[T]) Done() bool {
	return it.it.Done()
}

// Digit dereferences to the read only accessor at the current
// position.
func (it ConstIter[T]) Digit() ConstDigit[T] {
	return it.it.Digit().Const()
}
