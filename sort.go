package digitview

import "sort"

// View satisfies sort.Interface so generic ordering algorithms run
// directly on the digits of a number. Comparison and exchange go
// through the accessors only; the algorithms never see the weight
// rule.

// Len returns the number of digits.
func (v *View[T]) Len() int {
	return v.digits
}

// Less compares the decoded digits at i and j.
func (v *View[T]) Less(i, j int) bool {
	return v.At(i).Less(v.ConstAt(j))
}

// Swap exchanges the digit values at i and j.
func (v *View[T]) Swap(i, j int) {
	v.At(i).Swap(v.At(j))
}

// Sort orders the digits ascending in place. On a negative number the
// magnitude digits are ordered and the sign is kept.
func Sort[T Integer](v *View[T]) {
	sort.Stable(v)
}

// Reverse reverses the digit order in place.
func Reverse[T Integer](v *View[T]) {
	for i, j := 0, v.digits-1; i < j; i, j = i+1, j-1 {
		v.At(i).Swap(v.At(j))
	}
}
