// Package digitview adapts an integer to look like a standard
// container holding its digits in a particular radix.
//
// No digit buffer is materialized: the view borrows the caller's
// integer and every digit read decodes it from the current value on
// demand, while every digit write re-encodes the integer in place,
// preserving the sign and all other digits.
//
// Digits are numbered left to right. The most significant digit is at
// index 0 and the least significant at Size()-1. A digit at index i is
// isolated by its positional weight:
//
//  digit = (|number| / weight) % radix
//
// where the weight depends on the traversal direction:
//
//  | Direction | Index | Weight              |
//  |-----------|-------|---------------------|
//  | forward   | i     | radix^(size - 1 - i) |
//  | reverse   | i     | radix^i              |
//  | either    | size  | sentinel, never read |
//
// Weights are built by repeated integer multiplication; no floating
// point is involved anywhere.
//
// Indexing and iterator arithmetic are total: out of range indices and
// offsets clamp to [0, Size()] instead of failing, and a digit written
// outside [0, radix-1] is reduced modulo radix. The only fallible
// operation in the package is view construction, which rejects a radix
// below two and a nil number.
//
// Views come in a mutable and a read only flavor, as do the digit
// accessors and iterators. A mutable accessor widens to a read only
// one, never the reverse, and the read only types simply have no write
// methods. A mutable view additionally satisfies sort.Interface, so
// generic ordering algorithms run directly on the digits of a number:
//
//  n := 54321
//  v, _ := digitview.New(&n, 10)
//  sort.Stable(v) // n == 12345
//
// The view holds no resources beyond the borrow. It must not outlive
// the integer, and while a mutable view or any accessor derived from
// it is in use nothing else may mutate the integer. Read only views of
// the same integer may coexist freely.
//
// Two behaviors are deliberate and documented rather than checked:
// constructing a view with an explicit size smaller than the number's
// magnitude leaves the hidden high digits inaccessible even though
// they still affect decoded low digits, and writing every magnitude
// digit of a negative number to zero yields plain zero, as there is no
// negative zero.
package digitview
