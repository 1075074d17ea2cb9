// Package rational implements Rational, a signed numerator (bigint.Integer)
// over a non-zero whole-number denominator. Rationals are not automatically
// reduced to lowest terms; call Reduce to normalize. A zero denominator
// marks construction failure: the value becomes unusable and every
// operation on it absorbs into the bigint.Undef sentinel, following the
// same no-panic, no-error-return contract as bigint.
package rational
