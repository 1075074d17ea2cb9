// Package bigint implements Integer, a signed arbitrary-precision integer
// carrying an extended sign state beyond plain positive/negative/zero: NaN
// and Undef (the library's single in-band error channel) and signed
// infinities. Integer wraps one whole.Whole magnitude plus a Sign tag drawn
// from a total order:
//
//	NaN < Undef < NegInf < Negative < Zero < Positive < PosInf
//
// That ordering drives every comparison short-circuit in this package: two
// Integers are compared by Sign first, and only on equal Sign by magnitude.
//
// No operation in this package returns a Go error or panics on a domain
// condition (division by zero, ∞-∞, ∞*0, comparisons against Undef/NaN,
// parse failure). Those conditions are absorbed into the Undef sign state
// instead, which is itself absorbing: any arithmetic touching Undef (or
// NaN) yields Undef. Callers check IsUndefined/IsNaN before trusting a
// result.
package bigint
