// Package decimal implements Decimal, a fixed-scale decimal number backed
// by a bigint.Integer holding ⌊value×10^S⌋ for a process-wide scale S
// (see Scale/SetScale). Decimal carries the same nan/undef/±infinity
// states as bigint.Integer and the same no-panic contract: every
// operation absorbs domain errors (division by zero, logarithm of a
// non-positive value, a negative root of even index, ...) into Undef
// rather than returning a Go error or panicking.
package decimal
