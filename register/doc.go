// Package register implements an unbounded unsigned binary register: a
// little-endian sequence of fixed-width Words supporting bitwise algebra,
// long addition/subtraction/multiplication/division and radix conversion.
//
// A register is the foundation of the arbitrary-precision stack; whole,
// bigint, rational and decimal are all built on top of it. Register values
// are not trimmed automatically except where documented — callers that need
// a canonical (minimal-length) form call Trim explicitly. The whole package
// enforces trimming on every operation it exposes.
//
// As with most of this module's numeric types, Register operations follow
// the z.Op(x, y) convention: the receiver holds the result and may safely
// alias one of the operands.
package register
