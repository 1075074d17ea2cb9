// Package whole implements Whole, a non-negative integer of arbitrary size
// built on top of a trimmed register.Register. Every exported operation
// preserves the trimmed invariant: no Whole value exposed to a caller ever
// carries trailing zero words.
//
// Where the underlying register already provides a correct general-purpose
// algorithm (bitwise ops, shifts), Whole simply forwards to it. Addition,
// subtraction, multiplication and division by a single-word divisor are
// reimplemented here directly over word slices because the word-level
// schoolbook algorithms are asymptotically better than register's
// bit-at-a-time versions; division by a multi-word divisor is still
// shift-and-subtract, one quotient bit per step.
package whole
