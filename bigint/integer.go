package bigint

import (
	"strings"

	"github.com/db47h/apm/whole"
)

// Sign is the Integer's extended sign-state tag. The declaration order is
// significant: it defines the total order used for comparisons.
type Sign int8

// Sign states, ordered nan < undef < -infinity < negative < zero < positive
// < +infinity.
const (
	SignNaN Sign = iota
	SignUndef
	SignNegInf
	SignNegative
	SignZero
	SignPositive
	SignPosInf
)

//go:generate stringer -type=Sign

func (s Sign) String() string {
	switch s {
	case SignNaN:
		return "nan"
	case SignUndef:
		return "undefined"
	case SignNegInf:
		return "-infinity"
	case SignNegative:
		return "negative"
	case SignZero:
		return "zero"
	case SignPositive:
		return "positive"
	case SignPosInf:
		return "+infinity"
	default:
		return "unknown"
	}
}

// An Integer is a signed arbitrary-precision value: a non-negative
// whole.Whole magnitude tagged with a Sign. The magnitude is zero iff the
// tag is SignZero; NaN and Undef carry a zero magnitude by convention.
type Integer struct {
	mag  *whole.Whole
	sign Sign
}

// New returns the Integer 0.
func New() *Integer {
	return &Integer{mag: whole.New(), sign: SignZero}
}

// NaN returns the NaN sentinel. NaN never compares equal to any Integer,
// including another NaN.
func NaN() *Integer { return &Integer{mag: whole.New(), sign: SignNaN} }

// Undef returns the UNDEF sentinel, the library's absorbing error state.
func Undef() *Integer { return &Integer{mag: whole.New(), sign: SignUndef} }

// PosInf returns +infinity.
func PosInf() *Integer { return &Integer{mag: whole.New(), sign: SignPosInf} }

// NegInf returns -infinity.
func NegInf() *Integer { return &Integer{mag: whole.New(), sign: SignNegInf} }

// NewInt64 returns an Integer with the value of v.
func NewInt64(v int64) *Integer {
	if v == 0 {
		return New()
	}
	u := uint64(v)
	sign := SignPositive
	if v < 0 {
		u = uint64(-v)
		sign = SignNegative
	}
	return &Integer{mag: whole.NewUint64(u), sign: sign}
}

// NewUint64 returns an Integer with the value of v.
func NewUint64(v uint64) *Integer {
	if v == 0 {
		return New()
	}
	return &Integer{mag: whole.NewUint64(v), sign: SignPositive}
}

// FromWhole returns a (positive or zero) Integer with the value of w. w is
// not copied defensively by the caller's reference, but the returned
// Integer owns a fresh Whole.
func FromWhole(w *whole.Whole) *Integer {
	if w.IsZero() {
		return New()
	}
	return &Integer{mag: w.Clone(), sign: SignPositive}
}

// Copy sets z to a deep copy of x and returns z.
func (z *Integer) Copy(x *Integer) *Integer {
	if z.mag == nil {
		z.mag = whole.New()
	}
	z.mag.Copy(x.mag)
	z.sign = x.sign
	return z
}

// Clone returns a new Integer holding a deep copy of x.
func (x *Integer) Clone() *Integer {
	return new(Integer).Copy(x)
}

func (z *Integer) ensure() {
	if z.mag == nil {
		z.mag = whole.New()
	}
}

// Sign returns the Integer's sign tag.
func (x *Integer) Sign() Sign { return x.sign }

// Magnitude returns x's non-negative magnitude. For non-finite states the
// magnitude is zero by convention.
func (x *Integer) Magnitude() *whole.Whole {
	x.ensure()
	return x.mag
}

// IsZero reports whether x is the finite value 0.
func (x *Integer) IsZero() bool { return x.sign == SignZero }

// IsPositive reports whether x is finite and > 0 (excludes +infinity).
func (x *Integer) IsPositive() bool { return x.sign == SignPositive }

// IsNegative reports whether x is finite and < 0 (excludes -infinity).
func (x *Integer) IsNegative() bool { return x.sign == SignNegative }

// IsUndefined reports whether x is the UNDEF sentinel.
func (x *Integer) IsUndefined() bool { return x.sign == SignUndef }

// IsNaN reports whether x is the NaN sentinel.
func (x *Integer) IsNaN() bool { return x.sign == SignNaN }

// IsDefined reports whether x is neither UNDEF nor NaN.
func (x *Integer) IsDefined() bool { return x.sign != SignUndef && x.sign != SignNaN }

// IsFinite reports whether x holds a finite numeric value (not NaN, Undef,
// or an infinity).
func (x *Integer) IsFinite() bool {
	switch x.sign {
	case SignNegative, SignZero, SignPositive:
		return true
	default:
		return false
	}
}

// IsInfinite reports whether x is +infinity or -infinity.
func (x *Integer) IsInfinite() bool {
	return x.sign == SignPosInf || x.sign == SignNegInf
}

// IsOdd reports whether x is finite and odd.
func (x *Integer) IsOdd() bool { return x.IsFinite() && x.Magnitude().IsOdd() }

// IsEven reports whether x is finite and even.
func (x *Integer) IsEven() bool { return x.IsFinite() && x.Magnitude().IsEven() }

// Neg sets z to -x, flipping the sign tag along the involution
// {positive<->negative, +inf<->-inf, zero->zero, undef/nan->undef (NaN
// and Undef have no opposite)} and returns z.
func (z *Integer) Neg(x *Integer) *Integer {
	z.Copy(x)
	switch z.sign {
	case SignNaN:
		z.sign = SignUndef
	case SignPositive:
		z.sign = SignNegative
	case SignNegative:
		z.sign = SignPositive
	case SignPosInf:
		z.sign = SignNegInf
	case SignNegInf:
		z.sign = SignPosInf
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *Integer) Abs(x *Integer) *Integer {
	z.Copy(x)
	switch z.sign {
	case SignNegative:
		z.sign = SignPositive
	case SignNegInf:
		z.sign = SignPosInf
	}
	return z
}

// setFromMagnitude sets z's sign/magnitude given a candidate sign (positive
// or negative) and a whole magnitude, collapsing a zero magnitude to
// SignZero.
func (z *Integer) setFromMagnitude(sign Sign, mag *whole.Whole) *Integer {
	z.ensure()
	if mag.IsZero() {
		z.mag.Copy(mag)
		z.sign = SignZero
		return z
	}
	z.mag.Copy(mag)
	z.sign = sign
	return z
}

// Int64 returns x's value as an int64 and true, or (0, false) if x is not a
// finite value representable in an int64.
func (x *Integer) Int64() (int64, bool) {
	if !x.IsFinite() {
		return 0, false
	}
	u, ok := x.Magnitude().Uint64()
	if !ok || u > 1<<63 {
		return 0, false
	}
	if x.sign == SignNegative {
		if u == 1<<63 {
			return -(1 << 63), true
		}
		return -int64(u), true
	}
	if u >= 1<<63 {
		return 0, false
	}
	return int64(u), true
}

// Uint64 returns x's value as a uint64 and true, or (0, false) if x is not
// finite, negative, or too large.
func (x *Integer) Uint64() (uint64, bool) {
	if !x.IsFinite() || x.sign == SignNegative {
		return 0, false
	}
	return x.Magnitude().Uint64()
}

// String returns the base-10 representation, with "-" printed only for
// negative values (see Text).
func (x *Integer) String() string {
	return x.Text(10, -1)
}

// Text returns x in the given base with the given sign policy: negative
// emits "-" only for negative values, zero suppresses the sign entirely,
// positive always emits a leading "+" or "-". Special states render as
// their symbolic names regardless of base or signPolicy.
func (x *Integer) Text(base int, signPolicy int) string {
	switch x.sign {
	case SignNaN:
		return "nan"
	case SignUndef:
		return "undefined"
	case SignPosInf:
		return "+infinity"
	case SignNegInf:
		return "-infinity"
	}
	digits := x.Magnitude().Text(base, base == 10)
	switch {
	case signPolicy == 0:
		return digits
	case x.sign == SignNegative:
		return "-" + digits
	case signPolicy > 0:
		return "+" + digits
	default:
		return digits
	}
}

// NewString parses text as a signed Integer literal, a radix-prefixed whole
// literal (0u/0b/0o/0x), or a symbolic sentinel (undefined, +infinity,
// -infinity, nan, case-insensitive). An unrecognized or out-of-range digit
// never panics: it yields Undef.
func NewString(text string) *Integer {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	switch lower {
	case "undefined":
		return Undef()
	case "+infinity", "infinity":
		return PosInf()
	case "-infinity":
		return NegInf()
	case "nan":
		return NaN()
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(strings.ToLower(s), "0u"):
		base, s = 10, s[2:]
	case strings.HasPrefix(strings.ToLower(s), "0b"):
		base, s = 2, s[2:]
	case strings.HasPrefix(strings.ToLower(s), "0o"):
		base, s = 8, s[2:]
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		base, s = 16, s[2:]
	}
	w, ok := whole.NewString(s, base)
	if !ok {
		return Undef()
	}
	sign := SignPositive
	if neg {
		sign = SignNegative
	}
	return new(Integer).setFromMagnitude(sign, w)
}
