package decimal

import (
	"strings"

	"github.com/db47h/apm/bigint"
	"github.com/db47h/apm/rational"
	"github.com/db47h/apm/whole"
)

// A Decimal is a fixed-scale real number: internally, an Integer holding
// ⌊value×10^Scale()⌋. The zero value is not ready for use; call New or
// one of the other constructors.
type Decimal struct {
	i *bigint.Integer
}

// New returns the Decimal 0.
func New() *Decimal {
	return &Decimal{i: bigint.New()}
}

// Undef returns the Decimal UNDEF sentinel.
func Undef() *Decimal { return &Decimal{i: bigint.Undef()} }

// NaN returns the Decimal NaN sentinel.
func NaN() *Decimal { return &Decimal{i: bigint.NaN()} }

// PosInf and NegInf return the signed infinities.
func PosInf() *Decimal { return &Decimal{i: bigint.PosInf()} }
func NegInf() *Decimal { return &Decimal{i: bigint.NegInf()} }

// NewInt64 returns the Decimal value of n.
func NewInt64(n int64) *Decimal {
	return FromInteger(bigint.NewInt64(n))
}

// FromInteger returns the Decimal value of x (x scaled by 10^Scale()).
func FromInteger(x *bigint.Integer) *Decimal {
	if !x.IsFinite() {
		return &Decimal{i: x.Clone()}
	}
	return &Decimal{i: new(bigint.Integer).Mul(x, Denominator())}
}

// Copy sets z to a deep copy of x and returns z.
func (z *Decimal) Copy(x *Decimal) *Decimal {
	z.ensure()
	z.i.Copy(x.i)
	return z
}

// Clone returns a new Decimal holding a deep copy of x.
func (x *Decimal) Clone() *Decimal {
	return new(Decimal).Copy(x)
}

func (z *Decimal) ensure() {
	if z.i == nil {
		z.i = bigint.New()
	}
}

func (z *Decimal) setUndef() *Decimal {
	z.ensure()
	z.i.Copy(bigint.Undef())
	return z
}

// Raw returns the backing Integer (value×10^Scale()). Callers must not
// mutate it.
func (x *Decimal) Raw() *bigint.Integer {
	x.ensure()
	return x.i
}

// IsZero, IsPositive, IsNegative, IsUndefined, IsNaN, IsFinite and
// IsInfinite mirror bigint.Integer's predicates on the backing value.
func (x *Decimal) IsZero() bool      { x.ensure(); return x.i.IsZero() }
func (x *Decimal) IsPositive() bool  { x.ensure(); return x.i.IsPositive() }
func (x *Decimal) IsNegative() bool  { x.ensure(); return x.i.IsNegative() }
func (x *Decimal) IsUndefined() bool { x.ensure(); return x.i.IsUndefined() }
func (x *Decimal) IsNaN() bool       { x.ensure(); return x.i.IsNaN() }
func (x *Decimal) IsFinite() bool    { x.ensure(); return x.i.IsFinite() }
func (x *Decimal) IsInfinite() bool  { x.ensure(); return x.i.IsInfinite() }

// Neg sets z to -x and returns z.
func (z *Decimal) Neg(x *Decimal) *Decimal {
	z.ensure()
	z.i.Neg(x.i)
	return z
}

// Abs sets z to |x| and returns z.
func (z *Decimal) Abs(x *Decimal) *Decimal {
	z.ensure()
	z.i.Abs(x.i)
	return z
}

// Add, Sub apply directly to the backing Integers: since both operands
// share the same scale, no rescaling is needed.
func (z *Decimal) Add(x, y *Decimal) *Decimal {
	z.ensure()
	z.i.Add(x.i, y.i)
	return z
}

func (z *Decimal) Sub(x, y *Decimal) *Decimal {
	z.ensure()
	z.i.Sub(x.i, y.i)
	return z
}

// Mul sets z to x*y: multiplies the backing Integers, then divides once
// by the denominator to restore the single-scale representation.
func (z *Decimal) Mul(x, y *Decimal) *Decimal {
	z.ensure()
	prod := new(bigint.Integer).Mul(x.i, y.i)
	if !prod.IsFinite() {
		z.i.Copy(prod)
		return z
	}
	q, _ := truncDivRem(prod, Denominator())
	z.i.Copy(q)
	return z
}

// Div sets z to x/y: multiplies x by the denominator first (to preserve
// scale through the division) then divides by y.
func (z *Decimal) Div(x, y *Decimal) *Decimal {
	z.ensure()
	scaled := new(bigint.Integer).Mul(x.i, Denominator())
	if !scaled.IsFinite() || !y.i.IsFinite() || y.i.IsZero() {
		z.i.Div(scaled, y.i)
		return z
	}
	q, _ := truncDivRem(scaled, y.i)
	z.i.Copy(q)
	return z
}

// Mod sets z to x mod y: the fractional part of x/y, i.e. ((x*D)/y) mod
// D, where D is the denominator.
func (z *Decimal) Mod(x, y *Decimal) *Decimal {
	z.ensure()
	scaled := new(bigint.Integer).Mul(x.i, Denominator())
	if !scaled.IsFinite() || !y.i.IsFinite() || y.i.IsZero() {
		z.i.Mod(scaled, y.i)
		return z
	}
	q, _ := truncDivRem(scaled, y.i)
	_, r := truncDivRem(q, Denominator())
	z.i.Copy(r)
	return z
}

// truncDivRem returns the truncated-toward-zero quotient and magnitude
// remainder of x/d (d nonzero): it mirrors the original implementation's
// div_rem convention, which every rescale, Ceil/Floor, and Round in this
// package builds on directly. This is deliberately distinct from
// bigint.Integer's own public DivRem, which instead satisfies the spec's
// Euclidean contract (0 <= rem < |d|, unconditionally non-negative) —
// that contract is right for Integer's own Div/Mod but would shift every
// Decimal rescale by one ulp whenever the dividend is negative.
func truncDivRem(x, d *bigint.Integer) (q, r *bigint.Integer) {
	var qw, rw whole.Whole
	qw.DivMod(x.Magnitude(), d.Magnitude(), &rw)
	q = bigint.FromWhole(&qw)
	if x.IsNegative() != d.IsNegative() {
		q = new(bigint.Integer).Neg(q)
	}
	r = bigint.FromWhole(&rw)
	return q, r
}

// Ceil sets z to x rounded r≠0 away from zero (in the direction of x's
// sign) to the nearest whole number; returns z. Floor truncates a
// positive x toward zero (floor(1.25) == 1); for a negative x with a
// nonzero fractional part it adds one whole unit to the truncated value,
// overshooting past it (floor(-1.25) == 0). This literally follows the
// original implementation's div_rem-based definitions, which name "ceil"
// and "floor" by rounding direction relative to the sign rather than
// relative to +/-infinity.
func (z *Decimal) Ceil(x *Decimal) *Decimal {
	return z.roundToWhole(x, true)
}

func (z *Decimal) Floor(x *Decimal) *Decimal {
	return z.roundToWhole(x, false)
}

func (z *Decimal) roundToWhole(x *Decimal, awayFromZero bool) *Decimal {
	z.ensure()
	if !x.i.IsFinite() {
		z.i.Copy(x.i)
		return z
	}
	D := Denominator()
	q, r := truncDivRem(x.i, D)
	result := new(bigint.Integer).Mul(q, D)
	if !r.IsZero() {
		switch {
		case awayFromZero == x.IsPositive():
			result.Add(result, D)
		case awayFromZero:
			result.Sub(result, D)
		}
	}
	z.i.Copy(result)
	return z
}

// Pow sets z to x**n (n a non-negative exponent) and returns z. Raising
// the backing Integer to the n-th power scales by D^n; dividing by
// D^(n-1) restores a single factor of the denominator.
func (z *Decimal) Pow(x *Decimal, n uint64) *Decimal {
	z.ensure()
	if n == 0 {
		z.i.Copy(Denominator())
		return z
	}
	raw := new(bigint.Integer).Pow(x.i, n)
	if n == 1 || !raw.IsFinite() {
		z.i.Copy(raw)
		return z
	}
	divisor := new(bigint.Integer).Pow(Denominator(), n-1)
	q, _ := truncDivRem(raw, divisor)
	z.i.Copy(q)
	return z
}

// Root sets z to the n-th root of x, pre-scaling by D^(n-1) before
// delegating to the whole-number root so fixed-point precision survives
// the integer root operation. A negative x with even n yields Undef.
func (z *Decimal) Root(x *Decimal, n uint64) *Decimal {
	if !x.i.IsFinite() || n == 0 {
		return z.setUndef()
	}
	if x.i.IsNegative() {
		if n%2 == 0 {
			return z.setUndef()
		}
		pos := new(Decimal).Root(new(Decimal).Abs(x), n)
		z.ensure()
		z.i.Neg(pos.i)
		return z
	}
	scaled := new(bigint.Integer).Mul(x.i, new(bigint.Integer).Pow(Denominator(), n-1))
	mag := whole.New().Root(scaled.Magnitude(), n)
	z.ensure()
	z.i.Copy(bigint.FromWhole(mag))
	return z
}

// Sqrt sets z to the square root of x, computed as the integer square
// root of x's backing value scaled by one extra factor of D (so the
// result lands back at the right fixed-point scale).
func (z *Decimal) Sqrt(x *Decimal) *Decimal {
	if !x.i.IsFinite() || x.i.IsNegative() {
		return z.setUndef()
	}
	scaled := new(bigint.Integer).Mul(x.i, Denominator())
	mag := whole.New().Sqrt(scaled.Magnitude())
	z.ensure()
	z.i.Copy(bigint.FromWhole(mag))
	return z
}

// Gcd sets z to the greatest common divisor of a and b's backing
// Integers and returns z, forwarding directly to bigint.Integer.Gcd.
func (z *Decimal) Gcd(a, b *Decimal) *Decimal {
	z.ensure()
	z.i.Gcd(a.i, b.i)
	return z
}

// Cmp, Equal, Less, Greater compare the backing Integers directly (valid
// since both share the same scale).
func (x *Decimal) Cmp(y *Decimal) (cmp int, defined bool) { return x.i.Cmp(y.i) }
func (x *Decimal) Equal(y *Decimal) bool                  { return x.i.Equal(y.i) }
func (x *Decimal) Less(y *Decimal) bool                   { return x.i.Less(y.i) }
func (x *Decimal) Greater(y *Decimal) bool                { return x.i.Greater(y.i) }

// Round sets z to x rounded to n fractional digits using the active
// RoundingMode, and returns z. n must be in [0, Scale()].
func (z *Decimal) Round(x *Decimal, n int) *Decimal {
	z.ensure()
	if !x.i.IsFinite() {
		z.i.Copy(x.i)
		return z
	}
	S := Scale()
	if n < 0 {
		n = 0
	}
	if n > S {
		n = S
	}
	if n == S {
		z.i.Copy(x.i)
		return z
	}
	factor := new(bigint.Integer).Pow(bigint.NewInt64(10), uint64(S-n))
	q, r := truncDivRem(x.i, factor)
	half, _ := truncDivRem(factor, bigint.NewInt64(2))
	roundUp := false
	switch CurrentRoundingMode() {
	case TowardZero:
		roundUp = false
	case AwayFromZero:
		roundUp = !r.IsZero()
	case Ceil:
		roundUp = !r.IsZero() && x.IsPositive()
	case Floor:
		roundUp = !r.IsZero() && x.IsNegative()
	case HalfUp:
		roundUp = r.GreaterEqual(half)
	case HalfDown:
		roundUp = r.Greater(half)
	case HalfEven:
		c, _ := r.Cmp(half)
		roundUp = c > 0 || (c == 0 && q.IsOdd())
	case HalfOdd:
		c, _ := r.Cmp(half)
		roundUp = c > 0 || (c == 0 && q.IsEven())
	}
	if roundUp {
		if x.IsNegative() {
			q.Dec(q)
		} else {
			q.Inc(q)
		}
	}
	z.i.Mul(q, factor)
	return z
}

// String returns x's fixed-fraction decimal representation, zero-padded
// to exactly Scale() fractional digits.
func (x *Decimal) String() string {
	x.ensure()
	switch {
	case x.i.IsUndefined():
		return "undefined"
	case x.i.IsNaN():
		return "nan"
	case x.i.Sign() == bigint.SignPosInf:
		return "+infinity"
	case x.i.Sign() == bigint.SignNegInf:
		return "-infinity"
	}
	S := Scale()
	digits := x.i.Magnitude().Text(10, false)
	for len(digits) < S+1 {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-S]
	fracPart := digits[len(digits)-S:]
	sign := ""
	if x.i.IsNegative() {
		sign = "-"
	}
	return sign + intPart + "." + fracPart
}

// NewString parses text as a Decimal literal: a decimal with optional
// exponent ("3.14e2"), a rational ("1/3" or a mixed "1 2/3"), a
// radix-prefixed whole literal (0u/0b/0o/0x, multiplied by D), a plain
// integer literal (multiplied by D), or a symbolic sentinel (undefined,
// +infinity, -infinity, nan). Parse failure yields Undef.
func NewString(text string) *Decimal {
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
	switch {
	case strings.ContainsRune(s, '.'):
		return parseDecimalLiteral(lower)
	case strings.ContainsRune(s, '/'):
		return parseRationalLiteral(s)
	case hasRadixPrefix(lower):
		return parseRadixLiteral(lower)
	default:
		n := bigint.NewString(s)
		if !n.IsFinite() {
			return Undef()
		}
		return FromInteger(n)
	}
}

func hasRadixPrefix(lower string) bool {
	s := lower
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	for _, p := range []string{"0u", "0b", "0o", "0x"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func parseRadixLiteral(lower string) *Decimal {
	neg := false
	s := lower
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0u"):
		base, s = 10, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, s = 8, s[2:]
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	}
	w, ok := whole.NewString(s, base)
	if !ok {
		return Undef()
	}
	n := bigint.FromWhole(w)
	if neg {
		n = new(bigint.Integer).Neg(n)
	}
	return FromInteger(n)
}

func parseRationalLiteral(s string) *Decimal {
	r := rational.NewString(s)
	if !r.IsValid() {
		return Undef()
	}
	num := new(bigint.Integer).Mul(r.Numerator(), Denominator())
	den := bigint.FromWhole(r.Denominator())
	q, _ := truncDivRem(num, den)
	return &Decimal{i: q}
}

func parseDecimalLiteral(lower string) *Decimal {
	s := lower
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	expPart := ""
	if idx := strings.IndexByte(s, 'e'); idx >= 0 {
		expPart = s[idx+1:]
		s = s[:idx]
	}
	dotIdx := strings.IndexByte(s, '.')
	if dotIdx < 0 {
		return Undef()
	}
	intStr, fracStr := s[:dotIdx], s[dotIdx+1:]
	digits := intStr + fracStr
	if digits == "" {
		digits = "0"
	}
	w, ok := whole.NewString(digits, 10)
	if !ok {
		return Undef()
	}
	S := Scale()
	fracLen := len(fracStr)
	var mag *whole.Whole
	switch {
	case fracLen < S:
		mag = whole.New().Mul(w, whole.New().Pow(whole.NewWord(10), uint64(S-fracLen)))
	case fracLen > S:
		var rem whole.Whole
		mag = whole.New().DivMod(w, whole.New().Pow(whole.NewWord(10), uint64(fracLen-S)), &rem)
	default:
		mag = w
	}
	if expPart != "" {
		expNeg := false
		switch {
		case strings.HasPrefix(expPart, "+"):
			expPart = expPart[1:]
		case strings.HasPrefix(expPart, "-"):
			expNeg = true
			expPart = expPart[1:]
		}
		ew, ok := whole.NewString(expPart, 10)
		if !ok {
			return Undef()
		}
		expVal, _ := ew.Uint64()
		p := whole.New().Pow(whole.NewWord(10), expVal)
		if expNeg {
			var rem whole.Whole
			mag = whole.New().DivMod(mag, p, &rem)
		} else {
			mag = whole.New().Mul(mag, p)
		}
	}
	n := bigint.FromWhole(mag)
	if neg {
		n = new(bigint.Integer).Neg(n)
	}
	return &Decimal{i: n}
}
