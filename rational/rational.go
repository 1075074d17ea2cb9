package rational

import (
	"strings"

	"github.com/db47h/apm/bigint"
	"github.com/db47h/apm/whole"
)

// A Rational is a signed numerator over a non-zero whole-number
// denominator. The zero value is not ready for use; call New or one of
// the other constructors. Rationals are not reduced automatically.
type Rational struct {
	num *bigint.Integer
	den *whole.Whole
}

// New returns the Rational 0/1.
func New() *Rational {
	return &Rational{num: bigint.New(), den: whole.NewUint64(1)}
}

// Undef returns the rational "construction failed" sentinel: numerator
// Undef over denominator 1.
func Undef() *Rational {
	return &Rational{num: bigint.Undef(), den: whole.NewUint64(1)}
}

// FromInteger returns x/1.
func FromInteger(x *bigint.Integer) *Rational {
	return &Rational{num: x.Clone(), den: whole.NewUint64(1)}
}

// NewIntegerWhole returns num/den and true, or Undef and false if den is
// zero (construction failure, per the data model: a zero denominator
// marks the value as permanently unusable).
func NewIntegerWhole(num *bigint.Integer, den *whole.Whole) (z *Rational, ok bool) {
	if den.IsZero() {
		return Undef(), false
	}
	return &Rational{num: num.Clone(), den: den.Clone()}, true
}

// Copy sets z to a deep copy of x and returns z.
func (z *Rational) Copy(x *Rational) *Rational {
	z.ensure()
	z.num.Copy(x.num)
	z.den.Copy(x.den)
	return z
}

// Clone returns a new Rational holding a deep copy of x.
func (x *Rational) Clone() *Rational {
	return new(Rational).Copy(x)
}

func (z *Rational) ensure() {
	if z.num == nil {
		z.num = bigint.New()
	}
	if z.den == nil {
		z.den = whole.NewUint64(1)
	}
}

func (z *Rational) setUndef() *Rational {
	z.ensure()
	z.num.Copy(bigint.Undef())
	z.den.Copy(whole.NewUint64(1))
	return z
}

// valid reports whether x was constructed successfully and carries a
// finite numerator; NaN, Undef and infinite numerators all make a
// Rational unusable for arithmetic.
func (x *Rational) valid() bool {
	x.ensure()
	return x.num.IsFinite() && !x.den.IsZero()
}

// Numerator returns x's numerator.
func (x *Rational) Numerator() *bigint.Integer {
	x.ensure()
	return x.num
}

// Denominator returns x's denominator.
func (x *Rational) Denominator() *whole.Whole {
	x.ensure()
	return x.den
}

// IsValid reports whether x is usable: a finite numerator over a
// non-zero denominator.
func (x *Rational) IsValid() bool { return x.valid() }

// Reduce sets z to x reduced to lowest terms (numerator and denominator
// divided by their gcd) and returns z. An invalid x reduces to Undef.
func (z *Rational) Reduce(x *Rational) *Rational {
	if !x.valid() {
		return z.setUndef()
	}
	if x.num.IsZero() {
		z.ensure()
		z.num.Copy(bigint.New())
		z.den.Copy(whole.NewUint64(1))
		return z
	}
	g := whole.New().Gcd(x.num.Magnitude(), x.den)
	var rem whole.Whole
	numMag := whole.New().DivMod(x.num.Magnitude(), g, &rem)
	den := whole.New().DivMod(x.den, g, &rem)
	num := bigint.New()
	if x.num.IsNegative() {
		num.Neg(bigint.FromWhole(numMag))
	} else {
		num.Copy(bigint.FromWhole(numMag))
	}
	z.ensure()
	z.num.Copy(num)
	z.den.Copy(den)
	return z
}

// Neg sets z to -x and returns z.
func (z *Rational) Neg(x *Rational) *Rational {
	if !x.valid() {
		return z.setUndef()
	}
	z.ensure()
	z.num.Neg(x.num)
	z.den.Copy(x.den)
	return z
}

// Add sets z to x+y using cross-multiplication (ad+bc)/(bd) and returns
// z.
func (z *Rational) Add(x, y *Rational) *Rational {
	if !x.valid() || !y.valid() {
		return z.setUndef()
	}
	ad := new(bigint.Integer).Mul(x.num, bigint.FromWhole(y.den))
	bc := new(bigint.Integer).Mul(y.num, bigint.FromWhole(x.den))
	num := new(bigint.Integer).Add(ad, bc)
	den := whole.New().Mul(x.den, y.den)
	z.ensure()
	z.num.Copy(num)
	z.den.Copy(den)
	return z
}

// Sub sets z to x-y and returns z.
func (z *Rational) Sub(x, y *Rational) *Rational {
	return z.Add(x, new(Rational).Neg(y))
}

// Mul sets z to x*y, component-wise, and returns z.
func (z *Rational) Mul(x, y *Rational) *Rational {
	if !x.valid() || !y.valid() {
		return z.setUndef()
	}
	num := new(bigint.Integer).Mul(x.num, y.num)
	den := whole.New().Mul(x.den, y.den)
	z.ensure()
	z.num.Copy(num)
	z.den.Copy(den)
	return z
}

// recip sets z to 1/x and returns z. x with a zero numerator yields
// Undef.
func (z *Rational) recip(x *Rational) *Rational {
	if !x.valid() || x.num.IsZero() {
		return z.setUndef()
	}
	z.ensure()
	if x.num.IsNegative() {
		z.num.Neg(bigint.FromWhole(x.den))
	} else {
		z.num.Copy(bigint.FromWhole(x.den))
	}
	z.den.Copy(x.num.Magnitude())
	return z
}

// Div sets z to x/y (x times y's reciprocal) and returns z. Division by
// a zero-numerator y yields Undef.
func (z *Rational) Div(x, y *Rational) *Rational {
	if !x.valid() {
		return z.setUndef()
	}
	r := new(Rational).recip(y)
	if !r.valid() {
		return z.setUndef()
	}
	return z.Mul(x, r)
}

// Mod sets z to x mod y: the fractional remainder after truncating x/y
// toward zero, i.e. z = x - trunc(x/y)*y, and returns z.
func (z *Rational) Mod(x, y *Rational) *Rational {
	if !x.valid() || !y.valid() || y.num.IsZero() {
		return z.setUndef()
	}
	f := new(Rational).Div(x, y)
	if !f.valid() {
		return z.setUndef()
	}
	var rem whole.Whole
	qmag := whole.New().DivMod(f.num.Magnitude(), f.den, &rem)
	qi := bigint.FromWhole(qmag)
	if f.num.IsNegative() {
		qi = new(bigint.Integer).Neg(qi)
	}
	q := FromInteger(qi)
	qy := new(Rational).Mul(q, y)
	return z.Sub(x, qy)
}

// Cmp compares x and y by cross-multiplication (denominators are always
// positive, so sign is preserved), returning -1, 0, +1 as x<y, x==y,
// x>y, and defined reporting whether the comparison is meaningful.
func (x *Rational) Cmp(y *Rational) (cmp int, defined bool) {
	if !x.valid() || !y.valid() {
		return 0, false
	}
	ad := new(bigint.Integer).Mul(x.num, bigint.FromWhole(y.den))
	bc := new(bigint.Integer).Mul(y.num, bigint.FromWhole(x.den))
	return ad.Cmp(bc)
}

// Equal reports whether x and y are numerically equal (without
// requiring identical numerator/denominator representations).
func (x *Rational) Equal(y *Rational) bool {
	c, ok := x.Cmp(y)
	return ok && c == 0
}

// Less reports whether x < y.
func (x *Rational) Less(y *Rational) bool {
	c, ok := x.Cmp(y)
	return ok && c < 0
}

// String returns x in "num/den" form, or just the numerator when the
// denominator is 1.
func (x *Rational) String() string {
	x.ensure()
	if !x.valid() {
		return x.num.String()
	}
	if d, ok := x.den.Uint64(); ok && d == 1 {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}

// NewString parses text as "num/den", optionally prefixed with a
// whitespace-separated integer part for a mixed number ("1 2/3" = 5/3).
// Parse failure yields Undef.
func NewString(text string) *Rational {
	s := strings.TrimSpace(text)
	fields := strings.Fields(s)
	var whole_, frac string
	switch len(fields) {
	case 1:
		frac = fields[0]
	case 2:
		whole_, frac = fields[0], fields[1]
	default:
		return Undef()
	}
	parts := strings.SplitN(frac, "/", 2)
	if len(parts) != 2 {
		if whole_ != "" {
			return Undef()
		}
		n := bigint.NewString(frac)
		if !n.IsFinite() {
			return Undef()
		}
		return FromInteger(n)
	}
	num := bigint.NewString(strings.TrimSpace(parts[0]))
	den, ok := whole.NewString(strings.TrimSpace(parts[1]), 10)
	if !num.IsFinite() || !ok || den.IsZero() {
		return Undef()
	}
	r := &Rational{num: num, den: den}
	if whole_ == "" {
		return r
	}
	intPart := bigint.NewString(whole_)
	if !intPart.IsFinite() {
		return Undef()
	}
	scaled := new(bigint.Integer).Mul(intPart, bigint.FromWhole(den))
	signed := num
	if intPart.IsNegative() {
		signed = new(bigint.Integer).Neg(num)
	}
	combined := new(bigint.Integer).Add(scaled, signed)
	return &Rational{num: combined, den: den}
}
