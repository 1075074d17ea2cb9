package decimal

import "github.com/db47h/apm/bigint"

// All series in this file run at the active scale and use the spec's
// convergence test: a new partial sum equal (at Decimal precision) to
// the previous one. maxIter is a safety backstop only — every series
// below converges to Decimal equality long before it, but an explicit
// cap keeps a pathological input from looping forever.
func maxIter() int { return Scale()*4 + 64 }

func decFromInt(n int64) *Decimal { return NewInt64(n) }

// decFromRational returns the Decimal value of p/q (p, q small integers,
// q != 0), truncated at the active scale.
func decFromRational(p, q int64) *Decimal {
	num := new(bigint.Integer).Mul(bigint.NewInt64(p), Denominator())
	return &Decimal{i: new(bigint.Integer).Div(num, bigint.NewInt64(q))}
}

// floorInteger returns the true mathematical floor of x as an Integer.
// Decimal.Floor follows the original implementation's "round toward
// zero" naming (see its doc comment) and is not suitable here; this is
// the ordinary floor (rounding toward -infinity) needed internally for
// angle reduction and Log's exact-integer check. bigint.Integer.DivRem
// already satisfies 0 <= rem < |D| unconditionally, and D is always
// positive, so its quotient already is the floor — no extra adjustment
// needed here.
func floorInteger(x *Decimal) *bigint.Integer {
	D := Denominator()
	var q, r bigint.Integer
	q.DivRem(x.Raw(), D, &r)
	return q.Clone()
}

// fmodPositive returns x modulo m in the mathematical sense, always in
// [0, m) for m > 0, regardless of x's sign.
func fmodPositive(x, m *Decimal) *Decimal {
	q := floorInteger(new(Decimal).Div(x, m))
	return new(Decimal).Sub(x, new(Decimal).Mul(FromInteger(q), m))
}

// Ln sets z to the natural logarithm of x and returns z. ln of a
// non-positive value is a domain error and yields Undef.
func (z *Decimal) Ln(x *Decimal) *Decimal {
	if !x.IsFinite() || x.IsNegative() || x.IsZero() {
		return z.setUndef()
	}
	one := decFromInt(1)
	if x.Equal(one) {
		z.ensure()
		z.i.Copy(bigint.New())
		return z
	}
	if x.Equal(E()) {
		z.ensure()
		z.i.Copy(Denominator())
		return z
	}
	if x.Greater(one) {
		D := Denominator()
		intPart := new(bigint.Integer).Div(x.i, D)
		lead := intPart.Magnitude().Register().LeadBit()
		if lead <= 1 {
			z.ensure()
			z.i.Copy(lnSeries(x).i)
			return z
		}
		k := uint64(lead - 1)
		pow2k := new(bigint.Integer).Pow(bigint.NewInt64(2), k)
		reduced := new(Decimal).Div(x, FromInteger(pow2k))
		lnReduced := new(Decimal).Ln(reduced)
		term := new(Decimal).Mul(Ln2(), decFromInt(int64(k)))
		z.ensure()
		z.i.Copy(new(Decimal).Add(lnReduced, term).i)
		return z
	}
	// 0 < x < 1: ln(x) = -ln(1/x)
	recip := new(Decimal).Div(one, x)
	lr := new(Decimal).Ln(recip)
	z.ensure()
	z.i.Neg(lr.i)
	return z
}

// lnSeries evaluates the Taylor kernel ln v = 2*sum x^(2n+1)/(2n+1),
// x = (v-1)/(v+1), used once v has been reduced near 1.
func lnSeries(v *Decimal) *Decimal {
	one := decFromInt(1)
	x := new(Decimal).Div(new(Decimal).Sub(v, one), new(Decimal).Add(v, one))
	x2 := new(Decimal).Mul(x, x)
	term := x.Clone()
	sum := x.Clone()
	prev := sum.Clone()
	for i, n := 0, int64(1); i < maxIter(); i, n = i+1, n+2 {
		term = new(Decimal).Mul(term, x2)
		add := new(Decimal).Div(term, decFromInt(n+2))
		sum = new(Decimal).Add(sum, add)
		if sum.Equal(prev) {
			break
		}
		prev = sum.Clone()
	}
	return new(Decimal).Mul(sum, decFromInt(2))
}

// Log sets z to log_b(v) and returns z. If b^floor(result) equals v
// exactly, the exact integer answer is returned instead of the series
// approximation.
func (z *Decimal) Log(v, b *Decimal) *Decimal {
	lnV := new(Decimal).Ln(v)
	lnB := new(Decimal).Ln(b)
	if !lnV.IsFinite() || !lnB.IsFinite() || lnB.IsZero() {
		return z.setUndef()
	}
	result := new(Decimal).Div(lnV, lnB)
	if n, ok := floorInteger(result).Int64(); ok && n >= 0 {
		check := new(Decimal).Pow(b, uint64(n))
		if check.Equal(v) {
			z.ensure()
			z.i.Copy(FromInteger(bigint.NewInt64(n)).i)
			return z
		}
	}
	z.ensure()
	z.i.Copy(result.i)
	return z
}

// reduceAngleDegrees folds deg into [0, 180], returning the reduced
// angle and the sign flip that [180, 360) and negative angles require.
func reduceAngleDegrees(deg *Decimal) (reduced *Decimal, sign *Decimal) {
	d360 := decFromInt(360)
	r := fmodPositive(deg, d360)
	d180 := decFromInt(180)
	sign = decFromInt(1)
	if r.Greater(d180) {
		r = new(Decimal).Sub(r, d180)
		sign = decFromInt(-1)
	}
	return r, sign
}

func toRadians(deg *Decimal) *Decimal {
	return new(Decimal).Mul(deg, new(Decimal).Div(Pi(), decFromInt(180)))
}

// sinSeries evaluates sin(x) (x in radians) via its Taylor series.
func sinSeries(x *Decimal) *Decimal {
	x2 := new(Decimal).Mul(x, x)
	term := x.Clone()
	sum := x.Clone()
	prev := sum.Clone()
	for i, k := 0, int64(1); i < maxIter(); i, k = i+1, k+1 {
		t := new(Decimal).Mul(term, x2)
		t = new(Decimal).Div(t, decFromInt(2*k*(2*k+1)))
		term = new(Decimal).Neg(t)
		sum = new(Decimal).Add(sum, term)
		if sum.Equal(prev) {
			break
		}
		prev = sum.Clone()
	}
	return sum
}

// Sin sets z to sin(deg), where deg is an angle in degrees, and returns
// z.
func (z *Decimal) Sin(deg *Decimal) *Decimal {
	if !deg.IsFinite() {
		return z.setUndef()
	}
	reduced, sign := reduceAngleDegrees(deg)
	rad := toRadians(reduced)
	z.ensure()
	z.i.Copy(new(Decimal).Mul(sinSeries(rad), sign).i)
	return z
}

// Cos sets z to cos(deg) = sqrt(1 - sin(deg)^2) and returns z. This is
// the original implementation's definition verbatim. The result is never
// negative, so for angles strictly between 90° and 270° (mod 360) it is
// |cos(deg)| rather than cos(deg).
func (z *Decimal) Cos(deg *Decimal) *Decimal {
	if !deg.IsFinite() {
		return z.setUndef()
	}
	s := new(Decimal).Sin(deg)
	one := decFromInt(1)
	inner := new(Decimal).Sub(one, new(Decimal).Mul(s, s))
	if inner.IsNegative() {
		inner = New()
	}
	z.ensure()
	z.i.Copy(new(Decimal).Sqrt(inner).i)
	return z
}

// Tan sets z to sin(deg)/cos(deg) and returns z; Undef where cos(deg) is
// zero.
func (z *Decimal) Tan(deg *Decimal) *Decimal {
	s := new(Decimal).Sin(deg)
	c := new(Decimal).Cos(deg)
	if c.IsZero() {
		return z.setUndef()
	}
	z.ensure()
	z.i.Copy(new(Decimal).Div(s, c).i)
	return z
}

// asinSeries evaluates asin(v) for |v| <= 0.5 via its Taylor series.
func asinSeries(v *Decimal) *Decimal {
	v2 := new(Decimal).Mul(v, v)
	term := v.Clone()
	sum := v.Clone()
	prev := sum.Clone()
	for i, n := 0, int64(0); i < maxIter(); i, n = i+1, n+1 {
		num := (2*n + 1) * (2*n + 1)
		den := 2 * (n + 1) * (2*n + 3)
		t := new(Decimal).Mul(term, v2)
		t = new(Decimal).Mul(t, decFromInt(num))
		t = new(Decimal).Div(t, decFromInt(den))
		term = t
		sum = new(Decimal).Add(sum, term)
		if sum.Equal(prev) {
			break
		}
		prev = sum.Clone()
	}
	return sum
}

// Asin sets z to asin(v) (v in [-1, 1], result in radians) and returns
// z. Out-of-domain v yields Undef.
func (z *Decimal) Asin(v *Decimal) *Decimal {
	if !v.IsFinite() {
		return z.setUndef()
	}
	one := decFromInt(1)
	if v.Greater(one) || new(Decimal).Neg(v).Greater(one) {
		return z.setUndef()
	}
	neg := false
	work := v.Clone()
	if work.IsNegative() {
		neg = true
		work = new(Decimal).Neg(work)
	}
	half := decFromRational(1, 2)
	k := 0
	for work.Greater(half) {
		// asin(v) = 2*asin(v / sqrt(2*(1 + sqrt(1 - v^2))))
		v2 := new(Decimal).Mul(work, work)
		inner := new(Decimal).Sub(one, v2)
		sq := new(Decimal).Sqrt(inner)
		denom := new(Decimal).Sqrt(new(Decimal).Mul(decFromInt(2), new(Decimal).Add(one, sq)))
		work = new(Decimal).Div(work, denom)
		k++
	}
	s := asinSeries(work)
	result := new(Decimal).Mul(s, decFromInt(int64(1)<<uint(k)))
	if neg {
		result = new(Decimal).Neg(result)
	}
	z.ensure()
	z.i.Copy(result.i)
	return z
}

// Acos sets z to acos(v) = pi/2 - asin(v) and returns z.
func (z *Decimal) Acos(v *Decimal) *Decimal {
	a := new(Decimal).Asin(v)
	if !a.IsFinite() {
		return z.setUndef()
	}
	halfPi := new(Decimal).Div(Pi(), decFromInt(2))
	z.ensure()
	z.i.Copy(new(Decimal).Sub(halfPi, a).i)
	return z
}

// atanSeries evaluates atan(v) for |v| <= 0.1 via its Taylor series.
func atanSeries(v *Decimal) *Decimal {
	v2 := new(Decimal).Mul(v, v)
	term := v.Clone()
	sum := v.Clone()
	prev := sum.Clone()
	for i, n := 0, int64(0); i < maxIter(); i, n = i+1, n+1 {
		t := new(Decimal).Mul(term, v2)
		t = new(Decimal).Mul(t, decFromInt(2*n+1))
		t = new(Decimal).Div(t, decFromInt(2*n+3))
		term = new(Decimal).Neg(t)
		sum = new(Decimal).Add(sum, term)
		if sum.Equal(prev) {
			break
		}
		prev = sum.Clone()
	}
	return sum
}

// Atan sets z to atan(v) (result in radians) and returns z.
func (z *Decimal) Atan(v *Decimal) *Decimal {
	if !v.IsFinite() {
		return z.setUndef()
	}
	neg := false
	work := v.Clone()
	if work.IsNegative() {
		neg = true
		work = new(Decimal).Neg(work)
	}
	one := decFromInt(1)
	threshold := decFromRational(1, 10)
	k := 0
	for work.Greater(threshold) {
		v2 := new(Decimal).Mul(work, work)
		inner := new(Decimal).Add(one, v2)
		sq := new(Decimal).Sqrt(inner)
		denom := new(Decimal).Add(one, sq)
		work = new(Decimal).Div(work, denom)
		k++
	}
	s := atanSeries(work)
	result := new(Decimal).Mul(s, decFromInt(int64(1)<<uint(k)))
	if neg {
		result = new(Decimal).Neg(result)
	}
	z.ensure()
	z.i.Copy(result.i)
	return z
}

// Sinh sets z to sinh(v) via its direct Taylor series (no range
// reduction) and returns z.
func (z *Decimal) Sinh(v *Decimal) *Decimal {
	if !v.IsFinite() {
		return z.setUndef()
	}
	v2 := new(Decimal).Mul(v, v)
	term := v.Clone()
	sum := v.Clone()
	prev := sum.Clone()
	for i, n := 0, int64(1); i < maxIter(); i, n = i+1, n+2 {
		term = new(Decimal).Mul(term, v2)
		term = new(Decimal).Div(term, decFromInt((n+1)*(n+2)))
		sum = new(Decimal).Add(sum, term)
		if sum.Equal(prev) {
			break
		}
		prev = sum.Clone()
	}
	z.ensure()
	z.i.Copy(sum.i)
	return z
}

// Cosh sets z to cosh(v) via its direct Taylor series and returns z.
func (z *Decimal) Cosh(v *Decimal) *Decimal {
	if !v.IsFinite() {
		return z.setUndef()
	}
	v2 := new(Decimal).Mul(v, v)
	term := decFromInt(1)
	sum := decFromInt(1)
	prev := sum.Clone()
	for i, n := 0, int64(0); i < maxIter(); i, n = i+1, n+2 {
		term = new(Decimal).Mul(term, v2)
		term = new(Decimal).Div(term, decFromInt((n+1)*(n+2)))
		sum = new(Decimal).Add(sum, term)
		if sum.Equal(prev) {
			break
		}
		prev = sum.Clone()
	}
	z.ensure()
	z.i.Copy(sum.i)
	return z
}

// Tanh sets z to sinh(v)/cosh(v) and returns z.
func (z *Decimal) Tanh(v *Decimal) *Decimal {
	s := new(Decimal).Sinh(v)
	c := new(Decimal).Cosh(v)
	if c.IsZero() {
		return z.setUndef()
	}
	z.ensure()
	z.i.Copy(new(Decimal).Div(s, c).i)
	return z
}

// Asinh sets z to asinh(v) = ln(v + sqrt(v^2+1)) and returns z.
func (z *Decimal) Asinh(v *Decimal) *Decimal {
	if !v.IsFinite() {
		return z.setUndef()
	}
	inner := new(Decimal).Add(new(Decimal).Mul(v, v), decFromInt(1))
	sq := new(Decimal).Sqrt(inner)
	arg := new(Decimal).Add(v, sq)
	z.ensure()
	z.i.Copy(new(Decimal).Ln(arg).i)
	return z
}

// Acosh sets z to acosh(v) = ln(v + sqrt(v^2-1)) and returns z; domain
// v >= 1.
func (z *Decimal) Acosh(v *Decimal) *Decimal {
	one := decFromInt(1)
	if !v.IsFinite() || v.Less(one) {
		return z.setUndef()
	}
	inner := new(Decimal).Sub(new(Decimal).Mul(v, v), one)
	sq := new(Decimal).Sqrt(inner)
	arg := new(Decimal).Add(v, sq)
	z.ensure()
	z.i.Copy(new(Decimal).Ln(arg).i)
	return z
}

// Atanh sets z to atanh(v) = 1/2*ln((1+v)/(1-v)) and returns z; domain
// |v| < 1.
func (z *Decimal) Atanh(v *Decimal) *Decimal {
	one := decFromInt(1)
	if !v.IsFinite() || !v.Less(one) || !new(Decimal).Neg(v).Less(one) {
		return z.setUndef()
	}
	num := new(Decimal).Add(one, v)
	den := new(Decimal).Sub(one, v)
	ratio := new(Decimal).Div(num, den)
	ln := new(Decimal).Ln(ratio)
	z.ensure()
	z.i.Copy(new(Decimal).Div(ln, decFromInt(2)).i)
	return z
}

// Hypot sets z to sqrt(a^2 + b^2) and returns z.
func (z *Decimal) Hypot(a, b *Decimal) *Decimal {
	if !a.IsFinite() || !b.IsFinite() {
		return z.setUndef()
	}
	sum := new(Decimal).Add(new(Decimal).Mul(a, a), new(Decimal).Mul(b, b))
	z.ensure()
	z.i.Copy(new(Decimal).Sqrt(sum).i)
	return z
}

// Hypot3 sets z to sqrt(a^2 + b^2 + c^2) and returns z.
func (z *Decimal) Hypot3(a, b, c *Decimal) *Decimal {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return z.setUndef()
	}
	sum := new(Decimal).Add(new(Decimal).Mul(a, a), new(Decimal).Mul(b, b))
	sum = new(Decimal).Add(sum, new(Decimal).Mul(c, c))
	z.ensure()
	z.i.Copy(new(Decimal).Sqrt(sum).i)
	return z
}
