package decimal

import "testing"

func TestParseAndString(t *testing.T) {
	tests := []struct{ text, want string }{
		{"1.5", "1." + fracDigits("5", Scale())},
		{"3", "3." + zeros(Scale())},
		{"1/4", "0." + fracDigits("25", Scale())},
		{"-2.25", "-2." + fracDigits("25", Scale())},
	}
	for _, test := range tests {
		got := NewString(test.text).String()
		if got != test.want {
			t.Errorf("NewString(%q).String() = %s, want %s", test.text, got, test.want)
		}
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func fracDigits(digits string, scale int) string {
	return digits + zeros(scale-len(digits))
}

func TestSentinels(t *testing.T) {
	if !NewString("undefined").IsUndefined() {
		t.Errorf("undefined should parse to Undef")
	}
	if !NewString("nan").IsNaN() {
		t.Errorf("nan should parse to NaN")
	}
	if got := NewString("+infinity"); !got.IsInfinite() || got.IsNegative() {
		t.Errorf("+infinity parse failed")
	}
}

func TestArithmetic(t *testing.T) {
	sum := new(Decimal).Add(NewString("1.5"), NewString("2.25"))
	if !sum.Equal(NewString("3.75")) {
		t.Errorf("1.5 + 2.25 = %s, want 3.75", sum.String())
	}
	prod := new(Decimal).Mul(NewString("2.5"), NewString("4"))
	if !prod.Equal(NewString("10")) {
		t.Errorf("2.5 * 4 = %s, want 10", prod.String())
	}
	quot := new(Decimal).Div(NewString("1"), NewString("4"))
	if !quot.Equal(NewString("0.25")) {
		t.Errorf("1 / 4 = %s, want 0.25", quot.String())
	}
}

func TestDivByZero(t *testing.T) {
	got := new(Decimal).Div(NewString("1"), NewString("0"))
	if !got.IsUndefined() {
		t.Errorf("1/0 should be Undef, got %s", got.String())
	}
}

func TestCeilFloorAwayTowardZero(t *testing.T) {
	// Per the original implementation: ceil moves away from zero (adds a
	// whole unit in the direction of the sign); floor moves toward zero
	// (subtracts one in the direction of the sign) — for a negative
	// value that "toward zero" step overshoots past the truncated value
	// to the next unit below it, exactly as the original computes it.
	c := new(Decimal).Ceil(NewString("1.25"))
	if !c.Equal(NewString("2")) {
		t.Errorf("ceil(1.25) = %s, want 2", c.String())
	}
	f := new(Decimal).Floor(NewString("1.25"))
	if !f.Equal(NewString("1")) {
		t.Errorf("floor(1.25) = %s, want 1", f.String())
	}
	cNeg := new(Decimal).Ceil(NewString("-1.25"))
	if !cNeg.Equal(NewString("-2")) {
		t.Errorf("ceil(-1.25) = %s, want -2", cNeg.String())
	}
	fNeg := new(Decimal).Floor(NewString("-1.25"))
	if !fNeg.Equal(NewString("0")) {
		t.Errorf("floor(-1.25) = %s, want 0", fNeg.String())
	}
}

func TestPowRootGcdSqrt(t *testing.T) {
	p := new(Decimal).Pow(NewString("2"), 10)
	if !p.Equal(NewString("1024")) {
		t.Errorf("2**10 = %s, want 1024", p.String())
	}
	r := new(Decimal).Root(NewString("8"), 3)
	if !r.Equal(NewString("2")) {
		t.Errorf("root(8,3) = %s, want 2", r.String())
	}
	s := new(Decimal).Sqrt(NewString("4"))
	if !s.Equal(NewString("2")) {
		t.Errorf("sqrt(4) = %s, want 2", s.String())
	}
	g := new(Decimal).Gcd(NewString("54"), NewString("24"))
	if !g.Equal(NewString("6")) {
		t.Errorf("gcd(54,24) = %s, want 6", g.String())
	}
}

func TestRounding(t *testing.T) {
	SetRoundingMode(HalfEven)
	got := new(Decimal).Round(NewString("2.5"), 0)
	if !got.Equal(NewString("2")) {
		t.Errorf("half_even round(2.5,0) = %s, want 2", got.String())
	}
	got = new(Decimal).Round(NewString("3.5"), 0)
	if !got.Equal(NewString("4")) {
		t.Errorf("half_even round(3.5,0) = %s, want 4", got.String())
	}
}
