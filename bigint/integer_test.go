package bigint

import "testing"

func TestParseSentinelsAndRadix(t *testing.T) {
	if !NewString("undefined").IsUndefined() {
		t.Errorf("undefined should parse to Undef")
	}
	if !NewString("nan").IsNaN() {
		t.Errorf("nan should parse to NaN")
	}
	if g := NewString("+infinity"); g.Sign() != SignPosInf {
		t.Errorf("+infinity parse failed")
	}
	if g := NewString("-infinity"); g.Sign() != SignNegInf {
		t.Errorf("-infinity parse failed")
	}
	tests := []struct {
		text string
		want int64
	}{
		{"0x10", 16},
		{"0b1010", 10},
		{"0o17", 15},
		{"-42", -42},
		{"+7", 7},
		{"1,234", 1234},
	}
	for _, test := range tests {
		got, ok := NewString(test.text).Int64()
		if !ok || got != test.want {
			t.Errorf("NewString(%q) = %v (ok=%v), want %d", test.text, got, ok, test.want)
		}
	}
}

func TestAddSign(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"5", "3", "8"},
		{"-5", "-3", "-8"},
		{"5", "-3", "2"},
		{"-5", "3", "-2"},
		{"5", "-5", "0"},
	}
	for _, test := range tests {
		got := new(Integer).Add(NewString(test.a), NewString(test.b))
		if got.String() != test.want {
			t.Errorf("%s + %s = %s, want %s", test.a, test.b, got.String(), test.want)
		}
	}
}

func TestInfinityAndUndef(t *testing.T) {
	if got := new(Integer).Add(PosInf(), NegInf()); !got.IsUndefined() {
		t.Errorf("+inf + -inf should be Undef, got %s", got.String())
	}
	if got := new(Integer).Add(NewInt64(5), PosInf()); got.Sign() != SignPosInf {
		t.Errorf("finite + inf should be inf")
	}
	if got := new(Integer).Mul(PosInf(), New()); !got.IsUndefined() {
		t.Errorf("inf * 0 should be Undef")
	}
	if got := new(Integer).Div(NewInt64(5), New()); !got.IsUndefined() {
		t.Errorf("5/0 should be Undef")
	}
	if got := new(Integer).Add(Undef(), NewInt64(1)); !got.IsUndefined() {
		t.Errorf("Undef + x should be Undef")
	}
	if NaN().Equal(NaN()) {
		t.Errorf("NaN should never equal NaN")
	}
}

func TestModAndDivRem(t *testing.T) {
	r := new(Integer).Mod(NewInt64(-5), NewInt64(3))
	if r.String() != "1" {
		t.Errorf("(-5) mod 3 = %s, want 1 (remainder is always non-negative)", r.String())
	}
	// (a/b)*b + (a mod b) == a, for every sign combination.
	cases := []struct{ a, b int64 }{
		{5, 3}, {-5, 3}, {5, -3}, {-5, -3},
	}
	for _, c := range cases {
		a, b := NewInt64(c.a), NewInt64(c.b)
		var qot, rem Integer
		qot.DivRem(a, b, &rem)
		if rem.IsNegative() {
			t.Errorf("DivRem(%d, %d): remainder %s is negative, want >= 0", c.a, c.b, rem.String())
		}
		if !rem.Less(new(Integer).Abs(b)) && !rem.IsZero() {
			t.Errorf("DivRem(%d, %d): remainder %s not < |b|", c.a, c.b, rem.String())
		}
		recon := new(Integer).Add(new(Integer).Mul(&qot, b), &rem)
		if !recon.Equal(a) {
			t.Errorf("DivRem(%d, %d) identity failed: got %s, want %d", c.a, c.b, recon.String(), c.a)
		}
	}
}

func TestCompareOrdering(t *testing.T) {
	vals := []*Integer{NegInf(), NewInt64(-5), New(), NewInt64(5), PosInf()}
	for i := 0; i < len(vals)-1; i++ {
		if !vals[i].Less(vals[i+1]) {
			t.Errorf("expected vals[%d] < vals[%d]", i, i+1)
		}
	}
	if _, ok := NaN().Cmp(NewInt64(1)); ok {
		t.Errorf("comparisons involving NaN should be undefined")
	}
}

func TestIncDec(t *testing.T) {
	x := NewInt64(-1)
	inc := new(Integer).Inc(x)
	if inc.String() != "0" {
		t.Errorf("Inc(-1) = %s, want 0", inc.String())
	}
	dec := new(Integer).Dec(inc)
	if dec.String() != "-1" {
		t.Errorf("Dec(0) = %s, want -1", dec.String())
	}
}

func TestGcdPowRoot(t *testing.T) {
	g := new(Integer).Gcd(NewInt64(54), NewInt64(24))
	if g.String() != "6" {
		t.Errorf("gcd(54,24) = %s, want 6", g.String())
	}
	p := new(Integer).Pow(NewInt64(-2), 3)
	if p.String() != "-8" {
		t.Errorf("(-2)**3 = %s, want -8", p.String())
	}
	r := new(Integer).Root(NewInt64(1000), 3)
	if r.String() != "10" {
		t.Errorf("root(1000,3) = %s, want 10", r.String())
	}
}
