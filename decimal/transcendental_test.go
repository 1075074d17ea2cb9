package decimal

import (
	"testing"

	"github.com/db47h/apm/bigint"
)

// tolerance returns 10^-(Scale()-2), the convergence tolerance the spec
// prescribes for transcendental properties.
func tolerance() *Decimal { return &Decimal{i: bigint.NewInt64(100)} }

func closeEnough(a, b *Decimal) bool {
	diff := new(Decimal).Abs(new(Decimal).Sub(a, b))
	return diff.Less(tolerance()) || diff.Equal(tolerance())
}

func TestLnBasics(t *testing.T) {
	if got := new(Decimal).Ln(NewString("1")); !got.Equal(New()) {
		t.Errorf("ln(1) = %s, want 0", got.String())
	}
	if got := new(Decimal).Ln(E()); !closeEnough(got, NewString("1")) {
		t.Errorf("ln(e) = %s, want ~1", got.String())
	}
	if got := new(Decimal).Ln(NewString("-1")); !got.IsUndefined() {
		t.Errorf("ln(-1) should be Undef")
	}
}

func TestLnFactorsPowersOfTwo(t *testing.T) {
	// ln(8) = 3*ln(2)
	got := new(Decimal).Ln(NewString("8"))
	want := new(Decimal).Mul(Ln2(), NewString("3"))
	if !closeEnough(got, want) {
		t.Errorf("ln(8) = %s, want ~%s", got.String(), want.String())
	}
}

func TestSinCos(t *testing.T) {
	if got := new(Decimal).Sin(NewString("0")); !closeEnough(got, New()) {
		t.Errorf("sin(0) = %s, want ~0", got.String())
	}
	if got := new(Decimal).Sin(NewString("90")); !closeEnough(got, NewString("1")) {
		t.Errorf("sin(90) = %s, want ~1", got.String())
	}
	if got := new(Decimal).Cos(NewString("0")); !closeEnough(got, NewString("1")) {
		t.Errorf("cos(0) = %s, want ~1", got.String())
	}
}

func TestAsinAcos(t *testing.T) {
	asin1 := new(Decimal).Asin(NewString("1"))
	acos0 := new(Decimal).Acos(NewString("0"))
	if !closeEnough(asin1, acos0) {
		t.Errorf("asin(1) = %s, acos(0) = %s, want equal", asin1.String(), acos0.String())
	}
	halfPi := new(Decimal).Div(Pi(), NewString("2"))
	if !closeEnough(asin1, halfPi) {
		t.Errorf("asin(1) = %s, want ~pi/2 = %s", asin1.String(), halfPi.String())
	}
}

func TestSinhCoshIdentity(t *testing.T) {
	x := NewString("0.5")
	sinh := new(Decimal).Sinh(x)
	cosh := new(Decimal).Cosh(x)
	// cosh^2 - sinh^2 = 1
	lhs := new(Decimal).Sub(new(Decimal).Mul(cosh, cosh), new(Decimal).Mul(sinh, sinh))
	if !closeEnough(lhs, NewString("1")) {
		t.Errorf("cosh^2-sinh^2 = %s, want ~1", lhs.String())
	}
}

func TestAsinhRoundTrip(t *testing.T) {
	x := NewString("1.25")
	a := new(Decimal).Asinh(x)
	back := new(Decimal).Sinh(a)
	if !closeEnough(back, x) {
		t.Errorf("sinh(asinh(1.25)) = %s, want ~1.25", back.String())
	}
}

func TestHypot(t *testing.T) {
	got := new(Decimal).Hypot(NewString("3"), NewString("4"))
	if !closeEnough(got, NewString("5")) {
		t.Errorf("hypot(3,4) = %s, want ~5", got.String())
	}
}

func TestLogExactIntegerRounding(t *testing.T) {
	got := new(Decimal).Log(NewString("8"), NewString("2"))
	if !got.Equal(NewString("3")) {
		t.Errorf("log_2(8) = %s, want exactly 3", got.String())
	}
}
