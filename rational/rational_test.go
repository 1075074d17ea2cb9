package rational

import (
	"testing"

	"github.com/db47h/apm/bigint"
	"github.com/db47h/apm/whole"
)

func TestParseSimpleAndMixed(t *testing.T) {
	tests := []struct {
		text     string
		num, den int64
	}{
		{"1/2", 1, 2},
		{"-1/2", -1, 2},
		{"3", 3, 1},
		{"1 2/3", 5, 3},
		{"-1 2/3", -5, 3},
	}
	for _, test := range tests {
		r := NewString(test.text)
		if !r.IsValid() {
			t.Fatalf("NewString(%q): expected valid rational", test.text)
		}
		n, _ := r.Numerator().Int64()
		d, _ := r.Denominator().Uint64()
		if n != test.num || int64(d) != test.den {
			t.Errorf("NewString(%q) = %d/%d, want %d/%d", test.text, n, d, test.num, test.den)
		}
	}
}

func TestZeroDenominatorFails(t *testing.T) {
	if _, ok := NewIntegerWhole(bigint.NewInt64(5), whole.New()); ok {
		t.Errorf("zero denominator should not construct")
	}
}

func TestAddSubMulDiv(t *testing.T) {
	half := NewString("1/2")
	third := NewString("1/3")

	sum := new(Rational).Add(half, third)
	if !sum.Equal(NewString("5/6")) {
		t.Errorf("1/2 + 1/3 = %s, want 5/6", sum.String())
	}

	diff := new(Rational).Sub(half, third)
	if !diff.Equal(NewString("1/6")) {
		t.Errorf("1/2 - 1/3 = %s, want 1/6", diff.String())
	}

	prod := new(Rational).Mul(half, third)
	if !prod.Equal(NewString("1/6")) {
		t.Errorf("1/2 * 1/3 = %s, want 1/6", prod.String())
	}

	quot := new(Rational).Div(half, third)
	if !quot.Equal(NewString("3/2")) {
		t.Errorf("(1/2) / (1/3) = %s, want 3/2", quot.String())
	}
}

func TestReduce(t *testing.T) {
	r := NewString("6/8")
	red := new(Rational).Reduce(r)
	if !red.Equal(NewString("3/4")) {
		t.Errorf("reduce(6/8) = %s, want 3/4", red.String())
	}
	n, _ := red.Numerator().Int64()
	d, _ := red.Denominator().Uint64()
	if n != 3 || d != 4 {
		t.Errorf("reduce(6/8) representation = %d/%d, want 3/4", n, d)
	}
}

func TestMod(t *testing.T) {
	// (7/2) mod (3/2): trunc((7/2)/(3/2)) = trunc(7/3) = 2; 7/2 - 2*3/2 = 1/2
	got := new(Rational).Mod(NewString("7/2"), NewString("3/2"))
	if !got.Equal(NewString("1/2")) {
		t.Errorf("(7/2) mod (3/2) = %s, want 1/2", got.String())
	}
}

func TestDivByZeroNumerator(t *testing.T) {
	got := new(Rational).Div(NewString("1/2"), New())
	if got.IsValid() {
		t.Errorf("division by zero-numerator rational should be invalid")
	}
}

func TestCmp(t *testing.T) {
	if !NewString("1/3").Less(NewString("1/2")) {
		t.Errorf("1/3 should be less than 1/2")
	}
	if !NewString("2/4").Equal(NewString("1/2")) {
		t.Errorf("2/4 should equal 1/2 without reducing")
	}
}
