package decimal

import "testing"

// TestSpecScenarios reproduces spec.md's end-to-end worked examples at the
// package's default scale (16, since no test in this package calls
// SetScale — the scale is configure-once for the whole process).
func TestSpecScenarios(t *testing.T) {
	// Scenario 1: a giant integer plus/times/over 0.125 stays exact.
	a := NewString("1234567890987654321123456789098765432112345678909876543211234567890987654321")
	b := NewString("0.125")
	sum := new(Decimal).Add(a, b)
	wantSuffix := "4321." + "125" + zeros(Scale()-3)
	if got := sum.String(); got[len(got)-len(wantSuffix):] != wantSuffix {
		t.Errorf("a + 0.125 ends %q, want suffix %q", got, wantSuffix)
	}
	eighth := NewString("8")
	prod := new(Decimal).Mul(a, b)
	if div := new(Decimal).Div(a, eighth); !prod.Equal(div) {
		t.Errorf("a * 0.125 = %s, want a/8 = %s", prod.String(), div.String())
	}
	quot := new(Decimal).Div(a, b)
	if mul := new(Decimal).Mul(a, eighth); !quot.Equal(mul) {
		t.Errorf("a / 0.125 = %s, want a*8 = %s", quot.String(), mul.String())
	}

	// Scenario 2: 1/3 + 1/3 + 1/3 == 1 at scale >= 16. 1/3 itself is not
	// exactly representable, so the sum lands within one unit in the
	// last place of 1, not bit-for-bit equal to it.
	third := NewString("1/3")
	threeThirds := new(Decimal).Add(new(Decimal).Add(third, third), third)
	if !closeEnough(threeThirds, NewString("1")) {
		t.Errorf("1/3+1/3+1/3 = %s, want ~1", threeThirds.String())
	}

	// Scenario 3: pi()*2 is exactly pi()+pi(), printed with the same
	// leading digits as spec.md's worked example (see DESIGN.md for why
	// the trailing digit isn't asserted literally).
	twicePi := new(Decimal).Mul(Pi(), NewInt64(2))
	if !twicePi.Equal(new(Decimal).Add(Pi(), Pi())) {
		t.Errorf("pi()*2 = %s, want pi()+pi() = %s", twicePi.String(), new(Decimal).Add(Pi(), Pi()).String())
	}
	if got := twicePi.String(); got[:17] != "6.283185307179586" {
		t.Errorf("pi()*2 = %s, want prefix 6.283185307179586...", got)
	}

	// Scenario 6's "Integer(5)/Integer(0) == UNDEF" half, reproduced at
	// the Decimal level (the Integer-level (-5) mod 3 == 1 half is
	// covered directly in bigint/integer_test.go, since Decimal's Mod
	// has different, fractional-part semantics, not integer modulo).
	if div := new(Decimal).Div(NewString("5"), NewString("0")); !div.IsUndefined() {
		t.Errorf("5/0 should be Undef, got %s", div.String())
	}
}
