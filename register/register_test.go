package register

import "testing"

func TestNewString(t *testing.T) {
	tests := []struct {
		text string
		base int
		want string
	}{
		{"1010", 2, "10"},
		{"17", 8, "15"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"123456789098765432112345678909876543211234567890", 10,
			"123456789098765432112345678909876543211234567890"},
	}
	for _, test := range tests {
		got := NewString(test.text, test.base).Text(10)
		if got != test.want {
			t.Errorf("NewString(%q, %d) = %s, want %s", test.text, test.base, got, test.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	a := NewString("123456789012345678901234567890", 10)
	b := NewString("987654321098765432109876543210", 10)
	var sum Register
	sum.Add(a, b)
	if got := sum.Text(10); got != "1111111110111111111011111111100" {
		t.Errorf("Add = %s", got)
	}
	var diff Register
	diff.Sub(&sum, a)
	if diff.Cmp(b) != 0 {
		t.Errorf("Sub round trip = %s, want %s", diff.Text(10), b.Text(10))
	}
	// underflow saturates to 0
	var z Register
	z.Sub(a, b)
	if z.IsNonzero() {
		t.Errorf("Sub underflow = %s, want 0", z.Text(10))
	}
}

func TestMulDivMod(t *testing.T) {
	a := NewString("123456789", 10)
	b := NewString("987654321", 10)
	var prod Register
	prod.Mul(a, b)
	if got, want := prod.Text(10), "121932631112635269"; got != want {
		t.Errorf("Mul = %s, want %s", got, want)
	}
	var q, r Register
	q.DivMod(&prod, b, &r)
	if q.Cmp(a) != 0 || r.IsNonzero() {
		t.Errorf("DivMod = (%s, %s), want (%s, 0)", q.Text(10), r.Text(10), a.Text(10))
	}

	x := NewString("100", 10)
	y := NewString("7", 10)
	var qq, rr Register
	qq.DivMod(x, y, &rr)
	if qq.Text(10) != "14" || rr.Text(10) != "2" {
		t.Errorf("100/7 = (%s, %s), want (14, 2)", qq.Text(10), rr.Text(10))
	}
}

func TestBitwise(t *testing.T) {
	a := NewString("1010", 2)
	b := NewString("0110", 2)
	var and, or, xor Register
	and.Copy(a).And(b)
	or.Copy(a).Or(b)
	xor.Copy(a).Xor(b)
	if and.Text(2) != "10" {
		t.Errorf("And = %s, want 10", and.Text(2))
	}
	if or.Text(2) != "1110" {
		t.Errorf("Or = %s, want 1110", or.Text(2))
	}
	if xor.Text(2) != "1100" {
		t.Errorf("Xor = %s, want 1100", xor.Text(2))
	}
}

func TestShifts(t *testing.T) {
	a := NewString("1", 10)
	a.Lsh(40)
	if got, want := a.Text(16), "10000000000"; got != want {
		t.Errorf("1<<40 = %s, want %s", got, want)
	}
	a.Rsh(40)
	if a.Text(10) != "1" {
		t.Errorf("round trip shift = %s, want 1", a.Text(10))
	}
}

func TestLeadLastBit(t *testing.T) {
	z := New()
	if z.LeadBit() != 0 || z.LastBit() != 0 {
		t.Errorf("zero register: lead=%d last=%d, want 0,0", z.LeadBit(), z.LastBit())
	}
	a := NewString("1000", 2) // 8
	if a.LeadBit() != 4 {
		t.Errorf("LeadBit(8) = %d, want 4", a.LeadBit())
	}
	if a.LastBit() != 4 {
		t.Errorf("LastBit(8) = %d, want 4", a.LastBit())
	}
	b := NewString("1100", 2) // 12
	if b.LastBit() != 3 {
		t.Errorf("LastBit(12) = %d, want 3", b.LastBit())
	}
}

func TestCmp(t *testing.T) {
	a := NewString("100", 10)
	b := NewString("99", 10)
	if a.Cmp(b) <= 0 {
		t.Errorf("100 should be > 99")
	}
	if b.Cmp(a) >= 0 {
		t.Errorf("99 should be < 100")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("a should equal itself")
	}
}
