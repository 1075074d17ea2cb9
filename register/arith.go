package register

func maxLen(a, b []Word) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}

func wordOr0(w []Word, i int) Word {
	if i < len(w) {
		return w[i]
	}
	return 0
}

// And sets z = z & x, growing the shorter operand with zero words as
// described by the binary register's word-parallel bitwise contract, and
// returns z.
func (z *Register) And(x *Register) *Register {
	n := maxLen(z.w, x.w)
	for i := 0; i < n; i++ {
		a, b := wordOr0(z.w, i), wordOr0(x.w, i)
		z.SetWordAt(i, a&b)
	}
	return z.Trim()
}

// Or sets z = z | x and returns z.
func (z *Register) Or(x *Register) *Register {
	n := maxLen(z.w, x.w)
	for i := 0; i < n; i++ {
		a, b := wordOr0(z.w, i), wordOr0(x.w, i)
		z.SetWordAt(i, a|b)
	}
	return z.Trim()
}

// Xor sets z = z ^ x and returns z.
func (z *Register) Xor(x *Register) *Register {
	n := maxLen(z.w, x.w)
	for i := 0; i < n; i++ {
		a, b := wordOr0(z.w, i), wordOr0(x.w, i)
		z.SetWordAt(i, a^b)
	}
	return z.Trim()
}

// Not sets z = ~z (one's complement, word by word) and returns z.
func (z *Register) Not() *Register {
	for i, w := range z.w {
		z.w[i] = ^w & Mask
	}
	return z
}

// Lsh sets z <<= k and returns z. The shift is split into a whole-word shift
// (prepending zero words) followed by a bit-level cascade that propagates
// the upper bits of each word into the next, using a double-width
// intermediate to avoid overflow.
func (z *Register) Lsh(k uint) *Register {
	if k == 0 {
		return z.Trim()
	}
	wordShift := int(k / WordBits)
	bitShift := k % WordBits
	src := append([]Word(nil), z.w...)
	out := make([]Word, len(src)+wordShift+1)
	for i, w := range src {
		out[i+wordShift] = w
	}
	if bitShift > 0 {
		for i := len(out) - 1; i > wordShift; i-- {
			cur := DWord(out[i])
			prev := DWord(out[i-1])
			combined := (cur<<WordBits | prev) << bitShift
			out[i] = Word(combined >> WordBits)
		}
		out[wordShift] <<= bitShift
	}
	z.w = out
	return z.Trim()
}

// Rsh sets z >>= k and returns z. Whole words are erased from the bottom,
// then remaining bits cascade downward from the top using a double-width
// intermediate.
func (z *Register) Rsh(k uint) *Register {
	wordShift := int(k / WordBits)
	bitShift := k % WordBits
	if wordShift >= len(z.w) {
		z.w = []Word{0}
		return z
	}
	src := append([]Word(nil), z.w[wordShift:]...)
	if bitShift > 0 {
		for i := 0; i < len(src); i++ {
			hi := DWord(0)
			if i+1 < len(src) {
				hi = DWord(src[i+1])
			}
			combined := (hi<<WordBits | DWord(src[i])) >> bitShift
			src[i] = Word(combined & DWord(Mask))
		}
	}
	z.w = src
	return z.Trim()
}

// Add sets z = x + y using the ripple-propagation bit-hack recurrence:
// while b != 0, carry = (a & b) << 1; a = a ^ b; b = carry. Terminates in at
// most WordBits * max(len(x),len(y)) iterations. Returns z.
func (z *Register) Add(x, y *Register) *Register {
	n := maxLen(x.w, y.w) + 1
	a := make([]Word, n)
	b := make([]Word, n)
	copy(a, x.w)
	copy(b, y.w)
	for wordsNonzero(b) {
		carry := shiftLeftOneWithCarry(and(a, b))
		a = xorW(a, b)
		b = carry
	}
	z.w = a
	return z.Trim()
}

func wordsNonzero(w []Word) bool {
	for _, v := range w {
		if v != 0 {
			return true
		}
	}
	return false
}

func and(a, b []Word) []Word {
	out := make([]Word, len(a))
	for i := range a {
		out[i] = a[i] & b[i]
	}
	return out
}

func xorW(a, b []Word) []Word {
	out := make([]Word, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// shiftLeftOneWithCarry shifts the whole multi-word value w left by one bit,
// propagating carries between words; overflow past the top word is
// discarded (the caller sizes w with one spare word to absorb it).
func shiftLeftOneWithCarry(w []Word) []Word {
	out := make([]Word, len(w))
	var carry Word
	for i, v := range w {
		out[i] = (v << 1) | carry
		carry = v >> (WordBits - 1)
	}
	return out
}

// Sub sets z = x - y. If y >= x, the result is zero (Registers are
// unsigned); otherwise z = x + (two's complement of y), discarding the
// overflow word. Returns z.
func (z *Register) Sub(x, y *Register) *Register {
	if x.Cmp(y) < 0 {
		z.w = []Word{0}
		return z
	}
	n := maxLen(x.w, y.w) + 1
	comp := NewSize(n, 0)
	for i := 0; i < n; i++ {
		comp.w[i] = ^wordOr0(y.w, i) & Mask
	}
	comp.Add(comp, NewSize(1, 1))
	xPad := NewSize(n, 0)
	copy(xPad.w, x.w)
	z.Add(xPad, comp)
	if len(z.w) > n {
		z.w = z.w[:n]
	}
	return z.Trim()
}

// Mul sets z = x * y using shift-and-add: for each set bit i of y, add
// x<<i to an accumulator. Returns z.
func (z *Register) Mul(x, y *Register) *Register {
	acc := New()
	shifted := x.Clone()
	yc := y.Clone()
	for yc.IsNonzero() {
		if yc.w[0]&1 != 0 {
			acc.Add(acc, shifted)
		}
		shifted = shifted.Clone().Lsh(1)
		yc.Rsh(1)
	}
	z.Copy(acc)
	return z
}

// DivMod sets z to the quotient and rem to the remainder of x / y using the
// bit-at-a-time restoring division algorithm: delta = leadBit(x)-leadBit(y);
// shift y left by delta; then for i from delta down to 0, if the running
// remainder is >= the (shifted) divisor, set quotient bit i and subtract.
// On division by zero, or when x < y, the quotient is 0 and the remainder
// is x.
func (z *Register) DivMod(x, y *Register, rem *Register) *Register {
	rem.Copy(x)
	if !y.IsNonzero() || x.Cmp(y) < 0 {
		z.w = []Word{0}
		return z
	}
	lx, ly := x.LeadBit(), y.LeadBit()
	delta := lx - ly
	divisor := y.Clone().Lsh(delta)
	q := New()
	for i := delta; ; i-- {
		if rem.Cmp(divisor) >= 0 {
			rem.Sub(rem, divisor)
			q.SetBit(i+1, true)
		}
		if i == 0 {
			break
		}
		divisor.Rsh(1)
	}
	z.Copy(q.Trim())
	return z
}

// Div sets z = x / y (see DivMod) and returns z.
func (z *Register) Div(x, y *Register) *Register {
	return z.DivMod(x, y, New())
}

// Mod sets z = x % y (see DivMod) and returns z.
func (z *Register) Mod(x, y *Register) *Register {
	var q Register
	q.DivMod(x, y, z)
	return z
}
