package whole

import (
	"strings"

	"github.com/db47h/apm/register"
)

// Word and DWord mirror the register package's word types.
type Word = register.Word
type DWord = register.DWord

const wordBits = register.WordBits

// A Whole is a non-negative, arbitrary-size integer. The zero value is not
// ready for use; call New or one of the other constructors.
type Whole struct {
	reg *register.Register
}

// New returns a Whole with value 0.
func New() *Whole {
	return &Whole{reg: register.New()}
}

// NewWord returns a Whole with value w.
func NewWord(w Word) *Whole {
	return &Whole{reg: register.NewSize(1, w).Trim()}
}

// NewUint64 returns a Whole holding the value of v.
func NewUint64(v uint64) *Whole {
	z := New()
	hi := Word(v >> wordBits)
	lo := Word(v)
	z.reg.SetWordAt(0, lo)
	if hi != 0 {
		z.reg.SetWordAt(1, hi)
	}
	z.reg.Trim()
	return z
}

// Copy sets z to a deep copy of x and returns z.
func (z *Whole) Copy(x *Whole) *Whole {
	if z.reg == nil {
		z.reg = register.New()
	}
	z.reg.Copy(x.reg)
	return z
}

// Clone returns a new Whole holding a deep copy of x.
func (x *Whole) Clone() *Whole {
	return new(Whole).Copy(x)
}

func (z *Whole) ensure() {
	if z.reg == nil {
		z.reg = register.New()
	}
}

func (z *Whole) trim() *Whole {
	z.reg.Trim()
	return z
}

// Len returns the number of words backing z.
func (z *Whole) Len() int {
	z.ensure()
	return z.reg.Len()
}

// WordAt returns word i of z, or 0 past the end.
func (z *Whole) WordAt(i int) Word {
	z.ensure()
	return z.reg.WordAt(i)
}

// IsZero reports whether z == 0.
func (z *Whole) IsZero() bool {
	z.ensure()
	return !z.reg.IsNonzero()
}

// IsOdd reports whether z is odd: the low bit of word 0.
func (z *Whole) IsOdd() bool {
	return z.WordAt(0)&1 != 0
}

// IsEven reports whether z is even.
func (z *Whole) IsEven() bool {
	return !z.IsOdd()
}

// Cmp compares z and x, returning -1, 0, +1 as z<x, z==x, z>x.
func (z *Whole) Cmp(x *Whole) int {
	z.ensure()
	x.ensure()
	return z.reg.Cmp(x.reg)
}

// Register returns the Whole's backing register, trimmed. The caller must
// not mutate the returned value.
func (z *Whole) Register() *register.Register {
	z.ensure()
	z.trim()
	return z.reg
}

// SetRegister sets z to the value of the (already trimmed) register r and
// returns z. r is copied.
func (z *Whole) SetRegister(r *register.Register) *Whole {
	z.ensure()
	z.reg.Copy(r).Trim()
	return z
}

// NewString parses text as an unsigned integer in the given radix, one of
// 2, 8, 10 or 16. Commas and whitespace are ignored; hex digits accept
// either case. Any character outside the accepted digit range for base sets
// ok to false and returns a zeroed Whole.
func NewString(text string, base int) (z *Whole, ok bool) {
	ok = true
	var b strings.Builder
	for _, c := range text {
		switch {
		case c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c >= '0' && c <= '9':
			if int(c-'0') >= base {
				ok = false
				continue
			}
			b.WriteRune(c)
		case (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
			if base != 16 {
				ok = false
				continue
			}
			b.WriteRune(c)
		default:
			ok = false
		}
	}
	z = &Whole{reg: register.NewString(b.String(), base).Trim()}
	if !ok {
		z = New()
	}
	return z, ok
}

// Uint64 returns the value of z as a uint64 and true, or (0, false) if z
// does not fit in 64 bits.
func (z *Whole) Uint64() (uint64, bool) {
	z.ensure()
	if z.reg.Len() > 2 {
		return 0, false
	}
	lo := uint64(z.reg.WordAt(0))
	hi := uint64(z.reg.WordAt(1))
	return hi<<wordBits | lo, true
}

// String returns the base-10 representation of z with a comma inserted
// every three digits from the least significant end.
func (z *Whole) String() string {
	return z.Text(10, true)
}

// Text returns a representation of z in base. When group is true and base
// is 10, a comma is inserted every three digits from the least significant
// end. Bases 2, 8 and 16 carry the conventional 0b/0o/0x prefix.
func (z *Whole) Text(base int, group bool) string {
	z.ensure()
	digits := z.reg.Text(base)
	if base == 10 && group {
		digits = groupThousands(digits)
	}
	switch base {
	case 2:
		return "0b" + digits
	case 8:
		return "0o" + digits
	case 16:
		return "0x" + digits
	default:
		return digits
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	n := len(digits)
	var b strings.Builder
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
