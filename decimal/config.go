package decimal

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/db47h/apm/bigint"
)

// Scale limits, carried verbatim from the original implementation's
// config.h: MinScale, MaxScale, and the default scale used until the
// first successful SetScale call.
const (
	MinScale     = 8
	MaxScale     = 10000
	DefaultScale = 16
)

// RoundingMode selects how Round resolves a value that falls exactly
// between two representable decimals, or how Ceil/Floor-adjacent rounding
// behaves for Round's truncation step.
type RoundingMode byte

// Rounding modes, named after the modes the original implementation
// stores but (per the spec's REDESIGN FLAGS) actually wires into Round.
const (
	TowardZero RoundingMode = iota
	HalfUp
	HalfDown
	HalfEven
	HalfOdd
	Ceil
	Floor
	AwayFromZero
)

//go:generate stringer -type=RoundingMode

func (m RoundingMode) String() string {
	switch m {
	case TowardZero:
		return "toward_zero"
	case HalfUp:
		return "half_up"
	case HalfDown:
		return "half_down"
	case HalfEven:
		return "half_even"
	case HalfOdd:
		return "half_odd"
	case Ceil:
		return "ceil"
	case Floor:
		return "floor"
	case AwayFromZero:
		return "away_from_zero"
	default:
		return "unknown"
	}
}

// config is the process-wide Decimal configuration singleton: scale is
// fixed once (first caller wins), after which the cached denominator and
// transcendental constants never change. configured is an atomic fast
// path so readers never pay the sync.Once cost after the first call, and
// once is what actually serializes the one-time initialization against
// concurrent first callers. Because configured is set before pi, e and ln2
// are built (see configure), a goroutine that reads them while the first
// configuration is still running can find them nil.
type config struct {
	once        sync.Once
	configured  atomic.Bool
	scale       int
	roundMode   atomic.Int32
	denominator *bigint.Integer
	pi, e, ln2  *Decimal
}

var global config

func init() {
	global.roundMode.Store(int32(HalfEven))
}

// Scale returns the active scale, defaulting and locking it in at
// DefaultScale if no SetScale call has happened yet.
func Scale() int {
	ensureConfigured()
	return global.scale
}

// SetScale fixes the process-wide scale to s, clamped to
// [MinScale, MaxScale]. Only the first call has any effect; every
// subsequent call (with any argument) is silently ignored, matching the
// original implementation's configure-once semantics.
func SetScale(s int) {
	configure(s)
}

// CurrentRoundingMode returns the active rounding mode (HalfEven by
// default).
func CurrentRoundingMode() RoundingMode {
	return decimalRoundingMode(global.roundMode.Load())
}

func decimalRoundingMode(v int32) RoundingMode { return RoundingMode(v) }

// SetRoundingMode changes the active rounding mode used by Decimal.Round.
// Unlike the scale, the rounding mode may be changed at any time.
func SetRoundingMode(m RoundingMode) {
	global.roundMode.Store(int32(m))
}

// Denominator returns 10^Scale() as an Integer, the implicit denominator
// backing every Decimal.
func Denominator() *bigint.Integer {
	ensureConfigured()
	return global.denominator
}

// Pi, E and Ln2 return cached Decimals of π, e and ln 2 at the active
// scale, materialized once when the scale is first fixed.
func Pi() *Decimal  { ensureConfigured(); return global.pi.Clone() }
func E() *Decimal   { ensureConfigured(); return global.e.Clone() }
func Ln2() *Decimal { ensureConfigured(); return global.ln2.Clone() }

func ensureConfigured() {
	if !global.configured.Load() {
		configure(DefaultScale)
	}
}

func configure(s int) {
	global.once.Do(func() {
		if s < MinScale {
			s = MinScale
		}
		if s > MaxScale {
			s = MaxScale
		}
		global.scale = s
		global.denominator = new(bigint.Integer).Pow(bigint.NewInt64(10), uint64(s))
		// Store the fast-path flag before materializing pi/e/ln2: those
		// go through NewString, which reads Scale()/Denominator(), and
		// sync.Once.Do is not reentrant — the flag must already read true
		// by the time that nested call comes back through ensureConfigured.
		global.configured.Store(true)
		global.pi = newFromDigits(piDigits, s+1, s)
		global.e = newFromDigits(eDigits, s+1, s)
		global.ln2 = newFromDigits(ln2Digits, s, s)
	})
}

// newFromDigits builds a Decimal at the given scale from a literal
// "3.14159..." style constant string, taking the first n significant
// digits (including the leading integer digit), mirroring the original's
// PI_STRING.substr(0, scale+1) truncation.
func newFromDigits(literal string, n, scale int) *Decimal {
	trimmed := literal
	end := n
	if i := strings.IndexByte(literal, '.'); i >= 0 && i < n {
		end++ // the decimal point is not a digit
	}
	if end < len(literal) {
		trimmed = literal[:end]
	}
	return NewString(trimmed)
}

// piDigits, eDigits and ln2Digits are literal mathematical-constant
// strings, substring-truncated to the active scale on first configure,
// per the original's static PI_STRING/E_STRING/LN2_STRING tables.
const (
	piDigits  = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"
	eDigits   = "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759457138217852516642743"
	ln2Digits = "0.69314718055994530941723212145817656807550013436025525412068000949339362196969471560586332699641868754"
)
