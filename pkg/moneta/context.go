package moneta

import (
	"fmt"
	"strings"
)

// Context is an immutable numeric precision context: the number of
// significant digits to keep (0 means unlimited) and the rounding
// mode to apply, tagged with the value type it is scoped to.
//
// Context is a value type with no setters; once built it is safe to
// share and read concurrently.
type Context struct {
	precision int
	mode      RoundingMode
	owner     string
}

// Preset contexts mirroring the standard IEEE 754-2008 decimal
// formats. Presets carry no owner tag; Builder.Set adopts their
// precision and rounding mode.
var (
	// Decimal32 keeps 7 digits, rounding half-even.
	Decimal32 = Context{precision: 7, mode: HalfEven}
	// Decimal64 keeps 16 digits, rounding half-even.
	Decimal64 = Context{precision: 16, mode: HalfEven}
	// Decimal128 keeps 34 digits, rounding half-even.
	Decimal128 = Context{precision: 34, mode: HalfEven}
	// Unlimited performs exact arithmetic (precision 0, half-up).
	Unlimited = Context{precision: 0, mode: HalfUp}
)

// presetsByName maps preset configuration names onto preset contexts.
var presetsByName = map[string]Context{
	"DECIMAL32":  Decimal32,
	"DECIMAL64":  Decimal64,
	"DECIMAL128": Decimal128,
	"UNLIMITED":  Unlimited,
}

// Precision returns the number of significant digits, 0 for unlimited.
func (c Context) Precision() int { return c.precision }

// Mode returns the rounding mode.
func (c Context) Mode() RoundingMode { return c.mode }

// Owner returns the tag of the value type this context is scoped to.
func (c Context) Owner() string { return c.owner }

// Unlimited reports whether the context performs exact arithmetic.
func (c Context) Unlimited() bool { return c.precision == 0 }

// String returns a human-readable description for logs.
func (c Context) String() string {
	if c.owner == "" {
		return fmt.Sprintf("Context{precision=%d, roundingMode=%s}", c.precision, c.mode)
	}
	return fmt.Sprintf("Context{owner=%s, precision=%d, roundingMode=%s}", c.owner, c.precision, c.mode)
}

// Builder assembles a Context. Use NewBuilder to create one, then
// chain SetPrecision, SetMode, or Set calls and finish with Build.
//
// Builder is NOT thread-safe; construct the context on a single
// goroutine and share the built value.
//
// Example:
//
//	mc := moneta.NewBuilder("moneta.Money").
//	    SetPrecision(256).
//	    SetMode(moneta.HalfEven).
//	    Build()
type Builder struct {
	ctx Context
}

// NewBuilder creates a context builder scoped to the given owner
// type tag. The builder starts from the Decimal64 preset.
func NewBuilder(owner string) *Builder {
	b := &Builder{ctx: Decimal64}
	b.ctx.owner = owner
	return b
}

// SetPrecision sets the number of significant digits.
// Panics if p is negative; 0 means unlimited.
func (b *Builder) SetPrecision(p int) *Builder {
	if p < 0 {
		panic("moneta: precision cannot be negative")
	}
	b.ctx.precision = p
	return b
}

// SetMode sets the rounding mode.
func (b *Builder) SetMode(m RoundingMode) *Builder {
	b.ctx.mode = m
	return b
}

// Set adopts the precision and rounding mode of another context,
// typically one of the presets. The owner tag is kept.
func (b *Builder) Set(c Context) *Builder {
	b.ctx.precision = c.precision
	b.ctx.mode = c.mode
	return b
}

// Build returns the assembled immutable Context.
func (b *Builder) Build() Context {
	return b.ctx
}

// ParsePreset maps a preset name (DECIMAL32, DECIMAL64, DECIMAL128,
// UNLIMITED) onto its context. Matching is case-insensitive. The
// second return value reports whether the name was recognized.
func ParsePreset(name string) (Context, bool) {
	c, ok := presetsByName[strings.ToUpper(name)]
	return c, ok
}
