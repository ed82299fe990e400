package css

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/boxflow/dom/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions used in box layout.
// Dimensions are either 'auto' or a fixed amount of pixels.
type DimenT struct {
	px    float64
	flags uint32
}

/*
type DimenT
	= Auto
	| Just px
*/

// Auto creates a CSS dimension with value 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Just creates a CSS dimension with a fixed value of x pixels.
func Just(x float64) DimenT {
	return DimenT{px: x, flags: dimenAbsolute}
}

// DimenFromValue converts a style value into a dimension. Keyword 'auto'
// yields Auto(), everything else is converted with style.ToPx.
func DimenFromValue(v style.Value) DimenT {
	if style.IsAuto(v) {
		return Auto()
	}
	return Just(style.ToPx(v))
}

// IsAuto is a predicate for dimension 'auto'.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// Px returns the pixel value of d. Auto has a pixel value of 0.
func (d DimenT) Px() float64 {
	if d.flags&dimenAbsolute > 0 {
		return d.px
	}
	return 0
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenAbsolute:
		return strconv.FormatFloat(d.px, 'f', -1, 64) + "px"
	}
	return fmt.Sprintf("DimenT<%#x>", d.flags)
}

// ---------------------------------------------------------------------------

// Match starts a match-switch on a dimension:
//
//    switch m := d.Match(); m {
//    case m.Just(&px):
//        …
//    case m.IsKind(css.Auto()):
//        …
//    }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper for match-switches on dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

// Just matches fixed dimensions and stores the pixel value in px, if px is
// non-nil.
func (m *Matcher) Just(px *float64) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if px != nil {
			*px = m.dimen.px
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns lists the results of a pattern match, one per kind of
// dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Just    T
	Default T
}

// DimenPattern starts a pattern-expression on a dimension:
//
//    e := css.DimenPattern[string](d)
//    s := e.OneOf(css.DimenPatterns[string]{
//        Just: "fixed",
//        Auto: "auto",
//    })
//
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a pattern-expression for a dimension.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the dimension of m.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&dimenAuto > 0:
		return patterns.Auto
	case m.dimen.flags&dimenAbsolute > 0:
		return patterns.Just
	}
	return patterns.Default
}
