// Package interp evaluates piecewise-linear breakpoint tables over a scalar input.
//
// A Table is validated once at construction and is immutable afterwards, so a single
// instance may be evaluated from any number of goroutines, once per frame, without
// accumulating state. Inputs outside the domain clamp to the boundary values and NaN
// clamps to the lower bound; evaluation never fails.
package interp

import (
	"fmt"
	"math"
	"sort"
)

// LerpFunc blends a toward b by t, t in [0,1]
type LerpFunc[V any] func(a, b V, t float64) V

// Table is a piecewise-linear function of a scalar defined by (domain, value) breakpoints
type Table[V any] struct {
	domain []float64
	values []V
	lerp   LerpFunc[V]
}

// New validates and copies the breakpoints into a Table.
// Adjacent equal domain entries are allowed and evaluate as an instantaneous jump.
func New[V any](domain []float64, values []V, lerp LerpFunc[V]) (*Table[V], error) {
	if len(domain) == 0 || len(values) == 0 {
		return nil, ErrEmptyTable
	}
	if len(domain) != len(values) {
		return nil, fmt.Errorf("%w: %d breakpoints, %d values", ErrLengthMismatch, len(domain), len(values))
	}
	if lerp == nil {
		return nil, ErrNilLerp
	}
	for i, d := range domain {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: breakpoint %d is %v", ErrBadBreakpoint, i, d)
		}
		if i > 0 && d < domain[i-1] {
			return nil, fmt.Errorf("%w: breakpoint %d (%g) precedes %g", ErrUnorderedDomain, i, d, domain[i-1])
		}
	}

	t := &Table[V]{
		domain: make([]float64, len(domain)),
		values: make([]V, len(values)),
		lerp:   lerp,
	}
	copy(t.domain, domain)
	copy(t.values, values)
	return t, nil
}

// NewScalar builds a numeric table
func NewScalar(domain, values []float64) (*Table[float64], error) {
	return New(domain, values, Lerp)
}

// At evaluates the table at x
func (t *Table[V]) At(x float64) V {
	last := len(t.domain) - 1
	// Negated comparison routes NaN to the lower bound
	if !(x > t.domain[0]) {
		return t.values[0]
	}
	if x >= t.domain[last] {
		return t.values[last]
	}

	// First breakpoint strictly after x; domain[0] < x < domain[last] keeps j in [1, last]
	j := sort.Search(len(t.domain), func(i int) bool { return t.domain[i] > x })
	k := j - 1

	span := t.domain[k+1] - t.domain[k]
	if span <= 0 {
		return t.values[k]
	}
	return t.lerp(t.values[k], t.values[k+1], (x-t.domain[k])/span)
}

// Len returns the number of breakpoints
func (t *Table[V]) Len() int { return len(t.domain) }

// Breakpoint returns the i-th (domain, value) pair
func (t *Table[V]) Breakpoint(i int) (float64, V) { return t.domain[i], t.values[i] }

// Domain returns a copy of the breakpoint positions
func (t *Table[V]) Domain() []float64 {
	out := make([]float64, len(t.domain))
	copy(out, t.domain)
	return out
}

// Values returns a copy of the breakpoint values
func (t *Table[V]) Values() []V {
	out := make([]V, len(t.values))
	copy(out, t.values)
	return out
}

// Interpolate evaluates a one-shot scalar table at x. Tables evaluated repeatedly
// should be built once with NewScalar instead.
func Interpolate(x float64, domain, values []float64) (float64, error) {
	t, err := NewScalar(domain, values)
	if err != nil {
		return 0, err
	}
	return t.At(x), nil
}

// Lerp is the scalar blend. t >= 1 returns b exactly so the last breakpoint is reproduced bit for bit.
func Lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	if t <= 0 {
		return a
	}
	return a + (b-a)*t
}

// Segment evaluates the two-breakpoint table [x0, x1] -> [y0, y1] at x without allocating.
// Semantics match a Table built from the same breakpoints; x1 < x0 is treated as a step at x0.
func Segment(x, x0, x1, y0, y1 float64) float64 {
	if !(x > x0) {
		return y0
	}
	if x >= x1 {
		return y1
	}
	span := x1 - x0
	if span <= 0 {
		return y0
	}
	return Lerp(y0, y1, (x-x0)/span)
}

// Clamp01 clamps x to [0,1], NaN maps to 0
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
