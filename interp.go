package sandpack

// Interpolate maps a scroll offset through a piecewise-linear curve defined
// by parallel breakpoint and output tables.
//
// breakpoints must be non-decreasing and the two slices must have the same
// length (>= 2); violations are programmer errors and panic. Offsets below
// the first breakpoint clamp to outputs[0] and offsets above the last clamp
// to the last output. The curve never extrapolates.
//
// An offset landing exactly on a breakpoint returns that table value with no
// floating-point drift, so curves that hold a flat plateau across consecutive
// breakpoints read as a held value at the boundaries.
//
// A zero-width segment (equal adjacent breakpoints) returns the segment's
// first output. When the whole span collapses to a single point, the result
// is outputs[0] for any offset.
func Interpolate(offset float64, breakpoints, outputs []float64) float64 {
	if len(breakpoints) != len(outputs) {
		panic("sandpack: breakpoints and outputs must have the same length")
	}
	if len(breakpoints) < 2 {
		panic("sandpack: need at least two breakpoints")
	}

	last := len(breakpoints) - 1
	if offset <= breakpoints[0] || breakpoints[0] == breakpoints[last] {
		return outputs[0]
	}
	if offset >= breakpoints[last] {
		return outputs[last]
	}

	for i := 1; i <= last; i++ {
		b := breakpoints[i]
		if offset == b {
			return outputs[i]
		}
		if offset < b {
			lo := breakpoints[i-1]
			span := b - lo
			if span == 0 {
				return outputs[i-1]
			}
			t := (offset - lo) / span
			return outputs[i-1] + (outputs[i]-outputs[i-1])*t
		}
	}
	return outputs[last]
}

// Curve pairs a breakpoint table with its output table so callers can carry
// one value instead of two parallel slices. The zero value is not usable;
// construct with NewCurve.
type Curve struct {
	breakpoints []float64
	outputs     []float64
}

// NewCurve validates and wraps a breakpoint/output table pair.
// Panics on length mismatch, fewer than two points, or decreasing breakpoints.
func NewCurve(breakpoints, outputs []float64) Curve {
	if len(breakpoints) != len(outputs) {
		panic("sandpack: breakpoints and outputs must have the same length")
	}
	if len(breakpoints) < 2 {
		panic("sandpack: need at least two breakpoints")
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] < breakpoints[i-1] {
			panic("sandpack: breakpoints must be non-decreasing")
		}
	}
	return Curve{breakpoints: breakpoints, outputs: outputs}
}

// At returns the interpolated output for the given scroll offset.
func (c Curve) At(offset float64) float64 {
	return Interpolate(offset, c.breakpoints, c.outputs)
}

// Span returns the first and last breakpoint of the curve.
func (c Curve) Span() (lo, hi float64) {
	return c.breakpoints[0], c.breakpoints[len(c.breakpoints)-1]
}
