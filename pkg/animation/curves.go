package animation

import "math"

// A curve maps linear progress t in [0, 1] to an eased value. Assign one to
// Controller.Curve or pass it to NewWidgetAnimation.

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 {
	return t
}

// Pulse rises from 0 to 1 and falls back to 0, for flash and highlight effects.
func Pulse(t float64) float64 {
	return math.Sin(math.Pi * clampUnit(t))
}

// Standard CSS timing functions.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CubicBezier returns the curve through (0,0) and (1,1) with control points
// (x1,y1) and (x2,y2), like CSS cubic-bezier(). x1 and x2 must lie in [0, 1]
// so that x is monotonic in the curve parameter.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		// Find the parameter whose x equals t.
		lo, hi := 0.0, 1.0
		s := t
		for range 32 {
			x := bezier(x1, x2, s)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return bezier(y1, y2, s)
	}
}

// bezier evaluates one coordinate of the curve with endpoints 0 and 1.
func bezier(p1, p2, s float64) float64 {
	r := 1 - s
	return 3*r*r*s*p1 + 3*r*s*s*p2 + s*s*s
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
