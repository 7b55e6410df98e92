package transport

import "math"

// Solver tolerances, matching the published model validation resolution.
const (
	rootTol    = 5e-6
	rootMaxIt  = 60
	fixedTol   = 1e-9
	fixedMaxIt = 100
)

// secant finds a root of f near x0 by the secant method. The second probe
// is a small relative perturbation of x0. Returns the last iterate once
// the step falls below rootTol; NaN inputs propagate naturally.
func secant(f func(float64) float64, x0 float64) float64 {
	x1 := x0 * 1.0001
	if x0 == 0 {
		x1 = 1e-4
	}
	f0, f1 := f(x0), f(x1)
	for i := 0; i < rootMaxIt; i++ {
		if f1 == f0 {
			break
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.Abs(x2-x1) < rootTol {
			return x2
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}

	return x1
}

// fixedPoint iterates x ← f(x) from x0 until successive iterates agree to
// fixedTol, returning the fixed point.
func fixedPoint(f func(float64) float64, x0 float64) float64 {
	x := x0
	for i := 0; i < fixedMaxIt; i++ {
		next := f(x)
		if math.Abs(next-x) < fixedTol {
			return next
		}
		x = next
	}

	return x
}
