package asd

import (
	"math"

	"go.uber.org/zap"

	"github.com/lundrav/sandcalc/logging"
)

// GasContentThreshold is the gas-liquid (or gas-oil) ratio [Sm³/Sm³] above
// which the gas-system calibration applies.
const GasContentThreshold = 150

// Standard step calibration tables for Clampon detectors: acoustic step
// response versus mixture velocity for oil- and gas-dominated systems.
var (
	stepVMix = []float64{0, 1, 2, 3, 4, 6, 8, 12, 16, 22, 30}
	stepOil  = []float64{0, 425, 1500, 2500, 3100, 4500, 5500, 8100, 11300, 16100, 22500}
	stepGas  = []float64{0, 525, 1500, 2500, 3200, 4800, 6500, 12320, 20740, 38196, 64980}
)

// Emerson standard step polynomial coefficients (step = e·v³ + f·v² + g·v + h).
var (
	emersonGas = [4]float64{3.2, 149.5, 4486.9, 360.8}
	emersonOil = [4]float64{50, 48, 200, 1000}
)

// StdStepClampon computes the standard step for a Clampon ASD by linear
// interpolation (with end-slope extrapolation) in the calibration tables.
//
//	vMix — fluid mix velocity at the detector [m/s]
//	glr  — gas liquid ratio [Sm³/Sm³]
//
// Returns the standard step value, or NaN if the inputs are invalid or the
// interpolated step comes out negative.
func StdStepClampon(vMix, glr float64) float64 {
	if glr < 0 {
		warnValue("gas liquid ratio cannot be negative", "GLR", glr)

		return math.NaN()
	}

	table := stepOil
	if glr >= GasContentThreshold {
		table = stepGas
	}
	step := interp(stepVMix, table, vMix)
	if step < 0 {
		warnValue("negative standard step", "step", step)

		return math.NaN()
	}

	return step
}

// StdStepEmerson computes the standard step for an Emerson ASD from the
// cubic calibration polynomial.
//
//	vMix — fluid mix velocity at the detector [m/s]
//	gor  — gas oil ratio [Sm³/Sm³]
//
// Returns the standard step value, or NaN if the inputs are invalid or the
// polynomial comes out negative.
func StdStepEmerson(vMix, gor float64) float64 {
	if gor < 0 {
		warnValue("gas oil ratio cannot be negative", "GOR", gor)

		return math.NaN()
	}

	c := emersonOil
	if gor > GasContentThreshold {
		c = emersonGas
	}
	step := c[0]*vMix*vMix*vMix + c[1]*vMix*vMix + c[2]*vMix + c[3]
	if step < 0 {
		warnValue("negative standard step", "step", step)

		return math.NaN()
	}

	return step
}

// SandRate converts a raw ASD reading into a sand production rate.
//
//	raw  — raw detector value
//	zero — background noise level (no sand production)
//	step — standard step (sand noise per g/s)
//
// Readings at or below the background give 0. A non-positive step makes the
// conversion impossible and yields NaN.
func SandRate(raw, zero, step float64) float64 {
	if raw <= zero {
		return 0
	}
	if step <= 0 {
		warnValue("standard step must be positive", "step", step)

		return math.NaN()
	}

	return (raw - zero) / step
}

// interp linearly interpolates y(x) in the knot tables xs/ys, extrapolating
// with the end-segment slopes outside the table range. xs must be strictly
// increasing; both tables have the same fixed length.
func interp(xs, ys []float64, x float64) float64 {
	i := 0
	switch {
	case x >= xs[len(xs)-1]:
		i = len(xs) - 2
	case x <= xs[0]:
		i = 0
	default:
		for xs[i+1] < x {
			i++
		}
	}

	return ys[i] + (ys[i+1]-ys[i])*(x-xs[i])/(xs[i+1]-xs[i])
}

func warnValue(msg, name string, v float64) {
	logging.L().Warn("asd: "+msg, zap.Float64(name, v))
}
