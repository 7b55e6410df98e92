package probe

import (
	"math"

	"go.uber.org/zap"

	"github.com/lundrav/sandcalc/erosion"
	"github.com/lundrav/sandcalc/logging"
)

// MinReliableVelocity is the bulk velocity [m/s] below which the ER-probe
// inversion carries too much uncertainty to be trusted.
const MinReliableVelocity = 5

// ERSandRate computes the sand production rate from a measured ER-probe
// erosion rate, by inverting the intrusive-probe erosion model at a unit
// sand rate (RP-O501 eq. 4.63).
//
//	eMeas — measured erosion rate from the ER probe [mm/year]
//	vM    — upstream mix velocity [m/s]
//	rhoM  — mix density [kg/m³]
//	d     — branch pipe diameter [m]
//	dP    — particle diameter [mm]
//
// The impact angle defaults to 60°; erosion options apply as for
// erosion.Probes. Returns the sand rate [g/s], or NaN on invalid input.
// Results below vM = 5 m/s are logged as unreliable but still returned.
func ERSandRate(eMeas, vM, rhoM, d, dP float64, opts ...erosion.Option) float64 {
	if eMeas < 0 {
		logging.L().Warn("probe: measured erosion rate cannot be negative",
			zap.Float64("E_meas", eMeas))

		return math.NaN()
	}
	if vM < MinReliableVelocity {
		logging.L().Warn("probe: sand rate inversion is unreliable below 5 m/s",
			zap.Float64("v_m", vM))
	}

	// Theoretical probe erosion at 1 g/s; carries the flow validation.
	eTheor := erosion.Probes(vM, rhoM, 1, d, dP, opts...)
	if eTheor == 0 {
		logging.L().Warn("probe: stagnant flow erodes nothing, sand rate is undefined",
			zap.Float64("v_m", vM))

		return math.NaN()
	}

	return eMeas / eTheor
}
