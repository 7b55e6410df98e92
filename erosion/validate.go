package erosion

import (
	"go.uber.org/zap"

	"github.com/lundrav/sandcalc/logging"
)

// validFlow checks the shared flow inputs of the erosion models: mixture
// velocity [m/s], mixture density [kg/m³] and sand rate [g/s].
func validFlow(vM, rhoM, qS float64) bool {
	ok := true
	if vM < 0 || vM > MaxMixVelocity {
		warnValue("mix velocity outside model envelope [0, 200] m/s", "v_m", vM)
		ok = false
	}
	if rhoM <= 0 || rhoM > MaxMixDensity {
		warnValue("mix density outside model envelope (0, 1500] kg/m3", "rho_m", rhoM)
		ok = false
	}
	if qS < 0 {
		warnValue("sand rate cannot be negative", "Q_s", qS)
		ok = false
	}

	return ok
}

// validViscosity checks a mixture viscosity [kg/ms].
func validViscosity(muM float64) bool {
	if muM <= 0 {
		warnValue("mix viscosity must be positive", "mu_m", muM)

		return false
	}

	return true
}

// validDiameters checks a pipe diameter [m] and particle diameter [mm]
// against the model envelope.
func validDiameters(d, dP float64) bool {
	ok := true
	if d < MinPipeDiameter || d > MaxPipeDiameter {
		warnValue("pipe diameter outside model envelope [0.01, 1] m", "D", d)
		ok = false
	}
	if dP < MinParticleDiameter || dP > MaxParticleDiameter {
		warnValue("particle diameter outside model envelope [0.02, 5] mm", "d_p", dP)
		ok = false
	}

	return ok
}

// validGF checks a geometry factor against the model envelope.
func validGF(gf float64) bool {
	if gf < MinGeometryFactor || gf > MaxGeometryFactor {
		warnValue("geometry factor outside model envelope [1, 6]", "GF", gf)

		return false
	}

	return true
}

func warnValue(msg, name string, v float64) {
	logging.L().Warn("erosion: "+msg, zap.Float64(name, v))
}
