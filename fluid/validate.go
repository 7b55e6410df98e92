package fluid

import (
	"go.uber.org/zap"

	"github.com/lundrav/sandcalc/logging"
)

// Model envelope for PVT inputs. Values outside yield NaN.
const (
	// MaxZ is the upper bound for the gas compressibility factor.
	MaxZ = 2.0
)

// validPVT checks the shared pressure/temperature/rate inputs of the three
// mixture models. Emits one warning per offending quantity.
func validPVT(P, T, Qo, Qw, Qg, Z float64) bool {
	ok := true
	if P <= 0 {
		warnValue("pressure must be positive", "P", P)
		ok = false
	}
	if T <= -zeroCelsius {
		warnValue("temperature below absolute zero", "T", T)
		ok = false
	}
	if Qo < 0 {
		warnValue("oil rate cannot be negative", "Qo", Qo)
		ok = false
	}
	if Qw < 0 {
		warnValue("water rate cannot be negative", "Qw", Qw)
		ok = false
	}
	if Qg < 0 {
		warnValue("gas rate cannot be negative", "Qg", Qg)
		ok = false
	}
	if Z <= 0 || Z > MaxZ {
		warnValue("gas compressibility factor outside (0, 2]", "Z", Z)
		ok = false
	}

	return ok
}

// validDiameter checks a pipe diameter.
func validDiameter(D float64) bool {
	if D <= 0 {
		warnValue("pipe diameter must be positive", "D", D)

		return false
	}

	return true
}

// positive checks that a named quantity is strictly positive.
func positive(name string, v float64) bool {
	if v <= 0 {
		warnValue("quantity must be positive", name, v)

		return false
	}

	return true
}

func warn(msg string) {
	logging.L().Warn("fluid: " + msg)
}

func warnValue(msg, name string, v float64) {
	logging.L().Warn("fluid: "+msg, zap.Float64(name, v))
}
