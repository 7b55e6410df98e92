package choke

import (
	"math"

	"go.uber.org/zap"

	"github.com/lundrav/sandcalc/logging"
)

// CriticalVelocity computes the throttling velocity across a choke
// (RP-O501 ch. 4.12.3).
//
//	p1   — upstream pressure [bar]
//	p2   — downstream pressure [bar]
//	rho1 — mixture density upstream of the choke [kg/m³]
//	rho2 — mixture density downstream of the choke [kg/m³]
//
// Returns the throttling velocity [m/s], or NaN on invalid input (a
// pressure rise across the choke is invalid).
func CriticalVelocity(p1, p2, rho1, rho2 float64) float64 {
	if p1 <= 0 || p2 <= 0 || p2 > p1 {
		warnPair("requires 0 < p2 <= p1 bar", "p1", p1, "p2", p2)

		return math.NaN()
	}
	if rho1 <= 0 || rho2 <= 0 {
		warnPair("mixture densities must be positive", "rho_1", rho1, "rho_2", rho2)

		return math.NaN()
	}

	// Bernoulli over the choke at the average mixture density; 4e5
	// carries the bar → Pa conversion.
	return math.Sqrt(4e5 * (p1 - p2) / (rho1 + rho2))
}

// MinChoke returns the recommended minimum relative opening (Cv fraction)
// for plug/cage and cage/sleeve chokes under sand production (RP-O501
// ch. 4.12.3).
//
//	qS — sand rate [g/s]
//	vC — throttling velocity [m/s]
//
// Returns the minimum relative Cv [-], or NaN on invalid input.
func MinChoke(qS, vC float64) float64 {
	if qS < 0 || vC < 0 || math.IsNaN(qS) || math.IsNaN(vC) {
		warnValue("sand rate and throttling velocity must be non-negative", "Q_s", qS)

		return math.NaN()
	}

	switch {
	case qS < 0.01:
		if vC < 100 {
			return 0.05
		}

		return 0.1
	case qS < 0.1:
		switch {
		case vC < 50:
			return 0.05
		case vC < 100:
			return 0.1
		default:
			return 0.2
		}
	default:
		if vC < 50 {
			return 0.1
		}

		return 0.2
	}
}

func warnValue(msg, name string, v float64) {
	logging.L().Warn("choke: "+msg, zap.Float64(name, v))
}

func warnPair(msg, n1 string, v1 float64, n2 string, v2 float64) {
	logging.L().Warn("choke: "+msg, zap.Float64(n1, v1), zap.Float64(n2, v2))
}
