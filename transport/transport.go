package transport

import (
	"math"

	"go.uber.org/zap"

	"github.com/lundrav/sandcalc/logging"
)

// StandardGravity is the standard gravitational acceleration [m/s²].
const StandardGravity = 9.80665

// DefaultRoughness is the default pipe wall roughness [m].
const DefaultRoughness = 5e-5

// DefaultParticleDensity is the quartz sand grain density [kg/m³].
const DefaultParticleDensity = 2650

// MaxInclination is the largest inclination from vertical [degrees]
// supported by the Stokes lifting model.
const MaxInclination = 80

// config carries the optional model parameters.
type config struct {
	roughness float64 // pipe wall roughness [m]
	rhoP      float64 // particle density [kg/m³]
}

// Option customizes the optional transport model parameters. Option
// constructors validate and panic on meaningless values.
type Option func(*config)

// WithRoughness overrides the pipe wall roughness [m], default 5e-5.
// Panics on negative values.
func WithRoughness(e float64) Option {
	if e < 0 {
		panic("transport: WithRoughness requires a non-negative roughness")
	}

	return func(c *config) {
		c.roughness = e
	}
}

// WithParticleDensity overrides the sand grain density [kg/m³], default
// quartz (2650). Panics on non-positive values.
func WithParticleDensity(rhoP float64) Option {
	if rhoP <= 0 {
		panic("transport: WithParticleDensity requires a positive density")
	}

	return func(c *config) {
		c.rhoP = rhoP
	}
}

func newConfig(opts []Option) config {
	c := config{roughness: DefaultRoughness, rhoP: DefaultParticleDensity}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// HydroCritical computes the critical sand transport velocities for a
// horizontal pipeline: the transition from stationary to moving bed and
// from moving bed to fully dispersed transport.
//
//	d    — pipe diameter [m]
//	rhoL — liquid density [kg/m³]
//	muL  — dynamic liquid viscosity [Pa·s]
//	dP   — sand grain diameter [mm]
//
// Returns (bed, dispersed) velocities [m/s], rounded to 2 decimals, or
// NaNs on invalid input. The particle must be denser than the liquid.
func HydroCritical(d, rhoL, muL, dP float64, opts ...Option) (bed, dispersed float64) {
	c := newConfig(opts)
	if !validLiquid(d, rhoL, muL, dP) || !denserThan(c.rhoP, rhoL) {
		return math.NaN(), math.NaN()
	}

	dpM := dP / 1000     // grain diameter in m
	nu := muL / rhoL     // kinematic viscosity [m²/s]

	// Shields margin at bulk velocity u for the given threshold curve.
	margin := func(u float64, dispersed bool) float64 {
		re := u * d / nu
		fTurb := 0.25 * darcyFactor(c.roughness/d, re) // Fanning friction factor
		tauW := 0.5 * fTurb * rhoL * u * u             // wall shear stress [Pa]
		uf := math.Sqrt(tauW / rhoL)                   // friction velocity
		ds := dpM * uf / nu                            // dimensionless grain diameter
		sh := tauW / ((c.rhoP - rhoL) * StandardGravity * dpM)
		if dispersed {
			// Critical Shields number between scouring and dispersed.
			return sh - 1.12/math.Pow(ds, 0.37)
		}
		// Critical Shields number between fixed bed and scouring.
		return sh - 0.42/math.Pow(ds, 0.49)
	}

	bed = round2(secant(func(u float64) float64 { return margin(u, false) }, 1))
	dispersed = round2(secant(func(u float64) float64 { return margin(u, true) }, 1))

	return bed, dispersed
}

// Stokes computes the particle settling velocity — the minimum lifting
// velocity — for vertical or deviated flow, using Stokes' law with a
// turbulent drag correction.
//
//	rhoM     — mixture density at the point of interest [kg/m³]
//	muM      — mixture viscosity [kg/ms]
//	dP       — particle diameter [mm]
//	angleDeg — inclination from vertical [degrees], 0–80
//
// Returns the settling velocity [m/s], rounded to 2 decimals, or NaN on
// invalid input.
func Stokes(rhoM, muM, dP, angleDeg float64, opts ...Option) float64 {
	c := newConfig(opts)
	if !validMixture(rhoM, muM, dP) || !denserThan(c.rhoP, rhoM) {
		return math.NaN()
	}
	if angleDeg < 0 || angleDeg > MaxInclination {
		warnValue("inclination outside model envelope [0, 80] degrees", "angle", angleDeg)

		return math.NaN()
	}

	dpM := dP / 1000
	cosA := math.Cos(angleDeg * math.Pi / 180)
	// Buoyancy-corrected driving term of the force balance.
	a1 := 4 * StandardGravity * dpM * (c.rhoP - rhoM) / (3 * rhoM * cosA)

	critical := func(v float64) float64 {
		re := rhoM * dpM / muM * v
		var f float64
		if re > 1899 {
			f = 0.4
		} else {
			lg := math.Log10(re)
			f = math.Pow(10, 1.413-0.923*lg+0.113*lg*lg) // polynomial drag factor
		}

		return math.Sqrt(a1 / f)
	}

	return round2(fixedPoint(critical, 1))
}

// darcyFactor finds the Darcy friction factor for relative roughness ed at
// Reynolds number re: Hagen-Poiseuille below Re 2000, otherwise the
// Colebrook equation solved by secant iteration from the Haaland estimate.
func darcyFactor(ed, re float64) float64 {
	if re < 2000 {
		return 64 / re
	}

	colebrook := func(f float64) float64 {
		return 1/math.Sqrt(f) + 2*math.Log10(ed/3.7+2.51/(re*math.Sqrt(f)))
	}
	haaland := 1 / math.Pow(1.8*math.Log10(6.9/re+math.Pow(ed/3.7, 1.11)), 2)

	return secant(colebrook, haaland)
}

func validLiquid(d, rhoL, muL, dP float64) bool {
	ok := true
	if d <= 0 {
		warnValue("pipe diameter must be positive", "D", d)
		ok = false
	}
	if rhoL <= 0 {
		warnValue("liquid density must be positive", "rho_l", rhoL)
		ok = false
	}
	if muL <= 0 {
		warnValue("liquid viscosity must be positive", "mu_l", muL)
		ok = false
	}
	if dP <= 0 {
		warnValue("grain diameter must be positive", "d_p", dP)
		ok = false
	}

	return ok
}

func validMixture(rhoM, muM, dP float64) bool {
	ok := true
	if rhoM <= 0 {
		warnValue("mixture density must be positive", "rho_m", rhoM)
		ok = false
	}
	if muM <= 0 {
		warnValue("mixture viscosity must be positive", "mu_m", muM)
		ok = false
	}
	if dP <= 0 {
		warnValue("particle diameter must be positive", "d_p", dP)
		ok = false
	}

	return ok
}

func denserThan(rhoP, rhoFluid float64) bool {
	if rhoP <= rhoFluid {
		warnValue("particle must be denser than the carrying fluid", "rho_p", rhoP)

		return false
	}

	return true
}

func warnValue(msg, name string, v float64) {
	logging.L().Warn("transport: "+msg, zap.Float64(name, v))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
