package erosion

import (
	"math"
)

// AngleDependency is the angle dependency function F(α) for ductile
// materials (RP-O501 eq. 3.3). aRad is the particle impact angle in
// radians; the result is dimensionless in [0, 1].
func AngleDependency(aRad float64) float64 {
	s := math.Sin(aRad)

	return angleA * math.Pow(s+angleB*(s-s*s), angleK) * (1 - math.Exp(-angleC*aRad))
}

// Bend computes the particle erosion rate in a pipe bend (RP-O501 ch. 4.7).
//
//	vM   — mix velocity [m/s]
//	rhoM — mix density [kg/m³]
//	muM  — mix viscosity [kg/ms]
//	qS   — sand rate [g/s]
//	r    — bend radius [pipe IDs]
//	gf   — geometry factor [-]
//	d    — pipe diameter [m]
//	dP   — particle diameter [mm]
//
// Returns the erosion rate [mm/year], or NaN on invalid input.
func Bend(vM, rhoM, muM, qS, r, gf, d, dP float64, opts ...Option) float64 {
	if !validFlow(vM, rhoM, qS) || !validViscosity(muM) || !validDiameters(d, dP) || !validGF(gf) {
		return math.NaN()
	}
	if r < MinBendRadius {
		warnValue("bend radius below model minimum of 0.5 IDs", "R", r)

		return math.NaN()
	}
	c := newConfig(opts)

	aRad := math.Atan(1 / math.Sqrt(2*r)) // impact angle (4.28)
	aPipe := math.Pi / 4 * d * d          // pipe cross section (4.15)
	aT := aPipe / math.Sin(aRad)          // area exposed to erosion (4.23)
	gamma := dP / mmPerM / d              // particle/pipe diameter ratio (4.30)
	// Dimensionless parameter groups (4.29).
	dimA := rhoM * rhoM * math.Tan(aRad) * vM * d / (c.rhoP * muM)
	beta := c.rhoP / rhoM

	// Relative critical particle diameter, clamped to (0, 0.1] (4.30).
	gammaC := 1 / (beta * (1.88*math.Log(dimA) - 6.04))
	if gammaC <= 0 || gammaC > 0.1 {
		gammaC = 0.1
	}
	// Particle size correction (4.31).
	g := 1.0
	if gamma < gammaC {
		g = gamma / gammaC
	}

	// Erosion rate (4.34).
	return c.k * AngleDependency(aRad) * math.Pow(vM, c.n) / (c.rhoT * aT) *
		g * bendC1 * gf * qS * secondsPerYear
}

// Tee computes the particle erosion rate in a blinded tee (RP-O501 ch. 4.8).
// Parameters as for Bend, without the bend radius.
// Returns the erosion rate [mm/year], or NaN on invalid input.
func Tee(vM, rhoM, muM, qS, gf, d, dP float64, opts ...Option) float64 {
	if !validFlow(vM, rhoM, qS) || !validViscosity(muM) || !validDiameters(d, dP) || !validGF(gf) {
		return math.NaN()
	}
	c := newConfig(opts)

	gamma := dP / mmPerM / d    // particle/pipe diameter ratio (4.37)
	beta := c.rhoP / rhoM       // particle/fluid density ratio (4.38)
	re := vM * d * rhoM / muM   // Reynolds number (4.39)
	var gammaC, cExp, c1 float64
	if beta < 40 {
		gammaC = 0.14 / beta // normalised critical particle diameter (4.40)
		if gamma < gammaC {  // (4.41)
			cExp = 19 / math.Log(re)
		}
		c1 = 3 / math.Pow(beta, 0.3) // model factor (4.42)
	} else {
		b := math.Pow(math.Log(re/10000+1)+1, -0.6) - 1.2
		gammaC = 0.0035 * math.Pow(beta/40, b)
		if gamma < gammaC { // (4.43)
			cExp = 19 / math.Log(re)
		} else {
			cExp = -0.3 * (1 - math.Pow(1.01, 40-beta))
		}
		c1 = 1
	}
	g := math.Pow(gamma/gammaC, cExp) // particle size correction (4.44)
	aT := math.Pi / 4 * d * d         // characteristic impact area (4.45)

	// Erosion rate (4.48); secondsPerYear absorbs the g/s→kg/s factor.
	return c.k * math.Pow(vM, c.n) / (c.rhoT * aT) * g * c1 * gf * qS * secondsPerYear
}

// StraightPipe computes the particle erosion rate in a smooth straight pipe.
//
//	vM — mix velocity [m/s]
//	qS — sand rate [g/s]
//	d  — pipe diameter [m]
//
// Returns the erosion rate [mm/year], or NaN on invalid input.
func StraightPipe(vM, qS, d float64) float64 {
	if vM < 0 || vM > MaxMixVelocity {
		warnValue("mix velocity outside model envelope [0, 200] m/s", "v_m", vM)

		return math.NaN()
	}
	if qS < 0 {
		warnValue("sand rate cannot be negative", "Q_s", qS)

		return math.NaN()
	}
	if d < MinPipeDiameter || d > MaxPipeDiameter {
		warnValue("pipe diameter outside model envelope [0.01, 1] m", "D", d)

		return math.NaN()
	}

	return 2.5e-5 * math.Pow(vM, 2.6) / (d * d) * qS / gramsPerKg
}

// WeldedJoint computes the particle erosion rates at a welded joint: the
// flow-facing side of the weld and the pipe wall downstream of it.
//
//	vM   — mix velocity [m/s]
//	rhoM — mix density [kg/m³]
//	qS   — sand rate [g/s]
//	d    — pipe diameter [m]
//	dP   — particle diameter [mm]
//	h    — weld height [m]
//
// The impact angle defaults to 60°; override with WithImpactAngle.
// Returns (upstream, downstream) erosion rates [mm/year], or NaNs on
// invalid input.
func WeldedJoint(vM, rhoM, qS, d, dP, h float64, opts ...Option) (up, down float64) {
	if !validFlow(vM, rhoM, qS) || !validDiameters(d, dP) {
		return math.NaN(), math.NaN()
	}
	if h < 0 || h > d {
		warnValue("weld height must be within [0, D] m", "h", h)

		return math.NaN(), math.NaN()
	}
	c := newConfig(opts)

	aPipe := math.Pi * d * d / 4
	aRad := c.alpha * math.Pi / 180
	c2 := particleSizeCorrection(dP, rhoM) // (4.25)

	up = c.k * AngleDependency(aRad) * math.Pow(vM, c.n) * math.Sin(aRad) /
		(c.rhoT * aPipe) * c2 * cUnit * qS / gramsPerKg
	down = 3.3e-2 * (7.5e-4 + h) * math.Pow(vM, c.n) / (d * d) * qS / gramsPerKg

	return up, down
}

// Manifold computes the erosion rate in a manifold branch by modelling the
// branch as a synthetic bend of radius Dm/D − 0.5 (pending RP-O501
// inclusion). Velocity and fluid properties are those of the branch line;
// dm is the manifold diameter [m]. Returns mm/year or NaN.
func Manifold(vM, rhoM, muM, qS, gf, d, dP, dm float64, opts ...Option) float64 {
	if dm <= 0 {
		warnValue("manifold diameter must be positive", "Dm", dm)

		return math.NaN()
	}

	return Bend(vM, rhoM, muM, qS, dm/d-0.5, gf, d, dP, opts...)
}

// Reducer computes the particle erosion rate in a pipe reducer.
//
//	vM   — upstream mix velocity [m/s]
//	rhoM — mix density [kg/m³]
//	qS   — sand rate [g/s]
//	d1   — upstream pipe diameter [m]
//	d2   — downstream pipe diameter [m]
//	dP   — particle diameter [mm]
//	gf   — geometry factor [-]
//
// The impact angle defaults to the worst-case 60°; override with
// WithImpactAngle. Returns mm/year or NaN on invalid input.
func Reducer(vM, rhoM, qS, d1, d2, dP, gf float64, opts ...Option) float64 {
	if !validFlow(vM, rhoM, qS) || !validDiameters(d1, dP) || !validGF(gf) {
		return math.NaN()
	}
	if d2 <= 0 || d2 >= d1 {
		warnValue("downstream diameter must be within (0, D1) m", "D2", d2)

		return math.NaN()
	}
	c := newConfig(opts)

	aRad := c.alpha * math.Pi / 180
	aT := math.Pi / (4 * math.Sin(aRad)) * (d1*d1 - d2*d2) // impact area (4.50)
	aRatio := 1 - (d2/d1)*(d2/d1)                          // area aspect ratio (4.51)
	uP := vM * (d1 / d2) * (d1 / d2)                       // characteristic particle velocity (4.52)
	c2 := particleSizeCorrection(dP, rhoM)                 // (4.53)

	return c.k * AngleDependency(aRad) * math.Pow(uP, c.n) / (c.rhoT * aT) *
		aRatio * c2 * gf * qS / gramsPerKg * cUnit
}

// Probes computes the erosion rate experienced by an intrusive erosion
// probe mounted flush against the flow.
//
//	vM   — upstream mix velocity [m/s]
//	rhoM — mix density [kg/m³]
//	qS   — sand rate [g/s]
//	d    — branch pipe diameter [m]
//	dP   — particle diameter [mm]
//
// The impact angle defaults to the worst-case 60°; override with
// WithImpactAngle. Returns mm/year or NaN on invalid input.
func Probes(vM, rhoM, qS, d, dP float64, opts ...Option) float64 {
	if !validFlow(vM, rhoM, qS) || !validDiameters(d, dP) {
		return math.NaN()
	}
	c := newConfig(opts)

	aRad := c.alpha * math.Pi / 180
	// Equivalent impact area for homogeneously distributed particles (4.58).
	aT := math.Pi / 4 * d * d / math.Sin(aRad)
	c2 := particleSizeCorrection(dP, rhoM) // (4.59)

	return c.k * AngleDependency(aRad) * math.Pow(vM, c.n) / (c.rhoT * aT) *
		c2 * qS / gramsPerKg * cUnit
}

// particleSizeCorrection is the particle size and fluid density correction
// factor C2 (4.25/4.53/4.59), capped at 1.
func particleSizeCorrection(dP, rhoM float64) float64 {
	c2 := 1e6 * dP / mmPerM / (30 * math.Sqrt(rhoM))
	if c2 >= 1 {
		return 1
	}

	return c2
}
