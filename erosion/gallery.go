package erosion

import "math"

// ChokeGallery computes the particle erosion rate on the gallery wall of a
// plug/cage or cage/sleeve choke. The gallery jet velocity follows from
// continuity through the annular cage gap; the default target material is
// DC-05 tungsten carbide, per common gallery trim practice.
//
//	vM   — mix velocity in the upstream pipe [m/s]
//	rhoM — mix density [kg/m³]
//	qS   — sand rate [g/s]
//	gf   — geometry factor [-]
//	d    — upstream pipe diameter [m]
//	dP   — particle diameter [mm]
//	rC   — choke gallery radius [m]
//	gap  — gap between cage and choke body [m]
//	h    — effective gallery height [m]
//
// Returns the erosion rate [mm/year], or NaN on invalid input.
func ChokeGallery(vM, rhoM, qS, gf, d, dP, rC, gap, h float64, opts ...Option) float64 {
	if !validFlow(vM, rhoM, qS) || !validDiameters(d, dP) || !validGF(gf) {
		return math.NaN()
	}
	if rC <= 0 || h <= 0 || gap <= 0 || gap >= rC {
		warnValue("gallery geometry requires 0 < gap < Rc and H > 0", "R_c", rC)

		return math.NaN()
	}
	c := newGalleryConfig(opts)

	aPipe := math.Pi / 4 * d * d       // upstream cross section
	aGap := 2 * math.Pi * rC * gap     // annular gap flow area
	vC := vM * aPipe / aGap            // characteristic gallery velocity
	aT := 2 * math.Pi * rC * h         // gallery wall target area
	aRad := c.alpha * math.Pi / 180    // effective wall impact angle
	c2 := particleSizeCorrection(dP, rhoM)

	return c.k * AngleDependency(aRad) * math.Pow(vC, c.n) / (c.rhoT * aT) *
		c2 * galleryC1 * gf * qS / gramsPerKg * cUnit
}

// NozzleValveWall computes the relative wall erosion of a non-slam nozzle
// type check valve, based on the DNVGL CFD study of nozzle check valves
// (report 2019-1237 rev. 1).
//
//	vM — mix velocity through the minimum flow area of the valve [m/s]
//	dP — particle diameter [mm]
//	gf — geometry factor [-]
//	aT — target area [m²]; use the minimum flow area of the valve
//
// Returns the relative erosion rate [mm/ton of sand], or NaN on invalid
// input. The default material is duplex steel; override with WithMaterial.
func NozzleValveWall(vM, dP, gf, aT float64, opts ...Option) float64 {
	if vM < 0 || vM > MaxMixVelocity {
		warnValue("mix velocity outside model envelope [0, 200] m/s", "v_m", vM)

		return math.NaN()
	}
	if dP < MinParticleDiameter || dP > MaxParticleDiameter {
		warnValue("particle diameter outside model envelope [0.02, 5] mm", "d_p", dP)

		return math.NaN()
	}
	if !validGF(gf) {
		return math.NaN()
	}
	if aT <= 0 {
		warnValue("target area must be positive", "A_t", aT)

		return math.NaN()
	}
	c := newConfig(opts)

	// CFD-fitted geometry correction in particle diameter.
	c1 := 8.33*dP*dP*dP - 29.2*dP*dP + 22.8*dP + 1

	return c.k * math.Pow(vM, c.n) / (2 * c.rhoT * aT) * c1 * gf * 1e6
}
