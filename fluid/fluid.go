package fluid

import (
	"math"
)

// MixVelocity computes the black-oil mixture velocity at line conditions
// (RP-O501 eq. 4.14-4.16).
//
//	P  — pressure [bar]
//	T  — temperature [°C]
//	Qo — oil rate [Sm³/d]
//	Qw — water rate [Sm³/d]
//	Qg — gas rate [Sm³/d]
//	Z  — gas compressibility factor [-]
//	D  — cross sectional pipe diameter [m]
//
// Returns the mixture velocity [m/s], rounded to 2 decimals, or NaN on
// physically invalid input.
func MixVelocity(P, T, Qo, Qw, Qg, Z, D float64) float64 {
	if !validPVT(P, T, Qo, Qw, Qg, Z) || !validDiameter(D) {
		return math.NaN()
	}

	TK := T + zeroCelsius
	// Actual volumetric rate at line conditions [m3/d], gas expanded via
	// the real-gas law, divided by the pipe cross section (4.15).
	q := Qo + Qw + Qg*Z*PressureStd*TK/(P*TemperatureStd)
	vM := q / (math.Pi / 4 * D * D) / secondsPerDay

	return round(vM, velocityDecimals)
}

// MixDensity computes the black-oil mixture density at line conditions
// (RP-O501 eq. 4.17).
//
//	P    — pressure [bar]
//	T    — temperature [°C]
//	Qo   — oil rate [Sm³/d]
//	Qw   — water rate [Sm³/d]
//	Qg   — gas rate [Sm³/d]
//	rhoO — oil density at standard conditions [kg/m³]
//	rhoW — water density at standard conditions [kg/m³]
//	MW   — gas molecular weight [kg/kmol]
//	Z    — gas compressibility factor [-]
//
// Returns the mixture density [kg/m³], rounded to 2 decimals, or NaN on
// physically invalid input.
func MixDensity(P, T, Qo, Qw, Qg, rhoO, rhoW, MW, Z float64) float64 {
	if !validPVT(P, T, Qo, Qw, Qg, Z) || !positive("rho_o", rhoO) ||
		!positive("rho_w", rhoW) || !positive("MW", MW) {
		return math.NaN()
	}
	if Qo+Qw+Qg == 0 {
		warn("mixture density undefined at zero total rate")

		return math.NaN()
	}

	TK := T + zeroCelsius
	// Mass rate over volumetric rate at line conditions. Gas standard
	// density from the ideal-gas law at (P0, T0); 1e5 converts bar → Pa.
	mass := Qo*rhoO + Qw*rhoW + Qg*PressureStd*MW/(GasConstant*TemperatureStd)*1e5
	vol := Qo + Qw + Qg*Z*PressureStd*TK/(P*TemperatureStd)

	return round(mass/vol, densityDecimals)
}

// MixViscosity computes the black-oil mixture viscosity at line conditions
// as the flow-weighted phase viscosity. Output units equal input units.
//
//	P   — pressure [bar]
//	T   — temperature [°C]
//	Qo  — oil rate [Sm³/d], must be positive (weighting is oil-relative)
//	Qw  — water rate [Sm³/d]
//	Qg  — gas rate [Sm³/d]
//	muO — oil viscosity
//	muW — water viscosity
//	muG — gas viscosity
//	Z   — gas compressibility factor [-]
//
// Returns the mixture viscosity rounded to 6 decimals, or NaN on physically
// invalid input.
func MixViscosity(P, T, Qo, Qw, Qg, muO, muW, muG, Z float64) float64 {
	if !validPVT(P, T, Qo, Qw, Qg, Z) || !positive("mu_o", muO) ||
		!positive("mu_w", muW) || !positive("mu_g", muG) {
		return math.NaN()
	}
	if Qo == 0 {
		warn("mixture viscosity model requires a positive oil rate")

		return math.NaN()
	}

	TK := T + zeroCelsius
	// Gas expansion factor relative to oil rate.
	x := Qg / Qo * PressureStd * TK * Z / (P * TemperatureStd)
	muM := (muO + Qw/Qo*muW + x*muG) / (1 + Qw/Qo + x)

	return round(muM, viscosityDecimals)
}

// round rounds x to the given number of decimals.
func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(x*p) / p
}
