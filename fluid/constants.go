package fluid

// Standard reference conditions used to expand standard-condition rates to
// line conditions (RP-O501 eq. 4.14-4.17).
const (
	// PressureStd is the pressure at standard conditions [bar].
	PressureStd = 1.01325
	// TemperatureStd is the temperature at standard conditions [K].
	TemperatureStd = 289.0
	// GasConstant is the universal gas constant [J/(kmol·K)].
	GasConstant = 8314.0
)

// zeroCelsius converts °C to K.
const zeroCelsius = 273.15

// secondsPerDay converts daily volumetric rates to per-second rates.
const secondsPerDay = 24 * 3600

const (
	// velocityDecimals is the reporting resolution for mixture velocity.
	velocityDecimals = 2
	// densityDecimals is the reporting resolution for mixture density.
	densityDecimals = 2
	// viscosityDecimals is the reporting resolution for mixture viscosity.
	viscosityDecimals = 6
)
