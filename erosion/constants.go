package erosion

// Default material and particle constants (RP-O501 Table 3-1; quartz sand).
const (
	// DefaultK is the material erosion constant for duplex steel [-].
	DefaultK = 2e-9
	// DefaultN is the velocity exponent for duplex steel [-].
	DefaultN = 2.6
	// DefaultTargetDensity is the duplex steel density [kg/m³].
	DefaultTargetDensity = 7850
	// DefaultParticleDensity is the quartz sand grain density [kg/m³].
	DefaultParticleDensity = 2650
	// DefaultImpactAngle is the worst-case particle impact angle [degrees]
	// used by the weld, reducer and probe models.
	DefaultImpactAngle = 60
)

// Model geometry factors.
const (
	// bendC1 is the model geometry factor for pipe bends (4.34).
	bendC1 = 2.5
	// galleryC1 is the model geometry factor for choke galleries.
	galleryC1 = 1.25
	// galleryImpactAngle is the effective impact angle on the gallery
	// wall [degrees].
	galleryImpactAngle = 45
)

// Unit conversion factors.
const (
	// secondsPerYear converts a per-second rate to per-year (365.25 days).
	// In the bend and tee rates (4.34/4.46-4.48) this is already the
	// g/s-adjusted conversion constant: the nominal factor is 1e3 higher
	// with Qs in kg/s, so no further gramsPerKg division applies there.
	secondsPerYear = 3600 * 24 * 365.25
	// cUnit converts m/s thickness loss with a g/s sand rate to mm/year
	// (4.24): 1e3 (m→mm) × 3.1536e7 (s→y) with Qs carried in kg/s.
	cUnit = 3.15e10
	// gramsPerKg converts g/s sand rates to kg/s.
	gramsPerKg = 1000
	// mmPerM converts particle diameters given in mm to m.
	mmPerM = 1000
)

// Angle dependency F(α) for ductile materials (RP-O501 eq. 3.3).
const (
	angleA = 0.6
	angleB = 7.2
	angleC = 20.0
	angleK = 0.6
)

// Validity envelope shared by the erosion models. Inputs outside yield NaN.
const (
	// MaxMixVelocity bounds the mixture velocity [m/s].
	MaxMixVelocity = 200
	// MaxMixDensity bounds the mixture density [kg/m³].
	MaxMixDensity = 1500
	// MinPipeDiameter / MaxPipeDiameter bound pipe diameters [m].
	MinPipeDiameter = 0.01
	MaxPipeDiameter = 1
	// MinParticleDiameter / MaxParticleDiameter bound particle sizes [mm].
	MinParticleDiameter = 0.02
	MaxParticleDiameter = 5
	// MinGeometryFactor / MaxGeometryFactor bound the geometry factor [-].
	MinGeometryFactor = 1
	MaxGeometryFactor = 6
	// MinBendRadius is the smallest supported bend radius [pipe IDs].
	MinBendRadius = 0.5
)
