package erosion

import "fmt"

// config carries the per-call material and impact parameters. Each model
// starts from its own defaults (duplex steel for piping, DC-05 tungsten
// carbide for choke galleries) and applies the caller's options.
type config struct {
	k     float64 // material erosion constant
	n     float64 // velocity exponent
	rhoT  float64 // target material density [kg/m³]
	rhoP  float64 // particle density [kg/m³]
	alpha float64 // particle impact angle [degrees]
}

// Option customizes the material and impact parameters of an erosion model.
// Option constructors validate their arguments and panic on meaningless
// values; the models themselves never panic.
type Option func(*config)

// WithMaterial selects the target material from the RP-O501 Table 3-1 set,
// overriding K, n and the target density in one go. Panics on an unknown
// material name: pick one of Materials().
func WithMaterial(name string) Option {
	p, ok := materials[name]
	if !ok {
		panic(fmt.Sprintf("erosion: WithMaterial(%q): unknown material", name))
	}

	return func(c *config) {
		c.k, c.n, c.rhoT = p.K, p.N, p.RhoT
	}
}

// WithErosionConstants overrides the material erosion constant K and the
// velocity exponent n. Panics unless both are positive.
func WithErosionConstants(k, n float64) Option {
	if k <= 0 || n <= 0 {
		panic("erosion: WithErosionConstants requires positive K and n")
	}

	return func(c *config) {
		c.k, c.n = k, n
	}
}

// WithTargetDensity overrides the target material density [kg/m³].
// Panics on non-positive values.
func WithTargetDensity(rhoT float64) Option {
	if rhoT <= 0 {
		panic("erosion: WithTargetDensity requires a positive density")
	}

	return func(c *config) {
		c.rhoT = rhoT
	}
}

// WithParticleDensity overrides the sand grain density [kg/m³], default
// quartz (2650). Panics on non-positive values.
func WithParticleDensity(rhoP float64) Option {
	if rhoP <= 0 {
		panic("erosion: WithParticleDensity requires a positive density")
	}

	return func(c *config) {
		c.rhoP = rhoP
	}
}

// WithImpactAngle overrides the particle impact angle [degrees] for the
// weld, reducer and probe models. Panics outside (0, 90].
func WithImpactAngle(deg float64) Option {
	if deg <= 0 || deg > 90 {
		panic("erosion: WithImpactAngle requires an angle in (0, 90]")
	}

	return func(c *config) {
		c.alpha = deg
	}
}

// newConfig resolves the defaults for piping models, then applies opts.
func newConfig(opts []Option) config {
	c := config{
		k:     DefaultK,
		n:     DefaultN,
		rhoT:  DefaultTargetDensity,
		rhoP:  DefaultParticleDensity,
		alpha: DefaultImpactAngle,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// newGalleryConfig resolves the choke-gallery defaults (DC-05 tungsten
// carbide target), then applies opts.
func newGalleryConfig(opts []Option) config {
	dc05 := materials["dc_05"]
	c := config{
		k:     dc05.K,
		n:     dc05.N,
		rhoT:  dc05.RhoT,
		rhoP:  DefaultParticleDensity,
		alpha: galleryImpactAngle,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
