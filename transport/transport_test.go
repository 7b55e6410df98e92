package transport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lundrav/sandcalc/transport"
)

// TestHydroCritical_ReferenceCases reproduces the published horizontal
// transport validation cases: a turbulent oil line and a laminar viscous
// line.
func TestHydroCritical_ReferenceCases(t *testing.T) {
	bed, dispersed := transport.HydroCritical(0.1, 700, 1e-3, 0.1)
	assert.InDelta(t, 0.52, bed, 1e-9)
	assert.InDelta(t, 0.86, dispersed, 1e-9)

	bed, dispersed = transport.HydroCritical(0.01, 500, 1e-2, 0.1)
	assert.InDelta(t, 0.20, bed, 1e-9)
	assert.InDelta(t, 0.41, dispersed, 1e-9)
}

// TestHydroCritical_Ordering: dispersed transport always needs more
// velocity than bed motion.
func TestHydroCritical_Ordering(t *testing.T) {
	bed, dispersed := transport.HydroCritical(0.2, 800, 2e-3, 0.25)
	assert.Less(t, bed, dispersed)
}

// TestHydroCritical_InvalidInput verifies the NaN policy.
func TestHydroCritical_InvalidInput(t *testing.T) {
	bed, dispersed := transport.HydroCritical(-0.1, 700, 1e-3, 0.1)
	assert.True(t, math.IsNaN(bed))
	assert.True(t, math.IsNaN(dispersed))

	// Particle lighter than the liquid never settles out.
	bed, _ = transport.HydroCritical(0.1, 700, 1e-3, 0.1,
		transport.WithParticleDensity(500))
	assert.True(t, math.IsNaN(bed))
}

// TestStokes_ReferenceCases reproduces the published settling velocities
// for a deviated gas well and a wet gas line.
func TestStokes_ReferenceCases(t *testing.T) {
	assert.Equal(t, 0.43, transport.Stokes(200, 1e-5, 0.3, 50))
	assert.Equal(t, 0.27, transport.Stokes(40, 1.5e-5, 0.1, 20))
}

// TestStokes_InvalidInput verifies the NaN policy, including the deviation
// limit of the lifting model.
func TestStokes_InvalidInput(t *testing.T) {
	assert.True(t, math.IsNaN(transport.Stokes(200, 1e-5, 0.3, 85)),
		"beyond 80 degrees the lifting model does not apply")
	assert.True(t, math.IsNaN(transport.Stokes(-200, 1e-5, 0.3, 50)))
	assert.True(t, math.IsNaN(transport.Stokes(200, 0, 0.3, 50)))
	assert.True(t, math.IsNaN(transport.Stokes(3000, 1e-5, 0.3, 50)),
		"mixture denser than quartz cannot settle quartz")
}

// TestStokes_InclinationRaisesVelocity: tilting the well away from
// vertical increases the velocity needed to lift sand.
func TestStokes_InclinationRaisesVelocity(t *testing.T) {
	vertical := transport.Stokes(200, 1e-5, 0.3, 0)
	deviated := transport.Stokes(200, 1e-5, 0.3, 60)
	assert.Greater(t, deviated, vertical)
}

// TestOptions_PanicOnMisuse: option constructors fail fast.
func TestOptions_PanicOnMisuse(t *testing.T) {
	assert.Panics(t, func() { transport.WithRoughness(-1) })
	assert.Panics(t, func() { transport.WithParticleDensity(0) })
}

// TestHydroCritical_RoughnessRaisesShear: a rougher wall reaches the
// critical shear stress at a lower bulk velocity.
func TestHydroCritical_RoughnessRaisesShear(t *testing.T) {
	smoothBed, _ := transport.HydroCritical(0.1, 700, 1e-3, 0.1)
	roughBed, _ := transport.HydroCritical(0.1, 700, 1e-3, 0.1,
		transport.WithRoughness(5e-4))
	assert.LessOrEqual(t, roughBed, smoothBed)
}
