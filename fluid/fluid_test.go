package fluid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lundrav/sandcalc/fluid"
	"github.com/lundrav/sandcalc/logging"
)

// TestMixVelocity_Reference reproduces the RP-O501 black-oil velocity
// validation case.
func TestMixVelocity_Reference(t *testing.T) {
	v := fluid.MixVelocity(10, 40, 1200, 3000, 100000, 0.95, 0.15)
	assert.Equal(t, 9.58, v, "mixture velocity must match the published value")
}

// TestMixDensity_Reference reproduces the RP-O501 black-oil density
// validation case.
func TestMixDensity_Reference(t *testing.T) {
	rho := fluid.MixDensity(30, 60, 300, 4000, 150000, 700, 1000, 19, 0.95)
	assert.Equal(t, 439.69, rho, "mixture density must match the published value")
}

// TestMixViscosity_Reference checks the flow-weighted mixture viscosity at
// the published validation conditions.
func TestMixViscosity_Reference(t *testing.T) {
	mu := fluid.MixViscosity(40, 80, 4000, 300, 400000, 2, 1, 1e-3, 0.9)
	assert.InDelta(t, 0.538166, mu, 1e-6)
}

// TestMixVelocity_InvalidInput verifies the NaN policy for every invalid
// PVT quantity.
func TestMixVelocity_InvalidInput(t *testing.T) {
	cases := map[string]float64{
		"zero pressure":      fluid.MixVelocity(0, 40, 1200, 3000, 1e5, 0.95, 0.15),
		"negative oil rate":  fluid.MixVelocity(10, 40, -1, 3000, 1e5, 0.95, 0.15),
		"negative gas rate":  fluid.MixVelocity(10, 40, 1200, 3000, -1, 0.95, 0.15),
		"zero z-factor":      fluid.MixVelocity(10, 40, 1200, 3000, 1e5, 0, 0.15),
		"excessive z-factor": fluid.MixVelocity(10, 40, 1200, 3000, 1e5, 2.5, 0.15),
		"zero diameter":      fluid.MixVelocity(10, 40, 1200, 3000, 1e5, 0.95, 0),
		"sub-absolute-zero":  fluid.MixVelocity(10, -300, 1200, 3000, 1e5, 0.95, 0.15),
	}
	for name, got := range cases {
		assert.True(t, math.IsNaN(got), "%s must yield NaN", name)
	}
}

// TestMixDensity_InvalidInput covers density-specific invalid inputs.
func TestMixDensity_InvalidInput(t *testing.T) {
	assert.True(t, math.IsNaN(fluid.MixDensity(30, 60, 300, 4000, 150000, -700, 1000, 19, 0.95)),
		"negative oil density must yield NaN")
	assert.True(t, math.IsNaN(fluid.MixDensity(30, 60, 300, 4000, 150000, 700, 1000, 0, 0.95)),
		"zero molecular weight must yield NaN")
	assert.True(t, math.IsNaN(fluid.MixDensity(30, 60, 0, 0, 0, 700, 1000, 19, 0.95)),
		"zero total rate must yield NaN")
}

// TestMixViscosity_RequiresOilRate verifies that the oil-relative weighting
// rejects a zero oil rate.
func TestMixViscosity_RequiresOilRate(t *testing.T) {
	mu := fluid.MixViscosity(40, 80, 0, 300, 400000, 2, 1, 1e-3, 0.9)
	assert.True(t, math.IsNaN(mu), "zero oil rate must yield NaN")

	mu = fluid.MixViscosity(40, 80, 4000, 300, 400000, -2, 1, 1e-3, 0.9)
	assert.True(t, math.IsNaN(mu), "negative oil viscosity must yield NaN")
}

// TestMixVelocity_ZeroRates confirms that an entirely shut-in well has zero
// mixture velocity, not NaN.
func TestMixVelocity_ZeroRates(t *testing.T) {
	assert.Equal(t, 0.0, fluid.MixVelocity(10, 40, 0, 0, 0, 0.95, 0.15))
}

// TestInvalidInputIsLogged: the NaN comes with a warning through the
// module logger.
func TestInvalidInputIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(zap.NewNop())

	got := fluid.MixVelocity(-5, 40, 1200, 3000, 1e5, 0.95, 0.15)
	assert.True(t, math.IsNaN(got))
	assert.Equal(t, 1, logs.Len(), "one warning per offending quantity")
}
