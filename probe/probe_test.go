package probe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lundrav/sandcalc/erosion"
	"github.com/lundrav/sandcalc/probe"
)

// TestERSandRate_Reference reproduces the published inversion case: a
// measured probe erosion of ~7.23 mm/y at 25 m/s corresponds to 4.64 g/s.
func TestERSandRate_Reference(t *testing.T) {
	qS := probe.ERSandRate(7.231897272, 25, 350, 0.12, 0.4)
	assert.InDelta(t, 4.64, qS, 1e-6)
}

// TestERSandRate_RoundTrip: inverting the forward probe model recovers the
// sand rate it was evaluated at.
func TestERSandRate_RoundTrip(t *testing.T) {
	const want = 2.5
	eMeas := erosion.Probes(20, 300, want, 0.15, 0.3)
	got := probe.ERSandRate(eMeas, 20, 300, 0.15, 0.3)
	assert.InDelta(t, want, got, 1e-9)
}

// TestERSandRate_InvalidInput verifies the NaN policy on both sides of the
// inversion.
func TestERSandRate_InvalidInput(t *testing.T) {
	assert.True(t, math.IsNaN(probe.ERSandRate(-1, 25, 350, 0.12, 0.4)),
		"negative measured erosion must yield NaN")
	assert.True(t, math.IsNaN(probe.ERSandRate(7.2, 25, -350, 0.12, 0.4)),
		"invalid flow conditions must yield NaN")
	assert.True(t, math.IsNaN(probe.ERSandRate(7.2, 0, 350, 0.12, 0.4)),
		"stagnant flow must yield NaN, not Inf")
}

// TestERSandRate_LowVelocityStillComputes: below 5 m/s the inversion is
// flagged as unreliable but not blocked.
func TestERSandRate_LowVelocityStillComputes(t *testing.T) {
	qS := probe.ERSandRate(0.1, 3, 350, 0.12, 0.4)
	assert.False(t, math.IsNaN(qS))
	assert.Positive(t, qS)
}
