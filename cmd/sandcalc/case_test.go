package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadCase reads the sample case and checks defaults and validation.
func TestLoadCase(t *testing.T) {
	c, err := LoadCase("testdata/well_a.yaml")
	require.NoError(t, err)
	assert.Equal(t, 40.0, c.Pressure)
	assert.Equal(t, "duplex", c.Material)
	assert.Equal(t, 2.0, c.GeomFactor)
	require.NotNil(t, c.Models.Bend)
	assert.Equal(t, 1.5, c.Models.Bend.Radius)
	assert.Nil(t, c.Models.Reducer, "unrequested models stay nil")
}

// TestLoadCase_BadInput rejects unknown materials and missing files.
func TestLoadCase_BadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("material: adamantium\n"), 0o644))

	_, err := LoadCase(path)
	assert.ErrorContains(t, err, "unknown material")

	_, err = LoadCase("testdata/missing.yaml")
	assert.Error(t, err, "missing files error out")
}

// TestCase_Evaluate runs the full chain and spot-checks the report: every
// requested model appears and no derived quantity is NaN.
func TestCase_Evaluate(t *testing.T) {
	c, err := LoadCase("testdata/well_a.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Evaluate(&buf))
	out := buf.String()

	for _, want := range []string{
		"mixture velocity",
		"mixture density",
		"mixture viscosity",
		"bend erosion",
		"blinded tee erosion",
		"straight pipe erosion",
		"probe erosion",
		"choke throttling velocity",
		"minimum choke opening",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "NaN", "a well-formed case must not produce NaN")
}

// TestCase_Evaluate_SkipsUnrequested: only requested models are reported.
func TestCase_Evaluate_SkipsUnrequested(t *testing.T) {
	c, err := LoadCase("testdata/well_a.yaml")
	require.NoError(t, err)
	c.Models.Tee = nil

	var buf bytes.Buffer
	require.NoError(t, c.Evaluate(&buf))
	assert.False(t, strings.Contains(buf.String(), "blinded tee"))
}
