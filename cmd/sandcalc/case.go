package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lundrav/sandcalc/choke"
	"github.com/lundrav/sandcalc/erosion"
	"github.com/lundrav/sandcalc/fluid"
)

// Case is a production case file: PVT conditions, sand data, pipe geometry
// and the erosion models to evaluate at the derived mixture conditions.
type Case struct {
	// PVT block.
	Pressure    float64 `yaml:"pressure"`     // [bar]
	Temperature float64 `yaml:"temperature"`  // [°C]
	OilRate     float64 `yaml:"oil_rate"`     // [Sm³/d]
	WaterRate   float64 `yaml:"water_rate"`   // [Sm³/d]
	GasRate     float64 `yaml:"gas_rate"`     // [Sm³/d]
	ZFactor     float64 `yaml:"z_factor"`     // [-]
	OilDensity  float64 `yaml:"oil_density"`  // [kg/m³] at std conditions
	WaterDens   float64 `yaml:"water_density"`
	GasMolWt    float64 `yaml:"gas_molecular_weight"` // [kg/kmol]
	OilVisc     float64 `yaml:"oil_viscosity"`        // [kg/ms]
	WaterVisc   float64 `yaml:"water_viscosity"`
	GasVisc     float64 `yaml:"gas_viscosity"`

	// Sand and geometry.
	SandRate     float64 `yaml:"sand_rate"`         // [g/s]
	Diameter     float64 `yaml:"diameter"`          // [m]
	ParticleDiam float64 `yaml:"particle_diameter"` // [mm]
	GeomFactor   float64 `yaml:"geometry_factor"`   // [-]
	Material     string  `yaml:"material"`          // erosion.Materials() name

	Models ModelSet `yaml:"models"`
}

// ModelSet selects the erosion models to evaluate and carries their
// geometry-specific parameters. A nil entry means "skip".
type ModelSet struct {
	Bend *struct {
		Radius float64 `yaml:"radius"` // [pipe IDs]
	} `yaml:"bend"`
	Tee          *struct{} `yaml:"tee"`
	StraightPipe *struct{} `yaml:"straight_pipe"`
	Probes       *struct{} `yaml:"probes"`
	Reducer      *struct {
		Downstream float64 `yaml:"downstream_diameter"` // [m]
	} `yaml:"reducer"`
	Choke *struct {
		DownstreamPressure float64 `yaml:"downstream_pressure"` // [bar]
	} `yaml:"choke"`
}

// LoadCase reads and decodes a YAML case file.
func LoadCase(path string) (*Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	var c Case
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode case file: %w", err)
	}
	if c.Material == "" {
		c.Material = "duplex"
	}
	if _, ok := erosion.MaterialProperties(c.Material); !ok {
		return nil, fmt.Errorf("unknown material %q", c.Material)
	}
	if c.GeomFactor == 0 {
		c.GeomFactor = 1
	}

	return &c, nil
}

// Evaluate derives the mixture properties and prints them together with
// every requested erosion model result.
func (c *Case) Evaluate(w io.Writer) error {
	vM := fluid.MixVelocity(c.Pressure, c.Temperature, c.OilRate, c.WaterRate,
		c.GasRate, c.ZFactor, c.Diameter)
	rhoM := fluid.MixDensity(c.Pressure, c.Temperature, c.OilRate, c.WaterRate,
		c.GasRate, c.OilDensity, c.WaterDens, c.GasMolWt, c.ZFactor)
	muM := fluid.MixViscosity(c.Pressure, c.Temperature, c.OilRate, c.WaterRate,
		c.GasRate, c.OilVisc, c.WaterVisc, c.GasVisc, c.ZFactor)

	fmt.Fprintf(w, "mixture velocity:  %8.2f m/s\n", vM)
	fmt.Fprintf(w, "mixture density:   %8.2f kg/m3\n", rhoM)
	fmt.Fprintf(w, "mixture viscosity: %.6f kg/ms\n", muM)

	mat := erosion.WithMaterial(c.Material)

	if m := c.Models.Bend; m != nil {
		e := erosion.Bend(vM, rhoM, muM, c.SandRate, m.Radius, c.GeomFactor,
			c.Diameter, c.ParticleDiam, mat)
		fmt.Fprintf(w, "bend erosion:          %10.4g mm/y\n", e)
	}
	if c.Models.Tee != nil {
		e := erosion.Tee(vM, rhoM, muM, c.SandRate, c.GeomFactor,
			c.Diameter, c.ParticleDiam, mat)
		fmt.Fprintf(w, "blinded tee erosion:   %10.4g mm/y\n", e)
	}
	if c.Models.StraightPipe != nil {
		e := erosion.StraightPipe(vM, c.SandRate, c.Diameter)
		fmt.Fprintf(w, "straight pipe erosion: %10.4g mm/y\n", e)
	}
	if c.Models.Probes != nil {
		e := erosion.Probes(vM, rhoM, c.SandRate, c.Diameter, c.ParticleDiam, mat)
		fmt.Fprintf(w, "probe erosion:         %10.4g mm/y\n", e)
	}
	if m := c.Models.Reducer; m != nil {
		e := erosion.Reducer(vM, rhoM, c.SandRate, c.Diameter, m.Downstream,
			c.ParticleDiam, c.GeomFactor, mat)
		fmt.Fprintf(w, "reducer erosion:       %10.4g mm/y\n", e)
	}
	if m := c.Models.Choke; m != nil {
		vC := choke.CriticalVelocity(c.Pressure, m.DownstreamPressure, rhoM, rhoM)
		cvr := choke.MinChoke(c.SandRate, vC)
		fmt.Fprintf(w, "choke throttling velocity: %6.2f m/s\n", vC)
		fmt.Fprintf(w, "minimum choke opening:     %6.2f Cv\n", cvr)
	}

	return nil
}
