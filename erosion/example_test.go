package erosion_test

import (
	"fmt"

	"github.com/lundrav/sandcalc/erosion"
)

// ExampleBend evaluates the RP-O501 ch. 4.7 worked example: a duplex steel
// bend at 15 m/s and 100 tonnes of sand per year.
func ExampleBend() {
	qS := 1e5 / 365.0 / 86400 // 100 t/y in g/s
	e := erosion.Bend(15, 333.3, 3.4e-4, qS, 1.5, 1, 0.1, 0.25)
	fmt.Printf("%.5f mm/y\n", e)
	// Output:
	// 0.00143 mm/y
}

// ExampleProbes_material evaluates an intrusive probe in a stainless
// branch line.
func ExampleProbes_material() {
	e := erosion.Probes(30, 80, 1, 0.15, 0.3,
		erosion.WithMaterial("ss316"), erosion.WithImpactAngle(50))
	fmt.Printf("%.3f mm/y\n", e)
	// Output:
	// 2.187 mm/y
}
