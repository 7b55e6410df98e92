package fluid_test

import (
	"fmt"

	"github.com/lundrav/sandcalc/fluid"
)

// ExampleMixVelocity derives the line-condition mixture velocity of a
// black-oil well stream from its standard-condition rates.
func ExampleMixVelocity() {
	vM := fluid.MixVelocity(10, 40, 1200, 3000, 100000, 0.95, 0.15)
	fmt.Printf("%.2f m/s\n", vM)
	// Output:
	// 9.58 m/s
}
