package transport_test

import (
	"fmt"

	"github.com/lundrav/sandcalc/transport"
)

// ExampleHydroCritical sizes a horizontal transport line: below ~0.5 m/s
// the sand forms a stationary bed, above ~0.9 m/s it stays dispersed.
func ExampleHydroCritical() {
	bed, dispersed := transport.HydroCritical(0.1, 700, 1e-3, 0.1)
	fmt.Printf("bed onset: %.2f m/s, dispersed: %.2f m/s\n", bed, dispersed)
	// Output:
	// bed onset: 0.52 m/s, dispersed: 0.86 m/s
}
