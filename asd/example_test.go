package asd_test

import (
	"fmt"

	"github.com/lundrav/sandcalc/asd"
)

// ExampleSandRate calibrates a Clampon detector on an oil system and
// converts a raw reading into a sand rate.
func ExampleSandRate() {
	step := asd.StdStepClampon(20, 70) // GLR 70 → oil-system table
	qS := asd.SandRate(31000, 2000, step)
	fmt.Printf("step=%.0f, sand rate=%.1f g/s\n", step, qS)
	// Output:
	// step=14500, sand rate=2.0 g/s
}
