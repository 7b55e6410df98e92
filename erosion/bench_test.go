package erosion_test

import (
	"testing"

	"github.com/lundrav/sandcalc/erosion"
)

// BenchmarkBend measures a single bend model evaluation at the validation
// table conditions.
func BenchmarkBend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = erosion.Bend(29.3, 30, 1.5e-5, 0.0278, 1.75, 1, 0.0978, 0.28)
	}
}

// BenchmarkBendSeries measures series evaluation over a day of per-minute
// samples.
func BenchmarkBendSeries(b *testing.B) {
	const n = 1440
	vM := make([]float64, n)
	rhoM := make([]float64, n)
	muM := make([]float64, n)
	qS := make([]float64, n)
	for i := 0; i < n; i++ {
		vM[i] = 10 + float64(i%10)
		rhoM[i] = 300
		muM[i] = 4e-4
		qS[i] = 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := erosion.BendSeries(vM, rhoM, muM, qS, 1.5, 1, 0.1, 0.25); err != nil {
			b.Fatalf("BendSeries failed: %v", err)
		}
	}
}
