package asd

// Series variants convert whole detector timeseries in one call; detector
// history is the natural array-shaped input of this package.

// SandRateSeries converts a raw ASD reading series against one background
// zero and standard step. Each sample converts independently.
func SandRateSeries(raw []float64, zero, step float64) []float64 {
	out := make([]float64, len(raw))
	for i, r := range raw {
		out[i] = SandRate(r, zero, step)
	}

	return out
}

// StdStepClamponSeries computes the Clampon standard step for a mixture
// velocity series at a fixed gas liquid ratio.
func StdStepClamponSeries(vMix []float64, glr float64) []float64 {
	out := make([]float64, len(vMix))
	for i, v := range vMix {
		out[i] = StdStepClampon(v, glr)
	}

	return out
}

// StdStepEmersonSeries computes the Emerson standard step for a mixture
// velocity series at a fixed gas oil ratio.
func StdStepEmersonSeries(vMix []float64, gor float64) []float64 {
	out := make([]float64, len(vMix))
	for i, v := range vMix {
		out[i] = StdStepEmerson(v, gor)
	}

	return out
}
