package erosion

// Series variants evaluate a model over per-sample flow conditions, as
// produced by a well's measured timeseries. Geometry is fixed across the
// series; each sample validates independently, so single bad samples yield
// NaN entries without poisoning the rest.

// BendSeries evaluates Bend over per-sample velocity, density, viscosity
// and sand rate slices. Returns ErrLengthMismatch unless all four slices
// share one length.
func BendSeries(vM, rhoM, muM, qS []float64, r, gf, d, dP float64, opts ...Option) ([]float64, error) {
	if len(rhoM) != len(vM) || len(muM) != len(vM) || len(qS) != len(vM) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(vM))
	for i := range vM {
		out[i] = Bend(vM[i], rhoM[i], muM[i], qS[i], r, gf, d, dP, opts...)
	}

	return out, nil
}

// TeeSeries evaluates Tee over per-sample velocity, density, viscosity and
// sand rate slices. Returns ErrLengthMismatch unless all four slices share
// one length.
func TeeSeries(vM, rhoM, muM, qS []float64, gf, d, dP float64, opts ...Option) ([]float64, error) {
	if len(rhoM) != len(vM) || len(muM) != len(vM) || len(qS) != len(vM) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(vM))
	for i := range vM {
		out[i] = Tee(vM[i], rhoM[i], muM[i], qS[i], gf, d, dP, opts...)
	}

	return out, nil
}

// ProbesSeries evaluates Probes over per-sample velocity, density and sand
// rate slices. Returns ErrLengthMismatch unless all three slices share one
// length.
func ProbesSeries(vM, rhoM, qS []float64, d, dP float64, opts ...Option) ([]float64, error) {
	if len(rhoM) != len(vM) || len(qS) != len(vM) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(vM))
	for i := range vM {
		out[i] = Probes(vM[i], rhoM[i], qS[i], d, dP, opts...)
	}

	return out, nil
}
