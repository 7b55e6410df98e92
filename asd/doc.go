// Package asd calibrates acoustic sand detectors (ASDs): it computes the
// standard step — the acoustic response of one g/s of sand at the detector —
// for the two common detector families, and converts raw detector counts
// into sand production rates.
//
// The Clampon standard step is interpolated from tabulated oil- and
// gas-system responses versus mixture velocity; the Emerson standard step
// is a cubic polynomial in mixture velocity. Which branch applies is
// selected by the gas-liquid (GLR) or gas-oil (GOR) ratio.
//
// Sand rate from a calibrated detector:
//
//	step := asd.StdStepClampon(vMix, glr)
//	qs := asd.SandRate(raw, zero, step) // [g/s]
//
// A negative computed step, a non-positive step in SandRate, or a negative
// ratio input yields NaN. Raw readings at or below the background zero give
// a sand rate of 0.
package asd
