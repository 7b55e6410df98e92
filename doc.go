// Package sandcalc is a toolbox of sand-management engineering formulas for
// oil & gas production systems — acoustic sand detection, erosion rates,
// fluid mixture properties and sand transport thresholds.
//
// 🚀 What is sandcalc?
//
//	A small, stateless formula library implementing the empirical models of
//	DNVGL RP-O501 (August 2015) and related field practice:
//		• Fluid properties: black-oil mixture velocity, density & viscosity
//		• Erosion: bends, blinded tees, straight pipes, welded joints,
//		  manifolds, reducers, intrusive probes, choke galleries & valves
//		• Acoustic sand detectors: standard step calibration & sand rates
//		• Sand transport: critical velocities for bed formation & lifting
//		• Chokes: throttling velocity & minimum opening recommendations
//
// ✨ Conventions
//
//   - Every function validates its inputs against the model envelope and
//     returns NaN — never a panic, never an error — on physically invalid
//     input. Out-of-envelope inputs are logged through sandcalc/logging.
//   - Scalar APIs first; time-series variants (…Series) where measurements
//     naturally arrive as arrays.
//   - Defaults follow the standard: duplex steel targets, quartz sand.
//
// Everything is organized under topical subpackages:
//
//	asd/       — acoustic sand detector calibration & sand rate
//	choke/     — throttling velocity & minimum choke opening
//	erosion/   — RP-O501 erosion models & the material table
//	fluid/     — black-oil mixture properties (velocity, density, viscosity)
//	logging/   — structured warning log handle (nop by default)
//	probe/     — ER-probe sand rate inversion
//	transport/ — sand transport threshold velocities
//
// Quick start:
//
//	vM := fluid.MixVelocity(40, 85, 1200, 3000, 1e5, 0.95, 0.1)
//	E := erosion.Bend(vM, 350, 4e-4, 0.1, 1.5, 1, 0.1, 0.25)
//
//	go get github.com/lundrav/sandcalc
package sandcalc
