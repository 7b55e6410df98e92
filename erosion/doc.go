// Package erosion implements the empirical sand-erosion models of DNVGL
// RP-O501 (August 2015) for the standard production-system geometries.
//
// 🚀 What is in here?
//
//	Erosion-rate models (mm/year unless noted):
//	  • Bend          — pipe bends (ch. 4.7)
//	  • Tee           — blinded tees (ch. 4.8)
//	  • StraightPipe  — smooth straight pipes
//	  • WeldedJoint   — flow-facing weld & downstream wall
//	  • Manifold      — manifold branches via a synthetic bend radius
//	  • Reducer       — pipe reducers
//	  • Probes        — intrusive ER/sand probes
//	  • ChokeGallery  — choke gallery walls (tungsten carbide default)
//	  • NozzleValveWall — non-slam nozzle check valves (mm/ton)
//	plus AngleDependency (ductile-material F(α)) and the RP-O501 Table 3-1
//	material constants (Materials, MaterialProperties).
//
// ✨ Conventions
//
//   - Defaults are duplex steel targets (K=2e-9, n=2.6, ρ_t=7850 kg/m³) and
//     quartz sand particles (ρ_p=2650 kg/m³); override with functional
//     options (WithMaterial, WithErosionConstants, WithTargetDensity,
//     WithParticleDensity, WithImpactAngle). Option constructors validate
//     and panic on meaningless values; the models themselves never panic.
//   - Physically invalid or out-of-envelope input yields NaN and a warning
//     through sandcalc/logging.
//   - Series variants (BendSeries, TeeSeries, ProbesSeries) evaluate a model
//     over per-sample flow conditions; mismatched slice lengths return
//     ErrLengthMismatch.
//
// ⚙️ Usage:
//
//	import "github.com/lundrav/sandcalc/erosion"
//
//	// duplex-steel bend, quartz sand
//	E := erosion.Bend(29.3, 30, 1.5e-5, 0.278, 1.75, 1, 0.0978, 0.28)
//
//	// stainless probe at 50° impact angle
//	E = erosion.Probes(30, 80, 1, 0.15, 0.3,
//	    erosion.WithMaterial("ss316"), erosion.WithImpactAngle(50))
package erosion
