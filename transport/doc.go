// Package transport computes sand transport threshold velocities: the
// fluid velocities below which produced sand settles out instead of being
// carried through the system.
//
// Two models are provided:
//
//   - HydroCritical — horizontal pipelines. Shields-number based model for
//     the transitions stationary bed → moving bed and moving bed →
//     dispersed transport, after Søntvedt (1995) and Schulkes (2002).
//     The wall shear stress uses the Colebrook friction factor (laminar
//     branch below Re 2000), solved with a secant iteration seeded by the
//     Haaland approximation.
//
//   - Stokes — vertical and deviated (≤ 80° from vertical) flow. Particle
//     settling velocity from Stokes' law with a polynomial drag correction
//     for turbulent flow around the grains, solved by fixed-point
//     iteration on the critical velocity.
//
// Inputs are the liquid/mixture properties at the point of interest.
// Physically invalid inputs yield NaN.
package transport
