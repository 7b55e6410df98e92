// Package fluid computes black-oil mixture properties — velocity, density
// and viscosity — from standard-condition flow rates and PVT inputs, per
// DNVGL RP-O501 (August 2015), chapter 4.
//
// All three models assume a homogeneous no-slip mixture: gas volume is
// expanded from standard to line conditions through the real-gas law and the
// phases are flow-weighted. Inputs are field quantities (rates in Sm³/d,
// pressure in bar, temperature in °C); outputs are line-condition mixture
// properties.
//
// Physically invalid input yields NaN, see the module-level conventions in
// package sandcalc.
package fluid
