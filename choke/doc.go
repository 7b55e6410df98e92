// Package choke implements the choke-specific recommendations of DNVGL
// RP-O501 ch. 4.12.3: the throttling velocity across a choke and the
// recommended minimum relative opening for plug/cage and cage/sleeve
// chokes under sand production.
package choke
