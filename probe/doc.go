// Package probe inverts the intrusive erosion-probe model: given a
// measured ER-probe erosion rate, it backs out the sand production rate
// that would produce it under the current flow conditions.
package probe
