// Package latlng parses and formats the latitude/longitude text a user types
// into a coordinate field. Two notations are understood:
//
//   - DEG: decimal degrees, e.g. 35.68097
//   - DMM: degrees and decimal minutes packed into one number,
//     e.g. 3540.85815 for 35°40.85815′
//
// Which notation was used is detected from the value ranges alone. Only
// coordinates around Japan are accepted.
package latlng

import "math"

// DMMToDeg converts a DMM value to decimal degrees.
func DMMToDeg(dmm float64) float64 {
	d := math.Floor(dmm / 100)
	m := (dmm - d*100) / 60.0
	return d + m
}

// DegToDMM converts decimal degrees to a DMM value.
func DegToDMM(deg float64) float64 {
	d := math.Floor(deg)
	m := (deg - d) * 60.0
	return d*100 + m
}
