// Package commands defines the latlng CLI.
//
// Commands
//
//   - parse <text>   Read a coordinate field the way the API does
//   - dmm <deg>      Convert decimal degrees to DMM
//   - deg <dmm>      Convert DMM to decimal degrees
//
// parse prints the pair in DEG notation, or DMM with --dmm, and exits non-zero
// when the text is not a coordinate near Japan.
package commands
