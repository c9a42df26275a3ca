package models

import "errors"

// ErrNotFound is returned by repositories when a query matches no row.
var ErrNotFound = errors.New("not found")

// Location represents a single addressable point, containing its decomposed Japanese address components and its precise geographic coordinates.
type Location struct {
	ID           int     `json:"id"`
	Prefecture   string  `json:"prefecture"`
	Municipality string  `json:"municipality"`
	Address1     string  `json:"address1"`
	Address2     string  `json:"address2"`
	BlockLot     string  `json:"block_lot"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// LatLng is a coordinate pair in decimal degrees.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
