// Package model defines the domain records shared between the repository
// and handler layers. Fields mirror database columns; json tags match the
// wire format the web client expects.
package model

// Building is a campus building shown on the map. Code is the short
// campus-wide identifier (e.g. "EME"); coordinates are WGS84.
type Building struct {
	ID          uint64   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}
