package ncviz

import "math"

// Coord is a geographic coordinate in degrees, longitude first.
type Coord struct {
	Lon, Lat float64
}

// C is a convenience function to create a Coord.
func C(lon, lat float64) Coord {
	return Coord{Lon: lon, Lat: lat}
}

// NormalizeLon returns the coordinate with its longitude wrapped into
// the interval [-180, 180).
func (c Coord) NormalizeLon() Coord {
	lon := math.Mod(c.Lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return Coord{Lon: lon - 180, Lat: c.Lat}
}

// Equal reports whether two coordinates are bit-for-bit identical.
func (c Coord) Equal(q Coord) bool {
	return c.Lon == q.Lon && c.Lat == q.Lat
}
