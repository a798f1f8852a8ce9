// Package geo holds the pure geospatial math used across the service:
// coordinates, viewport bounds, great-circle distance and the
// probability-radius heuristic for probable-location visualization.
package geo

// Coordinate is a (latitude, longitude) pair in degrees.
// Latitude -90..90, longitude -180..180. Range validation is the caller's
// concern; out-of-range values still produce mathematically defined results.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is an axis-aligned lat/lng rectangle, typically a captured map
// viewport. Edges are inclusive.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether c falls within b, edges included.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}
