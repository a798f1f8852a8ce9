package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance between two points using the
// haversine formula. Symmetric, zero at identity, and safe across the
// antimeridian: the longitude delta goes through sine/cosine, so values
// differing by more than 180 degrees still resolve to the short arc.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
