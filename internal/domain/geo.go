package domain

import "math"

const (
	// EarthRadiusMeters is the IUGG mean earth radius.
	EarthRadiusMeters = 6371008.8

	// DefaultNearbyRadiusMeters bounds proximity search.
	DefaultNearbyRadiusMeters = 10000
	// DefaultNearbyLimit caps proximity results.
	DefaultNearbyLimit = 10
	// DefaultSearchLimit caps text search results.
	DefaultSearchLimit = 5
)

// Location is a GeoJSON-style point (longitude first) with a postal address.
type Location struct {
	Lng     float64
	Lat     float64
	Address string
}

// ValidateCoordinates checks that lng/lat are finite and within WGS84 bounds.
func ValidateCoordinates(lng, lat float64) error {
	var verr ValidationError
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		verr.Add("lng", "must be between -180 and 180")
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		verr.Add("lat", "must be between -90 and 90")
	}
	return verr.OrNil()
}

// DistanceMeters returns the great-circle distance between a and b using
// the haversine formula. The SQL proximity query uses the same formula.
func DistanceMeters(a, b Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
