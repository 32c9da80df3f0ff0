// Package geo computes great-circle distances between WGS84 coordinates.
package geo

import (
	"math"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/models"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Validate rejects NaN and out-of-range latitude/longitude.
func Validate(c models.Coordinate) error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return apperr.New(apperr.KindInvalidCoordinate, "coordinate contains NaN")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return apperr.New(apperr.KindInvalidCoordinate, "latitude %v out of range [-90,90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return apperr.New(apperr.KindInvalidCoordinate, "longitude %v out of range [-180,180]", c.Longitude)
	}
	return nil
}

// DistanceMeters returns the haversine great-circle distance between a and b.
// Symmetric, and zero for identical points.
func DistanceMeters(a, b models.Coordinate) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c, nil
}
