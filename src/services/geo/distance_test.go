package geo

import (
	"math"
	"testing"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/models"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSymmetricAndZero(t *testing.T) {
	a := models.Coordinate{Latitude: 53.4831, Longitude: -2.2004}
	b := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	dAB, err := DistanceMeters(a, b)
	assert.NoError(t, err)
	dBA, err := DistanceMeters(b, a)
	assert.NoError(t, err)
	assert.InDelta(t, dAB, dBA, 1e-6)

	dAA, err := DistanceMeters(a, a)
	assert.NoError(t, err)
	assert.InDelta(t, 0, dAA, 1e-6)
}

func TestDistanceOneDegreeLongitudeAtEquator(t *testing.T) {
	a := models.Coordinate{Latitude: 0, Longitude: 0}
	b := models.Coordinate{Latitude: 0, Longitude: 1}

	d, err := DistanceMeters(a, b)
	assert.NoError(t, err)
	// With the mean radius (6371 km) one degree of longitude at the equator is
	// 6371000 * pi / 180 ≈ 111194.9 m. The commonly quoted 111.32 km figure
	// comes from the WGS84 equatorial radius instead.
	assert.InEpsilon(t, 111194.9, d, 0.001)
}

func TestDistanceManchesterToLondon(t *testing.T) {
	manchester := models.Coordinate{Latitude: 53.4831, Longitude: -2.2004}
	london := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	d, err := DistanceMeters(manchester, london)
	assert.NoError(t, err)
	assert.Greater(t, d, 250000.0)
	assert.Less(t, d, 270000.0)
}

func TestDistanceRejectsInvalidCoordinates(t *testing.T) {
	ok := models.Coordinate{Latitude: 0, Longitude: 0}

	cases := []models.Coordinate{
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: 0, Longitude: math.NaN()},
		{Latitude: 91, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 181},
		{Latitude: 0, Longitude: -181},
	}
	for _, bad := range cases {
		_, err := DistanceMeters(ok, bad)
		assert.True(t, apperr.Is(err, apperr.KindInvalidCoordinate), "expected InvalidCoordinate for %+v", bad)

		_, err = DistanceMeters(bad, ok)
		assert.True(t, apperr.Is(err, apperr.KindInvalidCoordinate), "expected InvalidCoordinate for %+v", bad)
	}
}

func TestDistanceBoundaryCoordinatesAreValid(t *testing.T) {
	_, err := DistanceMeters(
		models.Coordinate{Latitude: 90, Longitude: 180},
		models.Coordinate{Latitude: -90, Longitude: -180},
	)
	assert.NoError(t, err)
}
