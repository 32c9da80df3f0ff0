package geofence

import (
	"testing"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/geo"

	"github.com/stretchr/testify/assert"
)

var (
	etihad = models.Coordinate{Latitude: 53.4831, Longitude: -2.2004}
	nearby = models.Coordinate{Latitude: 53.4835, Longitude: -2.2000} // ≈50 m away
	london = models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
)

func TestEvaluateNotGated(t *testing.T) {
	// non-gated actions pass regardless of what coordinates are present
	for _, target := range []*models.Coordinate{nil, &etihad} {
		for _, submitted := range []*models.Coordinate{nil, &london} {
			res, err := Evaluate(false, target, submitted, 500)
			assert.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.False(t, res.Verified)
			assert.Nil(t, res.Distance)
		}
	}
}

func TestEvaluateMisconfiguredGeofence(t *testing.T) {
	res, err := Evaluate(true, nil, &nearby, 500)
	assert.True(t, apperr.Is(err, apperr.KindMisconfiguredGeofence))
	assert.False(t, res.Allowed)

	// misconfiguration wins even when the device also omitted coordinates
	_, err = Evaluate(true, nil, nil, 500)
	assert.True(t, apperr.Is(err, apperr.KindMisconfiguredGeofence))
}

func TestEvaluateLocationRequired(t *testing.T) {
	res, err := Evaluate(true, &etihad, nil, 500)
	assert.True(t, apperr.Is(err, apperr.KindLocationRequired))
	assert.False(t, res.Allowed)
}

func TestEvaluateWithinRadius(t *testing.T) {
	res, err := Evaluate(true, &etihad, &nearby, 500)
	assert.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.True(t, res.Verified)
	if assert.NotNil(t, res.Distance) {
		assert.Less(t, *res.Distance, 100.0)
	}
}

func TestEvaluateOutOfRange(t *testing.T) {
	res, err := Evaluate(true, &etihad, &london, 500)
	assert.True(t, apperr.Is(err, apperr.KindOutOfRange))
	assert.False(t, res.Allowed)
	// computed distance is still carried for the user-facing message
	if assert.NotNil(t, res.Distance) {
		assert.Greater(t, *res.Distance, 250000.0)
	}
	assert.Contains(t, err.Error(), "m from the required location")
}

func TestEvaluateRadiusBoundaryInclusive(t *testing.T) {
	d, err := geo.DistanceMeters(etihad, nearby)
	assert.NoError(t, err)

	// exactly on the boundary succeeds
	res, err := Evaluate(true, &etihad, &nearby, d)
	assert.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.True(t, res.Verified)

	// one millimetre inside the point fails
	_, err = Evaluate(true, &etihad, &nearby, d-0.001)
	assert.True(t, apperr.Is(err, apperr.KindOutOfRange))
}

func TestEvaluateInvalidSubmittedCoordinate(t *testing.T) {
	bad := models.Coordinate{Latitude: 95, Longitude: 0}
	_, err := Evaluate(true, &etihad, &bad, 500)
	assert.True(t, apperr.Is(err, apperr.KindInvalidCoordinate))
}
