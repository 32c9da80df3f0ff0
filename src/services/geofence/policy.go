// Package geofence decides whether a location-gated action is permitted.
package geofence

import (
	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/geo"
)

// Result is the outcome of a geofence evaluation. Distance is set only when a
// distance was actually computed.
type Result struct {
	Allowed  bool
	Verified bool
	Distance *float64
}

// Evaluate applies the gate rules in order:
//  1. requireLocation=false: allowed, not verified (non-gated action).
//  2. no target coordinate stored: MisconfiguredGeofence.
//  3. no submitted coordinate: LocationRequired.
//  4. distance > radius: OutOfRange (message carries the measured distance);
//     otherwise allowed and verified. The radius boundary is inclusive.
//
// Pure and deterministic; no I/O.
func Evaluate(requireLocation bool, target, submitted *models.Coordinate, radiusMeters float64) (Result, error) {
	if !requireLocation {
		return Result{Allowed: true, Verified: false}, nil
	}
	if target == nil {
		return Result{}, apperr.New(apperr.KindMisconfiguredGeofence,
			"location check required but no reference coordinate is configured")
	}
	if submitted == nil {
		return Result{}, apperr.New(apperr.KindLocationRequired,
			"location is required for this action")
	}

	distance, err := geo.DistanceMeters(*target, *submitted)
	if err != nil {
		return Result{}, err
	}
	if distance > radiusMeters {
		return Result{Distance: &distance}, apperr.New(apperr.KindOutOfRange,
			"you are %.0f m from the required location (allowed radius %.0f m)", distance, radiusMeters)
	}
	return Result{Allowed: true, Verified: true, Distance: &distance}, nil
}
