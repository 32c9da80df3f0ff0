// Package apperr carries the request-local business error kinds surfaced to
// callers. Storage failures are not wrapped here; they propagate as-is and map
// to a generic internal error at the transport.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies a business failure.
type Kind string

const (
	KindInvalidCoordinate     Kind = "INVALID_COORDINATE"
	KindMisconfiguredGeofence Kind = "MISCONFIGURED_GEOFENCE"
	KindLocationRequired      Kind = "LOCATION_REQUIRED"
	KindOutOfRange            Kind = "OUT_OF_RANGE"
	KindAlreadyClockedIn      Kind = "ALREADY_CLOCKED_IN"
	KindNoOpenSession         Kind = "NO_OPEN_SESSION"
	KindNotAssigned           Kind = "NOT_ASSIGNED"
	KindClockSkew             Kind = "CLOCK_SKEW"
	KindCheckpointNotFound    Kind = "CHECKPOINT_NOT_FOUND"
	KindNotFound              Kind = "NOT_FOUND"
	KindInvalidInput          Kind = "INVALID_INPUT"
	KindUnauthorized          Kind = "UNAUTHORIZED"
)

// Error is a business error with a kind and a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or "" if err is not an apperr.Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is an apperr.Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
