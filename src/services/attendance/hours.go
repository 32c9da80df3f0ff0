package attendance

import (
	"math"
	"time"

	"Backend-GuardPoint/src/apperr"
)

// ComputeHours returns the worked hours between clock-in and clock-out,
// rounded to 2 decimals. A negative duration (clock skew) is an error; a
// negative value is never persisted.
func ComputeHours(clockIn, clockOut time.Time) (float64, error) {
	hours := clockOut.Sub(clockIn).Hours()
	if hours < 0 {
		return 0, apperr.New(apperr.KindClockSkew,
			"clock-out time %s precedes clock-in time %s",
			clockOut.Format(time.RFC3339), clockIn.Format(time.RFC3339))
	}
	return math.Round(hours*100) / 100, nil
}
