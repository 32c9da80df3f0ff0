package attendance

import (
	"testing"
	"time"

	"Backend-GuardPoint/src/apperr"

	"github.com/stretchr/testify/assert"
)

func TestComputeHours(t *testing.T) {
	in := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		out  time.Time
		want float64
	}{
		{"eight hour shift", in.Add(8 * time.Hour), 8.0},
		{"quarter hour", in.Add(15 * time.Minute), 0.25},
		{"rounds to two decimals", in.Add(7*time.Hour + 50*time.Minute), 7.83},
		{"zero duration", in, 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeHours(in, tc.out)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeHoursClockSkew(t *testing.T) {
	in := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	_, err := ComputeHours(in, in.Add(-1*time.Minute))
	assert.True(t, apperr.Is(err, apperr.KindClockSkew))
}

func TestComputeHoursNeverNegative(t *testing.T) {
	in := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	for _, d := range []time.Duration{0, time.Second, time.Minute, 12 * time.Hour} {
		h, err := ComputeHours(in, in.Add(d))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, h, 0.0)
	}
}
