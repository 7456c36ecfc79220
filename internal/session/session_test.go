package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatUptime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(start)

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0d, 0h, 0m, 0s"},
		{59 * time.Second, "0d, 0h, 0m, 59s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "0d, 1h, 2m, 3s"},
		{49*time.Hour + 30*time.Minute + 1500*time.Millisecond, "2d, 1h, 30m, 1s"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatUptime(s, start.Add(tt.elapsed)))
	}
}

func TestUptimeBeforeStart(t *testing.T) {
	start := time.Now()
	require.Equal(t, time.Duration(0), Uptime(New(start), start.Add(-time.Minute)))
}

func TestUptimeMonotonic(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New(start)

	var last time.Duration
	for step := time.Duration(0); step < 72*time.Hour; step += 7*time.Minute + 13*time.Second {
		now := start.Add(step)
		uptime := Uptime(s, now)
		require.GreaterOrEqual(t, uptime, last)
		require.NotEmpty(t, FormatUptime(s, now))
		last = uptime
	}
}
