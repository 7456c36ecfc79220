package session

import (
	"fmt"
	"time"
)

// Session is the process-wide bot state, fixed once the gateway reports ready.
type Session struct {
	StartedAt time.Time
}

// New starts a session at the given instant.
func New(startedAt time.Time) Session {
	return Session{StartedAt: startedAt}
}

// Uptime returns the time elapsed since the session started. Clock readings before the start count as zero.
func Uptime(s Session, now time.Time) time.Duration {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}

	return d
}

// FormatUptime renders the uptime as "Xd, Yh, Zm, Ws".
func FormatUptime(s Session, now time.Time) string {
	return formatDuration(Uptime(s, now))
}

func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%dd, %dh, %dm, %ds", days, hours, minutes, seconds)
}
