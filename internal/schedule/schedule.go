// ABOUTME: Ultradian session scheduler bounded to working hours.
// ABOUTME: Computes the next due workout time from session history and now.
package schedule

import (
	"fmt"
	"time"

	"github.com/harperreed/deskflow/internal/models"
)

// SessionInterval is the ultradian focus/recovery cycle between sessions.
const SessionInterval = 90 * time.Minute

// NextSession computes when the next micro-workout is due. A returned
// time at or before now means the session is due immediately; the caller
// surfaces that as an urgent call-to-action rather than a countdown.
func NextSession(p models.Profile, history []models.Session, now time.Time) time.Time {
	workStart := atTimeOfDay(now, p.WorkStartTime, 9, 0)
	workEnd := atTimeOfDay(now, p.WorkEndTime, 17, 0)

	// Past quitting time: resume at tomorrow's work start.
	if now.After(workEnd) {
		return workStart.AddDate(0, 0, 1)
	}

	last := mostRecent(history)
	if last == nil || !sameDate(last.Date, now) {
		// Nothing logged today; the cadence resets each morning.
		if now.After(workStart) {
			return now
		}
		return workStart
	}

	next := last.Date.Add(SessionInterval)
	if next.Before(now) {
		return now
	}
	return next
}

// Due reports whether the computed next-session time has arrived.
func Due(next, now time.Time) bool {
	return !next.After(now)
}

// Countdown renders the time remaining until next as M:SS (or H:MM:SS),
// clamped at zero once due.
func Countdown(next, now time.Time) string {
	d := next.Sub(now)
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// atTimeOfDay anchors an "HH:MM" time-of-day string to the calendar date
// of ref, in ref's location. Malformed strings fall back to the given
// default hour/minute.
func atTimeOfDay(ref time.Time, hhmm string, defHour, defMin int) time.Time {
	hour, min := defHour, defMin
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
		hour, min = h, m
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, min, 0, 0, ref.Location())
}

func mostRecent(history []models.Session) *models.Session {
	var latest *models.Session
	for i := range history {
		if latest == nil || history[i].Date.After(latest.Date) {
			latest = &history[i]
		}
	}
	return latest
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
