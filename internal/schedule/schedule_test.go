// ABOUTME: Tests for the ultradian session scheduler.
// ABOUTME: Covers interval math, daily resets, work-hour bounds, and countdown.
package schedule

import (
	"testing"
	"time"

	"github.com/harperreed/deskflow/internal/models"
)

func profile() models.Profile {
	return models.Profile{WorkStartTime: "09:00", WorkEndTime: "17:00"}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 28, hour, min, 0, 0, time.Local)
}

func sessionAt(t time.Time) models.Session {
	return models.Session{Date: t, DurationSeconds: 180}
}

func TestNextSessionInterval(t *testing.T) {
	history := []models.Session{sessionAt(at(10, 0))}

	next := NextSession(profile(), history, at(10, 30))

	want := at(11, 30)
	if !next.Equal(want) {
		t.Errorf("NextSession() = %v, want %v", next, want)
	}
	if Due(next, at(10, 30)) {
		t.Error("session should not be due 30 minutes after the last one")
	}
}

func TestNextSessionOverdueClampsToNow(t *testing.T) {
	history := []models.Session{sessionAt(at(10, 0))}
	now := at(11, 45)

	next := NextSession(profile(), history, now)

	if !next.Equal(now) {
		t.Errorf("NextSession() = %v, want now %v", next, now)
	}
	if !Due(next, now) {
		t.Error("overdue session should be due")
	}
}

func TestNextSessionNoHistory(t *testing.T) {
	now := at(10, 0)

	next := NextSession(profile(), nil, now)

	if !next.Equal(now) {
		t.Errorf("NextSession() = %v, want now %v", next, now)
	}
}

func TestNextSessionBeforeWorkStart(t *testing.T) {
	now := at(7, 30)

	next := NextSession(profile(), nil, now)

	want := at(9, 0)
	if !next.Equal(want) {
		t.Errorf("NextSession() = %v, want work start %v", next, want)
	}
}

func TestNextSessionAfterWorkEnd(t *testing.T) {
	history := []models.Session{sessionAt(at(16, 30))}
	now := at(18, 0)

	next := NextSession(profile(), history, now)

	want := at(9, 0).AddDate(0, 0, 1)
	if !next.Equal(want) {
		t.Errorf("NextSession() = %v, want tomorrow %v", next, want)
	}
}

func TestNextSessionYesterdayHistoryResets(t *testing.T) {
	// A session late yesterday does not push today's first session out;
	// the cadence resets each morning.
	yesterday := at(16, 0).AddDate(0, 0, -1)
	history := []models.Session{sessionAt(yesterday)}
	now := at(9, 30)

	next := NextSession(profile(), history, now)

	if !next.Equal(now) {
		t.Errorf("NextSession() = %v, want now %v", next, now)
	}
}

func TestNextSessionUsesMostRecent(t *testing.T) {
	history := []models.Session{
		sessionAt(at(9, 30)),
		sessionAt(at(12, 0)),
		sessionAt(at(10, 45)),
	}

	next := NextSession(profile(), history, at(12, 30))

	want := at(13, 30)
	if !next.Equal(want) {
		t.Errorf("NextSession() = %v, want %v", next, want)
	}
}

func TestNextSessionMalformedHoursFallBack(t *testing.T) {
	p := models.Profile{WorkStartTime: "not-a-time", WorkEndTime: ""}
	now := at(8, 0)

	next := NextSession(p, nil, now)

	want := at(9, 0)
	if !next.Equal(want) {
		t.Errorf("NextSession() = %v, want default work start %v", next, want)
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		name string
		next time.Time
		now  time.Time
		want string
	}{
		{"minutes and seconds", at(10, 30), at(10, 25), "5:00"},
		{"over an hour", at(12, 0), at(10, 25), "1:35:00"},
		{"due clamps to zero", at(10, 0), at(10, 30), "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Countdown(tt.next, tt.now)
			if got != tt.want {
				t.Errorf("Countdown() = %q, want %q", got, tt.want)
			}
		})
	}
}
