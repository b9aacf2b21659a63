// Package duestatus derives the display label of a dated item. Labels are computed at
// read time and never stored.
package duestatus

import "time"

type Status string

const (
	Overdue Status = "overdue"
	DueSoon Status = "due_soon"
	OnTrack Status = "on_track"
)

const DefaultWindowDays = 7

// Of labels due relative to today. Both are treated as calendar dates: an item due
// today is DueSoon, one due yesterday is Overdue, and anything inside the next
// windowDays days is DueSoon. A non-positive window falls back to DefaultWindowDays.
func Of(due, today time.Time, windowDays int) Status {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	due = truncate(due)
	today = truncate(today)

	switch {
	case due.Before(today):
		return Overdue
	case due.Before(today.AddDate(0, 0, windowDays)):
		return DueSoon
	default:
		return OnTrack
	}
}

// Valid reports whether value names a known status. Used for list filters.
func Valid(value string) bool {
	switch Status(value) {
	case Overdue, DueSoon, OnTrack:
		return true
	default:
		return false
	}
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
