package service

import (
	"time"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// Calendar maps the wall clock onto calendar days of the analytics timezone
type Calendar struct {
	Location *time.Location
	Now      func() time.Time
}

// NewCalendar returns a Calendar for loc. A nil loc means UTC and a nil now
// means time.Now.
func NewCalendar(loc *time.Location, now func() time.Time) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Calendar{Location: loc, Now: now}
}

// Today returns the current calendar day
func (c Calendar) Today() models.Date {
	return models.DateOf(c.Now(), c.Location)
}

// Bounds returns the half-open instant range [start, end) covering the
// calendar days from..to inclusive.
func (c Calendar) Bounds(from, to models.Date) (start, end time.Time) {
	return from.Start(c.Location), to.AddDays(1).Start(c.Location)
}
