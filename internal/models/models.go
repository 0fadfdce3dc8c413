package models

import "time"

// DefaultEnergy is used for check-ins that were stored without an energy level
const DefaultEnergy = 5

// Score bounds shared by mood, craving, stress and energy
const (
	MinScore = 1
	MaxScore = 10
)

// MaxCopingActivities bounds the coping activities stored on one check-in
const MaxCopingActivities = 20

// User represents an authenticated user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Checkin represents a single daily self-report
type Checkin struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Mood             int       `json:"mood"`
	Craving          int       `json:"craving"`
	Stress           int       `json:"stress"`
	Energy           *int      `json:"energy,omitempty"`
	CopingActivities []string  `json:"coping_activities"`
	Notes            string    `json:"notes"`
	Date             time.Time `json:"date"` // midnight of the check-in day
	CreatedAt        time.Time `json:"created_at"`
}

// EnergyOrDefault returns the stored energy level, or DefaultEnergy when it is
// missing or outside the score bounds.
func (c Checkin) EnergyOrDefault() int {
	if c.Energy == nil || !InScoreRange(*c.Energy) {
		return DefaultEnergy
	}
	return *c.Energy
}

// HasCoping reports whether at least one coping activity was logged.
func (c Checkin) HasCoping() bool {
	return len(c.CopingActivities) > 0
}

// InScoreRange reports whether v lies in [MinScore, MaxScore].
func InScoreRange(v int) bool {
	return v >= MinScore && v <= MaxScore
}

// CreateCheckinRequest represents the request to create a check-in
type CreateCheckinRequest struct {
	Mood             int      `json:"mood" binding:"required,min=1,max=10"`
	Craving          int      `json:"craving" binding:"required,min=1,max=10"`
	Stress           int      `json:"stress" binding:"required,min=1,max=10"`
	Energy           *int     `json:"energy" binding:"omitempty,min=1,max=10"`
	CopingActivities []string `json:"coping_activities" binding:"omitempty,max=20,dive,required,max=64"`
	Notes            string   `json:"notes" binding:"max=2000"`
}

// UpdateCheckinRequest represents a partial update of a check-in. Nil fields
// are left unchanged; an empty coping_activities list clears them.
type UpdateCheckinRequest struct {
	Mood             *int      `json:"mood" binding:"omitempty,min=1,max=10"`
	Craving          *int      `json:"craving" binding:"omitempty,min=1,max=10"`
	Stress           *int      `json:"stress" binding:"omitempty,min=1,max=10"`
	Energy           *int      `json:"energy" binding:"omitempty,min=1,max=10"`
	CopingActivities *[]string `json:"coping_activities"`
	Notes            *string   `json:"notes" binding:"omitempty,max=2000"`
}
