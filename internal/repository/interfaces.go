package repository

//go:generate mockgen -destination=mocks/checkin_mock.go -package=mocks . CheckinRepository

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

var (
	// ErrInvalidUser is returned when the store rejects a malformed user key
	ErrInvalidUser = errors.New("invalid user id")
	// ErrNotFound is returned when no check-in has the requested id
	ErrNotFound = errors.New("checkin not found")
)

// CheckinRepository defines the interface for check-in data access
type CheckinRepository interface {
	Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error)
	GetByID(ctx context.Context, id string) (*models.Checkin, error)
	// Update overwrites the scores, energy, coping activities and notes of an
	// existing check-in. Owner, date and created_at never change.
	Update(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error)
	// GetByUserIDAndDateRange returns the user's check-ins with start <= date < end,
	// ordered by date then created_at.
	GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Checkin, error)
	// GetEarliestDate returns the date of the user's first check-in, or nil
	// when the user has none.
	GetEarliestDate(ctx context.Context, userID string) (*time.Time, error)
}
