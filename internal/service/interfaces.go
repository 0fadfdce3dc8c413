package service

import (
	"context"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// InsightsService computes analytics over a user's check-ins. Every call
// fetches a fresh snapshot and nothing is cached between calls.
type InsightsService interface {
	GetDailySeries(ctx context.Context, userID string, from, to models.Date) (*models.DailySeries, error)
	GetWindowInsights(ctx context.Context, userID string, window models.InsightWindow) (*models.WindowInsights, error)
	GetDashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error)
}

// CheckinService defines the interface for check-in business logic
type CheckinService interface {
	CreateCheckin(ctx context.Context, userID string, req *models.CreateCheckinRequest) (*models.Checkin, error)
	// UpdateCheckin applies the non-nil fields of req to one of the user's
	// check-ins.
	UpdateCheckin(ctx context.Context, userID, checkinID string, req *models.UpdateCheckinRequest) (*models.Checkin, error)
	GetCheckins(ctx context.Context, userID string, from, to models.Date) ([]models.Checkin, error)
	// GetTodayCheckin returns the most recent check-in of the current day, or
	// nil when there is none.
	GetTodayCheckin(ctx context.Context, userID string) (*models.Checkin, error)
}
