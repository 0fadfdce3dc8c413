package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/checkin/backend/internal/analytics"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/metrics"
	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/internal/repository"
)

// Window lengths in calendar days, today included
const (
	WeeklyDays    = 7
	MonthlyDays   = 30
	DashboardDays = 30
	// MaxSeriesDays bounds an arbitrary series request
	MaxSeriesDays = 3660
)

type insightsService struct {
	checkinRepo repository.CheckinRepository
	cal         Calendar
	metrics     *metrics.Metrics
}

// NewInsightsService creates a new insights service. m may be nil.
func NewInsightsService(checkinRepo repository.CheckinRepository, cal Calendar, m *metrics.Metrics) InsightsService {
	return &insightsService{
		checkinRepo: checkinRepo,
		cal:         cal,
		metrics:     m,
	}
}

func (s *insightsService) GetDailySeries(ctx context.Context, userID string, from, to models.Date) (*models.DailySeries, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	started := time.Now()
	series, err := s.loadSeries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := &models.DailySeries{
		From:   series.From,
		To:     series.To,
		Points: series.Points(),
	}
	s.metrics.ObserveComputation(metrics.KindSeries, time.Since(started))

	logger.Ctx(ctx).Debug("computed daily series",
		logger.Stringer("from", from),
		logger.Stringer("to", to),
		logger.Int("days", series.Len()),
	)
	return result, nil
}

func (s *insightsService) GetDashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}

	started := time.Now()
	today := s.cal.Today()
	series, err := s.loadSeries(ctx, userID, today.AddDays(-(DashboardDays - 1)), today)
	if err != nil {
		return nil, err
	}

	stats := analytics.Dashboard(series, today)
	s.metrics.ObserveComputation(metrics.KindDashboard, time.Since(started))

	logger.Ctx(ctx).Debug("computed dashboard stats",
		logger.Stringer("from", series.From),
		logger.Stringer("to", series.To),
		logger.Int("days_with_checkin", stats.Totals.TotalDaysWithCheckin),
	)
	return &stats, nil
}

func (s *insightsService) GetWindowInsights(ctx context.Context, userID string, window models.InsightWindow) (*models.WindowInsights, error) {
	if !window.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}

	started := time.Now()
	from, to, err := s.windowRange(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	series, err := s.loadSeries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	insights := analytics.Window(series)
	insights.Window = window
	s.metrics.ObserveComputation(string(window), time.Since(started))

	logger.Ctx(ctx).Debug("computed window insights",
		logger.String("window", string(window)),
		logger.Stringer("from", from),
		logger.Stringer("to", to),
		logger.Int("records", insights.TotalCheckins),
	)
	return &insights, nil
}

// windowRange resolves the inclusive calendar range of a named window
func (s *insightsService) windowRange(ctx context.Context, userID string, window models.InsightWindow) (models.Date, models.Date, error) {
	today := s.cal.Today()

	switch window {
	case models.WindowWeekly:
		return today.AddDays(-(WeeklyDays - 1)), today, nil
	case models.WindowMonthly:
		return today.AddDays(-(MonthlyDays - 1)), today, nil
	}

	earliest, err := s.checkinRepo.GetEarliestDate(ctx, userID)
	if err != nil {
		return models.Date{}, models.Date{}, s.fetchFailed(ctx, err)
	}
	if earliest == nil {
		return today, today, nil
	}

	from := models.DateOf(*earliest, s.cal.Location)
	if from.After(today) {
		from = today
	}
	return from, today, nil
}

// loadSeries fetches a fresh snapshot of the user's records and arranges it
// into a gap-filled series.
func (s *insightsService) loadSeries(ctx context.Context, userID string, from, to models.Date) (analytics.Series, error) {
	start, end := s.cal.Bounds(from, to)

	records, err := s.checkinRepo.GetByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return analytics.Series{}, s.fetchFailed(ctx, err)
	}

	series, err := analytics.BuildSeries(from, to, analytics.Aggregate(records, s.cal.Location))
	if err != nil {
		return analytics.Series{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	return series, nil
}

func (s *insightsService) fetchFailed(ctx context.Context, err error) error {
	classified := classifyStoreError(err)
	reason := failureReason(classified)
	s.metrics.FetchFailed(reason)

	log := logger.Ctx(ctx).With(logger.String("reason", reason), logger.Err(err))
	if reason == "invalid_user" {
		log.Warn("record store rejected user")
	} else {
		log.Error("failed to fetch check-ins")
	}
	return classified
}

func validateRange(from, to models.Date) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidDateRange)
	}
	if from.After(to) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, from, to)
	}
	if to.DaysSince(from)+1 > MaxSeriesDays {
		return fmt.Errorf("%w: span exceeds %d days", ErrInvalidDateRange, MaxSeriesDays)
	}
	return nil
}
