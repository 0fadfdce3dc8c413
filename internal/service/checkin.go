package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/metrics"
	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/internal/repository"
)

type checkinService struct {
	checkinRepo repository.CheckinRepository
	cal         Calendar
	metrics     *metrics.Metrics
}

// NewCheckinService creates a new check-in service. m may be nil.
func NewCheckinService(checkinRepo repository.CheckinRepository, cal Calendar, m *metrics.Metrics) CheckinService {
	return &checkinService{
		checkinRepo: checkinRepo,
		cal:         cal,
		metrics:     m,
	}
}

func (s *checkinService) CreateCheckin(ctx context.Context, userID string, req *models.CreateCheckinRequest) (*models.Checkin, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateScores(req); err != nil {
		return nil, err
	}

	existing, err := s.GetTodayCheckin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCheckedIn, existing.ID)
	}

	// Missing energy is stored as the neutral default
	energy := models.DefaultEnergy
	if req.Energy != nil {
		energy = *req.Energy
	}

	checkin := &models.Checkin{
		UserID:           userID,
		Mood:             req.Mood,
		Craving:          req.Craving,
		Stress:           req.Stress,
		Energy:           &energy,
		CopingActivities: normalizeCoping(req.CopingActivities),
		Notes:            strings.TrimSpace(req.Notes),
		Date:             s.cal.Today().Start(s.cal.Location),
	}

	created, err := s.checkinRepo.Create(ctx, checkin)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkin: %w", classifyStoreError(err))
	}

	s.metrics.CheckinCreated()
	logger.Ctx(ctx).Info("checkin created",
		logger.String("checkin_id", created.ID),
		logger.Int("mood", created.Mood),
	)
	return created, nil
}

func (s *checkinService) UpdateCheckin(ctx context.Context, userID, checkinID string, req *models.UpdateCheckinRequest) (*models.Checkin, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(checkinID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCheckinNotFound, checkinID)
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	existing, err := s.checkinRepo.GetByID(ctx, checkinID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkin: %w", classifyLookupError(err))
	}
	if !strings.EqualFold(existing.UserID, userID) {
		logger.Ctx(ctx).Warn("checkin update by another user", logger.String("checkin_id", checkinID))
		return nil, fmt.Errorf("%w: %s", ErrForbidden, checkinID)
	}

	changed := *existing
	if req.Mood != nil {
		changed.Mood = *req.Mood
	}
	if req.Craving != nil {
		changed.Craving = *req.Craving
	}
	if req.Stress != nil {
		changed.Stress = *req.Stress
	}
	if req.Energy != nil {
		energy := *req.Energy
		changed.Energy = &energy
	}
	if req.CopingActivities != nil {
		changed.CopingActivities = normalizeCoping(*req.CopingActivities)
	}
	if req.Notes != nil {
		changed.Notes = strings.TrimSpace(*req.Notes)
	}

	updated, err := s.checkinRepo.Update(ctx, &changed)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkin: %w", classifyLookupError(err))
	}

	s.metrics.CheckinUpdated()
	logger.Ctx(ctx).Info("checkin updated",
		logger.String("checkin_id", updated.ID),
		logger.Int("mood", updated.Mood),
	)
	return updated, nil
}

func (s *checkinService) GetCheckins(ctx context.Context, userID string, from, to models.Date) ([]models.Checkin, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	start, end := s.cal.Bounds(from, to)
	checkins, err := s.checkinRepo.GetByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", classifyStoreError(err))
	}
	return checkins, nil
}

func (s *checkinService) GetTodayCheckin(ctx context.Context, userID string) (*models.Checkin, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}

	today := s.cal.Today()
	start, end := s.cal.Bounds(today, today)
	checkins, err := s.checkinRepo.GetByUserIDAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's checkin: %w", classifyStoreError(err))
	}
	if len(checkins) == 0 {
		return nil, nil
	}

	latest := checkins[len(checkins)-1]
	return &latest, nil
}

func validateScores(req *models.CreateCheckinRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidCheckin)
	}
	return checkScores([]score{
		{"mood", &req.Mood},
		{"craving", &req.Craving},
		{"stress", &req.Stress},
		{"energy", req.Energy},
	})
}

// validateUpdate checks the fields present in a partial update
func validateUpdate(req *models.UpdateCheckinRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidCheckin)
	}
	if req.CopingActivities != nil && len(*req.CopingActivities) > models.MaxCopingActivities {
		return fmt.Errorf("%w: at most %d coping activities", ErrInvalidCheckin, models.MaxCopingActivities)
	}
	return checkScores([]score{
		{"mood", req.Mood},
		{"craving", req.Craving},
		{"stress", req.Stress},
		{"energy", req.Energy},
	})
}

type score struct {
	name  string
	value *int // nil when absent
}

// checkScores rejects any present score outside the score bounds
func checkScores(scores []score) error {
	for _, sc := range scores {
		if sc.value != nil && !models.InScoreRange(*sc.value) {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidCheckin, sc.name, models.MinScore, models.MaxScore)
		}
	}
	return nil
}

// classifyLookupError keeps a missing check-in distinct from store failures
func classifyLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrCheckinNotFound, err)
	}
	return classifyStoreError(err)
}

// normalizeCoping trims activity names and drops blanks and repeats
func normalizeCoping(activities []string) []string {
	out := make([]string, 0, len(activities))
	seen := make(map[string]bool, len(activities))
	for _, a := range activities {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
