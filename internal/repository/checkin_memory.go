package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// MemoryCheckinRepository keeps check-ins in process memory. It is meant for
// local development and tests; data is lost on restart.
type MemoryCheckinRepository struct {
	mu       sync.RWMutex
	checkins map[string][]models.Checkin // user id -> check-ins
	now      func() time.Time
}

// NewMemoryCheckinRepository creates an empty in-memory repository
func NewMemoryCheckinRepository() *MemoryCheckinRepository {
	return &MemoryCheckinRepository{
		checkins: make(map[string][]models.Checkin),
		now:      time.Now,
	}
}

func validUserID(userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUser, userID)
	}
	return nil
}

func (r *MemoryCheckinRepository) Create(_ context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	if err := validUserID(checkin.UserID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *checkin
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}
	stored.CopingActivities = append([]string(nil), checkin.CopingActivities...)
	if checkin.Energy != nil {
		energy := *checkin.Energy
		stored.Energy = &energy
	}

	r.checkins[stored.UserID] = append(r.checkins[stored.UserID], stored)

	out := stored
	return &out, nil
}

// find returns the stored check-in with id. Callers hold r.mu.
func (r *MemoryCheckinRepository) find(id string) *models.Checkin {
	for userID := range r.checkins {
		stored := r.checkins[userID]
		for i := range stored {
			if stored[i].ID == id {
				return &stored[i]
			}
		}
	}
	return nil
}

func (r *MemoryCheckinRepository) GetByID(_ context.Context, id string) (*models.Checkin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.find(id)
	if stored == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	out := *stored
	out.CopingActivities = append([]string(nil), stored.CopingActivities...)
	return &out, nil
}

func (r *MemoryCheckinRepository) Update(_ context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(checkin.ID)
	if stored == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, checkin.ID)
	}

	stored.Mood = checkin.Mood
	stored.Craving = checkin.Craving
	stored.Stress = checkin.Stress
	stored.Energy = nil
	if checkin.Energy != nil {
		energy := *checkin.Energy
		stored.Energy = &energy
	}
	stored.CopingActivities = append([]string(nil), checkin.CopingActivities...)
	stored.Notes = checkin.Notes

	out := *stored
	out.CopingActivities = append([]string(nil), stored.CopingActivities...)
	return &out, nil
}

func (r *MemoryCheckinRepository) GetByUserIDAndDateRange(_ context.Context, userID string, start, end time.Time) ([]models.Checkin, error) {
	if err := validUserID(userID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Checkin, 0)
	for _, c := range r.checkins[userID] {
		if !c.Date.Before(start) && c.Date.Before(end) {
			c.CopingActivities = append([]string(nil), c.CopingActivities...)
			result = append(result, c)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *MemoryCheckinRepository) GetEarliestDate(_ context.Context, userID string) (*time.Time, error) {
	if err := validUserID(userID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var earliest *time.Time
	for _, c := range r.checkins[userID] {
		if earliest == nil || c.Date.Before(*earliest) {
			d := c.Date
			earliest = &d
		}
	}

	return earliest, nil
}
