package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/pkg/supabase"
)

const checkinsTable = "checkins"

type supabaseCheckinRepository struct {
	client *supabase.Client
}

// NewSupabaseCheckinRepository creates a check-in repository backed by Supabase PostgREST
func NewSupabaseCheckinRepository(client *supabase.Client) CheckinRepository {
	return &supabaseCheckinRepository{client: client}
}

// classifySupabaseError maps PostgREST errors onto repository sentinels
func classifySupabaseError(err error) error {
	var sbErr *supabase.Error
	if errors.As(err, &sbErr) && sbErr.Code == pgInvalidTextRepresentation {
		return fmt.Errorf("%w: %s", ErrInvalidUser, sbErr.Message)
	}
	return err
}

func (r *supabaseCheckinRepository) Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	coping := checkin.CopingActivities
	if coping == nil {
		coping = []string{}
	}

	data := map[string]interface{}{
		"user_id":           checkin.UserID,
		"mood":              checkin.Mood,
		"craving":           checkin.Craving,
		"stress":            checkin.Stress,
		"coping_activities": coping,
		"notes":             checkin.Notes,
		"date":              checkin.Date.Format(time.RFC3339),
	}
	if checkin.Energy != nil {
		data["energy"] = *checkin.Energy
	}

	body, err := r.client.Insert(ctx, checkinsTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkin: %w", classifySupabaseError(err))
	}

	var checkins []models.Checkin
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(checkins) == 0 {
		return nil, fmt.Errorf("no checkin returned")
	}

	return &checkins[0], nil
}

func (r *supabaseCheckinRepository) GetByID(ctx context.Context, id string) (*models.Checkin, error) {
	query := map[string]string{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
		"limit":  "1",
	}

	body, err := r.client.Query(ctx, checkinsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkin: %w", err)
	}

	return firstCheckin(body, id)
}

func (r *supabaseCheckinRepository) Update(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	coping := checkin.CopingActivities
	if coping == nil {
		coping = []string{}
	}

	data := map[string]interface{}{
		"mood":              checkin.Mood,
		"craving":           checkin.Craving,
		"stress":            checkin.Stress,
		"energy":            checkin.Energy,
		"coping_activities": coping,
		"notes":             checkin.Notes,
	}

	body, err := r.client.Update(ctx, checkinsTable, checkin.ID, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkin: %w", err)
	}

	return firstCheckin(body, checkin.ID)
}

// firstCheckin decodes a PostgREST representation, ErrNotFound when empty
func firstCheckin(body []byte, id string) (*models.Checkin, error) {
	var checkins []models.Checkin
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(checkins) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &checkins[0], nil
}

func (r *supabaseCheckinRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Checkin, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(date.gte.%s,date.lt.%s)", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		"select":  "*",
		"order":   "date.asc,created_at.asc",
	}

	body, err := r.client.Query(ctx, checkinsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkins: %w", classifySupabaseError(err))
	}

	checkins := make([]models.Checkin, 0)
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return checkins, nil
}

func (r *supabaseCheckinRepository) GetEarliestDate(ctx context.Context, userID string) (*time.Time, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "date",
		"order":   "date.asc",
		"limit":   "1",
	}

	body, err := r.client.Query(ctx, checkinsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get earliest checkin: %w", classifySupabaseError(err))
	}

	var rows []struct {
		Date time.Time `json:"date"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0].Date, nil
}
