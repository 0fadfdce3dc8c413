package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// pgInvalidTextRepresentation is raised for a malformed uuid user key
const pgInvalidTextRepresentation = "22P02"

type postgresCheckinRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCheckinRepository creates a check-in repository backed by a pgx pool
func NewPostgresCheckinRepository(db *pgxpool.Pool) CheckinRepository {
	return &postgresCheckinRepository{db: db}
}

const checkinColumns = `id::text, user_id::text, mood, craving, stress, energy, coping_activities, notes, date, created_at`

// scanCheckin reads one row selected with checkinColumns
func scanCheckin(row pgx.Row, c *models.Checkin) error {
	return row.Scan(
		&c.ID,
		&c.UserID,
		&c.Mood,
		&c.Craving,
		&c.Stress,
		&c.Energy,
		&c.CopingActivities,
		&c.Notes,
		&c.Date,
		&c.CreatedAt,
	)
}

// classifyPgError maps store errors onto repository sentinels
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return fmt.Errorf("%w: %s", ErrInvalidUser, pgErr.Message)
	}
	return err
}

func (r *postgresCheckinRepository) Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	query := `
	INSERT INTO checkins (user_id, mood, craving, stress, energy, coping_activities, notes, date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id::text, created_at
	`

	coping := checkin.CopingActivities
	if coping == nil {
		coping = []string{}
	}

	created := *checkin
	created.CopingActivities = coping
	err := r.db.QueryRow(ctx, query,
		checkin.UserID,
		checkin.Mood,
		checkin.Craving,
		checkin.Stress,
		checkin.Energy,
		coping,
		checkin.Notes,
		checkin.Date,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkin: %w", classifyPgError(err))
	}

	return &created, nil
}

func (r *postgresCheckinRepository) GetByID(ctx context.Context, id string) (*models.Checkin, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkins WHERE id = $1`

	var c models.Checkin
	if err := scanCheckin(r.db.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get checkin: %w", err)
	}

	return &c, nil
}

func (r *postgresCheckinRepository) Update(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	query := `
	UPDATE checkins
	SET mood = $2, craving = $3, stress = $4, energy = $5, coping_activities = $6, notes = $7
	WHERE id = $1
	RETURNING ` + checkinColumns

	coping := checkin.CopingActivities
	if coping == nil {
		coping = []string{}
	}

	var updated models.Checkin
	err := scanCheckin(r.db.QueryRow(ctx, query,
		checkin.ID,
		checkin.Mood,
		checkin.Craving,
		checkin.Stress,
		checkin.Energy,
		coping,
		checkin.Notes,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, checkin.ID)
		}
		return nil, fmt.Errorf("failed to update checkin: %w", err)
	}

	return &updated, nil
}

func (r *postgresCheckinRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Checkin, error) {
	query := `
	SELECT ` + checkinColumns + `
	FROM checkins
	WHERE user_id = $1 AND date >= $2 AND date < $3
	ORDER BY date ASC, created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkins: %w", classifyPgError(err))
	}
	defer rows.Close()

	checkins := make([]models.Checkin, 0)
	for rows.Next() {
		var c models.Checkin
		if err := scanCheckin(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checkins: %w", classifyPgError(err))
	}

	return checkins, nil
}

func (r *postgresCheckinRepository) GetEarliestDate(ctx context.Context, userID string) (*time.Time, error) {
	var earliest *time.Time
	err := r.db.QueryRow(ctx, `SELECT MIN(date) FROM checkins WHERE user_id = $1`, userID).Scan(&earliest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get earliest checkin: %w", classifyPgError(err))
	}

	return earliest, nil
}
