package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/checkin/backend/internal/repository"
)

var (
	// ErrInvalidUser indicates the user id is malformed or was rejected by the
	// record store. Retrying will not help.
	ErrInvalidUser = errors.New("invalid user")
	// ErrRecordsUnavailable indicates the record store could not be reached or
	// failed temporarily. The request is safe to retry.
	ErrRecordsUnavailable = errors.New("check-in records temporarily unavailable")
	// ErrInvalidDateRange indicates from is after to or the span is too long
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidWindow indicates an unknown insight window name
	ErrInvalidWindow = errors.New("invalid insight window")
	// ErrAlreadyCheckedIn indicates the user already checked in today
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	// ErrInvalidCheckin indicates a score outside [1, 10] or too many coping
	// activities
	ErrInvalidCheckin = errors.New("invalid check-in")
	// ErrCheckinNotFound indicates no check-in has the requested id
	ErrCheckinNotFound = errors.New("check-in not found")
	// ErrForbidden indicates the check-in belongs to another user
	ErrForbidden = errors.New("check-in belongs to another user")
)

// ValidateUserID checks that id is a well-formed UUID.
// Returns nil if valid, or an error wrapping ErrInvalidUser.
func ValidateUserID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	if parsed == uuid.Nil {
		return fmt.Errorf("%w: nil uuid", ErrInvalidUser)
	}
	return nil
}

// classifyStoreError folds a record store failure into one of the two fetch
// failure signals: ErrInvalidUser (permanent) or ErrRecordsUnavailable
// (temporary).
func classifyStoreError(err error) error {
	if errors.Is(err, repository.ErrInvalidUser) {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return fmt.Errorf("%w: %v", ErrRecordsUnavailable, err)
}

// failureReason labels a classified store error for metrics
func failureReason(err error) string {
	if errors.Is(err, ErrInvalidUser) {
		return "invalid_user"
	}
	return "unavailable"
}
