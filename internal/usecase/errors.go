package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage failure")
)

// ValidationReason names the rule a rejected input broke.
type ValidationReason string

const (
	ReasonMissingPlayer      ValidationReason = "missing_player"
	ReasonOutOfRangeGameweek ValidationReason = "out_of_range_gameweek"
	ReasonInvalidSeason      ValidationReason = "invalid_season"
	ReasonInvalidStatKind    ValidationReason = "invalid_stat_kind"
	ReasonInvalidDivision    ValidationReason = "invalid_division"
	ReasonNonPositiveCount   ValidationReason = "non_positive_count"
	ReasonNotCurrentPeriod   ValidationReason = "not_current_period"
	ReasonPositionTooLong    ValidationReason = "position_too_long"
)

// ValidationError is returned for every rejected input. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(reason ValidationReason, format string, args ...any) error {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ValidationReasonOf extracts the reason from err, if it carries one.
func ValidationReasonOf(err error) (ValidationReason, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Reason, true
	}
	return "", false
}

// storageFailure marks a repository error so callers can tell it apart from
// rejected input. Errors that already carry a domain sentinel pass through.
// The mark is only visible to crerr.Is, see IsStorageFailure.
func storageFailure(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || crerr.Is(err, ErrStorage) {
		return err
	}
	return crerr.Mark(crerr.Wrap(err, msg), ErrStorage)
}

// IsStorageFailure reports whether err was produced by a failing store.
func IsStorageFailure(err error) bool {
	return crerr.Is(err, ErrStorage)
}
