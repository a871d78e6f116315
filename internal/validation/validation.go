// Package validation holds the creation/edit-time checks for user-supplied
// records. Invalid records are rejected here, before they reach storage, so
// the scheduler and tracker never need to second-guess their inputs.
package validation

import (
	"fmt"
	"time"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

// ValidateRoutine checks the routine invariants: a known frequency type, a
// non-empty in-range day set for specific-days, and a positive goal value for
// measured goals.
func ValidateRoutine(r models.Routine) error {
	if r.Name == "" {
		return fmt.Errorf("routine name is required")
	}

	switch r.Frequency.Type {
	case constants.FrequencyDaily:
		// No parameters.
	case constants.FrequencySpecificDays:
		if len(r.Frequency.Days) == 0 {
			return errors.ErrInvalidFrequency
		}
		for _, d := range r.Frequency.Days {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("%w: weekday %d out of range", errors.ErrInvalidFrequency, d)
			}
		}
	case constants.FrequencyWeeklyLegacy:
		return fmt.Errorf("%w: the weekly frequency has been removed, use daily or specific-days", errors.ErrInvalidFrequency)
	default:
		return fmt.Errorf("%w: unknown frequency type %q", errors.ErrInvalidFrequency, r.Frequency.Type)
	}

	switch r.GoalType {
	case constants.GoalCompletion:
		// No goal value.
	case constants.GoalCounter, constants.GoalDuration:
		if r.GoalValue <= 0 {
			return errors.ErrInvalidGoalValue
		}
	default:
		return fmt.Errorf("unknown goal type %q", r.GoalType)
	}

	return nil
}

// ValidateBook checks book fields at creation/edit time.
func ValidateBook(b models.Book) error {
	if b.Title == "" {
		return fmt.Errorf("book title is required")
	}
	if b.TotalPages <= 0 {
		return fmt.Errorf("total pages must be greater than zero")
	}
	if b.CurrentPage < 0 || b.CurrentPage > b.TotalPages {
		return fmt.Errorf("current page must be between 0 and %d", b.TotalPages)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(dateStr string) error {
	if _, err := time.Parse(constants.DateFormat, dateStr); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return nil
}

// ValidatePageNumber checks a mushaf page id.
func ValidatePageNumber(page int) error {
	if page < 1 || page > constants.QuranPageCount {
		return fmt.Errorf("%w: %d (expected 1-%d)", errors.ErrPageOutOfRange, page, constants.QuranPageCount)
	}
	return nil
}
