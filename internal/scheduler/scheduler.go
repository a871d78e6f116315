// Package scheduler decides which calendar dates a routine is due on. All
// functions are pure and deterministic given (frequency, date); persistence
// and display live elsewhere.
package scheduler

import (
	"fmt"
	"time"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/models"
)

// IsDueOn reports whether a routine with the given frequency is due on the
// given date. Legacy weekly frequencies are normalized to daily before
// evaluation; unrecognized types are never due.
func IsDueOn(freq models.Frequency, date time.Time) bool {
	switch freq.Normalize().Type {
	case constants.FrequencyDaily:
		return true
	case constants.FrequencySpecificDays:
		if len(freq.Days) == 0 {
			return false
		}
		return freq.ContainsDay(date.Weekday())
	default:
		return false
	}
}

// NextOccurrence returns the first date strictly after from on which the
// frequency is due. A specific-days frequency with no days is a validation
// failure upstream; it is reported as an error here rather than guessed at.
func NextOccurrence(freq models.Frequency, from time.Time) (time.Time, error) {
	switch freq.Normalize().Type {
	case constants.FrequencyDaily:
		return from.AddDate(0, 0, 1), nil
	case constants.FrequencySpecificDays:
		if len(freq.Days) == 0 {
			return time.Time{}, fmt.Errorf("frequency has no due days")
		}
		for offset := 1; offset <= 7; offset++ {
			candidate := from.AddDate(0, 0, offset)
			if freq.ContainsDay(candidate.Weekday()) {
				return candidate, nil
			}
		}
		// Unreachable: a non-empty weekday set always matches within 7 days.
		return time.Time{}, fmt.Errorf("no matching weekday within a week")
	default:
		return from.AddDate(0, 0, 7), nil
	}
}

// DueRoutines filters routines to those due on the given date.
func DueRoutines(routines []models.Routine, date time.Time) []models.Routine {
	var due []models.Routine
	for _, r := range routines {
		if IsDueOn(r.Frequency, date) {
			due = append(due, r)
		}
	}
	return due
}
