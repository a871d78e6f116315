package models

import (
	"time"

	"github.com/wird-app/wird/internal/constants"
)

// Frequency describes which calendar dates a routine is due on.
type Frequency struct {
	Type constants.FrequencyType `json:"type"`
	// Days holds the due weekdays for specific-days frequencies
	// (time.Sunday..time.Saturday). Empty for other types.
	Days []time.Weekday `json:"days,omitempty"`
}

// Normalize rewrites removed frequency variants into their supported
// replacement. The legacy weekly variant never carried concrete day
// assignments, so it collapses to daily.
func (f Frequency) Normalize() Frequency {
	if f.Type == constants.FrequencyWeeklyLegacy {
		return Frequency{Type: constants.FrequencyDaily}
	}
	return f
}

// ContainsDay reports whether the given weekday is in the frequency's day set.
func (f Frequency) ContainsDay(wd time.Weekday) bool {
	for _, d := range f.Days {
		if d == wd {
			return true
		}
	}
	return false
}

type Routine struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Icon      string             `json:"icon,omitempty"`
	Color     string             `json:"color,omitempty"`
	Frequency Frequency          `json:"frequency"`
	GoalType  constants.GoalType `json:"goal_type"`
	// GoalValue and GoalUnit are set only for counter and duration goals.
	GoalValue float64   `json:"goal_value,omitempty"`
	GoalUnit  string    `json:"goal_unit,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMeasuredGoal reports whether the routine tracks numeric progress.
func (r Routine) HasMeasuredGoal() bool {
	return r.GoalType == constants.GoalCounter || r.GoalType == constants.GoalDuration
}
