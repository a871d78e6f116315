package models

import "time"

// Task is one dated occurrence of a routine. At most one task exists per
// (RoutineID, Date) pair; the tracker enforces this at creation time.
type Task struct {
	ID        string `json:"id"`
	RoutineID string `json:"routine_id"`
	// Date is the calendar day the task belongs to, YYYY-MM-DD.
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	// Progress accumulates counter/duration units toward the routine's goal
	// value. Nil for completion-goal routines.
	Progress    *float64   `json:"progress,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
