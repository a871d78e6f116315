package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wird-app/wird/internal/constants"
	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

// encodeDays serializes a weekday set as a comma-separated list ("1,3,5").
func encodeDays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeDays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q: %w", p, err)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}

func (s *Store) AddRoutine(routine models.Routine) error {
	var goalValue sql.NullFloat64
	if routine.HasMeasuredGoal() {
		goalValue = sql.NullFloat64{Float64: routine.GoalValue, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO routines (id, name, icon, color, frequency_type, frequency_days, goal_type, goal_value, goal_unit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		routine.ID, routine.Name, routine.Icon, routine.Color,
		string(routine.Frequency.Type), encodeDays(routine.Frequency.Days),
		string(routine.GoalType), goalValue, routine.GoalUnit,
		routine.CreatedAt.Format(time.RFC3339), routine.UpdatedAt.Format(time.RFC3339))
	return err
}

func scanRoutine(scan func(dest ...any) error) (models.Routine, error) {
	var r models.Routine
	var freqType, freqDays, goalType, createdAt, updatedAt string
	var goalValue sql.NullFloat64

	if err := scan(&r.ID, &r.Name, &r.Icon, &r.Color, &freqType, &freqDays, &goalType, &goalValue, &r.GoalUnit, &createdAt, &updatedAt); err != nil {
		return models.Routine{}, err
	}

	days, err := decodeDays(freqDays)
	if err != nil {
		return models.Routine{}, fmt.Errorf("failed to decode frequency days for routine %s: %w", r.ID, err)
	}
	r.Frequency = models.Frequency{Type: constants.FrequencyType(freqType), Days: days}
	r.GoalType = constants.GoalType(goalType)
	if goalValue.Valid {
		r.GoalValue = goalValue.Float64
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Routine{}, fmt.Errorf("failed to parse created_at for routine %s: %w", r.ID, err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Routine{}, fmt.Errorf("failed to parse updated_at for routine %s: %w", r.ID, err)
	}

	return r, nil
}

const routineColumns = "id, name, icon, color, frequency_type, frequency_days, goal_type, goal_value, goal_unit, created_at, updated_at"

func (s *Store) GetRoutine(id string) (models.Routine, error) {
	row := s.db.QueryRow("SELECT "+routineColumns+" FROM routines WHERE id = ?", id)
	r, err := scanRoutine(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Routine{}, fmt.Errorf("%w: %s", apperrors.ErrRoutineNotFound, id)
		}
		return models.Routine{}, err
	}
	return r, nil
}

func (s *Store) GetAllRoutines() ([]models.Routine, error) {
	rows, err := s.db.Query("SELECT " + routineColumns + " FROM routines ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routines []models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows.Scan)
		if err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}

	return routines, rows.Err()
}

func (s *Store) UpdateRoutine(routine models.Routine) error {
	var goalValue sql.NullFloat64
	if routine.HasMeasuredGoal() {
		goalValue = sql.NullFloat64{Float64: routine.GoalValue, Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE routines
		SET name = ?, icon = ?, color = ?, frequency_type = ?, frequency_days = ?, goal_type = ?, goal_value = ?, goal_unit = ?, updated_at = ?
		WHERE id = ?`,
		routine.Name, routine.Icon, routine.Color,
		string(routine.Frequency.Type), encodeDays(routine.Frequency.Days),
		string(routine.GoalType), goalValue, routine.GoalUnit,
		routine.UpdatedAt.Format(time.RFC3339), routine.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrRoutineNotFound, routine.ID)
	}
	return nil
}

// DeleteRoutine removes the routine and all of its tasks in one transaction.
func (s *Store) DeleteRoutine(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM tasks WHERE routine_id = ?", id); err != nil {
		_ = tx.Rollback()
		return err
	}

	result, err := tx.Exec("DELETE FROM routines WHERE id = ?", id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if rows == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s", apperrors.ErrRoutineNotFound, id)
	}

	return tx.Commit()
}
