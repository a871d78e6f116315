package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

const taskColumns = "id, routine_id, day, completed, progress, completed_at"

func (s *Store) AddTask(task models.Task) error {
	var progress sql.NullFloat64
	if task.Progress != nil {
		progress = sql.NullFloat64{Float64: *task.Progress, Valid: true}
	}
	var completedAt sql.NullString
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, routine_id, day, completed, progress, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		task.ID, task.RoutineID, task.Date, task.Completed, progress, completedAt)
	return err
}

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var t models.Task
	var progress sql.NullFloat64
	var completedAt sql.NullString

	if err := scan(&t.ID, &t.RoutineID, &t.Date, &t.Completed, &progress, &completedAt); err != nil {
		return models.Task{}, err
	}

	if progress.Valid {
		t.Progress = &progress.Float64
	}
	if completedAt.Valid {
		ts, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("failed to parse completed_at for task %s: %w", t.ID, err)
		}
		t.CompletedAt = &ts
	}

	return t, nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, fmt.Errorf("%w: %s", apperrors.ErrTaskNotFound, id)
		}
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) GetTaskForRoutineOnDate(routineID, date string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE routine_id = ? AND day = ?", routineID, date)
	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, fmt.Errorf("%w: routine %s on %s", apperrors.ErrTaskNotFound, routineID, date)
		}
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) queryTasks(query string, args ...any) ([]models.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) GetTasksForDate(date string) ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE day = ? ORDER BY rowid", date)
}

func (s *Store) GetTasksForRoutine(routineID string) ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE routine_id = ? ORDER BY day", routineID)
}

func (s *Store) UpdateTask(task models.Task) error {
	var progress sql.NullFloat64
	if task.Progress != nil {
		progress = sql.NullFloat64{Float64: *task.Progress, Valid: true}
	}
	var completedAt sql.NullString
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE tasks SET routine_id = ?, day = ?, completed = ?, progress = ?, completed_at = ?
		WHERE id = ?`,
		task.RoutineID, task.Date, task.Completed, progress, completedAt, task.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTaskNotFound, task.ID)
	}
	return nil
}

func (s *Store) DeleteTask(id string) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTaskNotFound, id)
	}
	return nil
}
