// Package tracker turns due routines into dated tasks and records completion
// and progress against them. It is the only writer of the tasks collection.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wird-app/wird/internal/constants"
	apperrors "github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
	"github.com/wird-app/wird/internal/scheduler"
	"github.com/wird-app/wird/internal/storage"
	"github.com/wird-app/wird/internal/validation"
)

type Service struct {
	store storage.Provider

	// now is swappable in tests.
	now func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateRoutine validates and stores a new routine.
func (s *Service) CreateRoutine(routine models.Routine) (models.Routine, error) {
	if err := validation.ValidateRoutine(routine); err != nil {
		return models.Routine{}, err
	}

	if routine.ID == "" {
		routine.ID = uuid.NewString()
	}
	now := s.now()
	routine.CreatedAt = now
	routine.UpdatedAt = now

	if err := s.store.AddRoutine(routine); err != nil {
		return models.Routine{}, fmt.Errorf("failed to save routine: %w", err)
	}
	return routine, nil
}

// UpdateRoutine validates and stores changes to an existing routine. Existing
// tasks keep their recorded state; only future scheduling is affected.
func (s *Service) UpdateRoutine(routine models.Routine) (models.Routine, error) {
	if err := validation.ValidateRoutine(routine); err != nil {
		return models.Routine{}, err
	}

	existing, err := s.store.GetRoutine(routine.ID)
	if err != nil {
		return models.Routine{}, err
	}
	routine.CreatedAt = existing.CreatedAt
	routine.UpdatedAt = s.now()

	if err := s.store.UpdateRoutine(routine); err != nil {
		return models.Routine{}, fmt.Errorf("failed to update routine: %w", err)
	}
	return routine, nil
}

// DeleteRoutine removes a routine together with every task recorded for it.
func (s *Service) DeleteRoutine(id string) error {
	if _, err := s.store.GetRoutine(id); err != nil {
		return err
	}
	return s.store.DeleteRoutine(id)
}

// CreateTaskForDate records a task for (routineID, date). At most one task may
// exist per pair: a second creation fails with ErrDuplicateTask. Routines with
// a measured goal start at zero progress.
func (s *Service) CreateTaskForDate(routineID, date string) (models.Task, error) {
	if err := validation.ValidateDate(date); err != nil {
		return models.Task{}, err
	}

	routine, err := s.store.GetRoutine(routineID)
	if err != nil {
		return models.Task{}, err
	}

	if _, err := s.store.GetTaskForRoutineOnDate(routineID, date); err == nil {
		return models.Task{}, fmt.Errorf("%w: routine %q on %s", apperrors.ErrDuplicateTask, routine.Name, date)
	} else if !apperrors.Is(err, apperrors.ErrTaskNotFound) {
		return models.Task{}, err
	}

	task := models.Task{
		ID:        uuid.NewString(),
		RoutineID: routineID,
		Date:      date,
	}
	if routine.HasMeasuredGoal() {
		zero := 0.0
		task.Progress = &zero
	}

	if err := s.store.AddTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}

// EnsureTaskForDate returns the task for (routineID, date), creating it first
// if none exists. Calling it repeatedly is a no-op after the first call.
func (s *Service) EnsureTaskForDate(routineID, date string) (models.Task, error) {
	task, err := s.store.GetTaskForRoutineOnDate(routineID, date)
	if err == nil {
		return task, nil
	}
	if !apperrors.Is(err, apperrors.ErrTaskNotFound) {
		return models.Task{}, err
	}
	return s.CreateTaskForDate(routineID, date)
}

// ToggleCompletion flips a task's completed flag. Completing stamps
// CompletedAt; un-completing clears it. Progress is left untouched either way,
// so toggling twice restores the task exactly.
func (s *Service) ToggleCompletion(taskID string) (models.Task, error) {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	task.Completed = !task.Completed
	if task.Completed {
		now := s.now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := s.store.UpdateTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// SetProgress records absolute progress on a task whose routine has a counter
// or duration goal. Reaching or exceeding the goal value does not complete
// the task; completion stays an explicit user action.
func (s *Service) SetProgress(taskID string, value float64) (models.Task, error) {
	if value < 0 {
		return models.Task{}, fmt.Errorf("%w: %v", apperrors.ErrNegativeProgress, value)
	}

	task, err := s.store.GetTask(taskID)
	if err != nil {
		return models.Task{}, err
	}
	routine, err := s.store.GetRoutine(task.RoutineID)
	if err != nil {
		return models.Task{}, err
	}
	if !routine.HasMeasuredGoal() {
		return models.Task{}, fmt.Errorf("%w: %q", apperrors.ErrProgressNotScoped, routine.Name)
	}

	task.Progress = &value
	if err := s.store.UpdateTask(task); err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// AddProgress increments a task's progress by delta. The resulting total must
// stay non-negative.
func (s *Service) AddProgress(taskID string, delta float64) (models.Task, error) {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return models.Task{}, err
	}
	current := 0.0
	if task.Progress != nil {
		current = *task.Progress
	}
	return s.SetProgress(taskID, current+delta)
}

// Entry pairs a task with its routine for display.
type Entry struct {
	Routine models.Routine
	Task    models.Task
}

// DayView partitions a date's entries into pending-first order.
type DayView struct {
	Date      string
	Pending   []Entry
	Completed []Entry
}

// DayViewFor builds the day view for a date: every routine due on that date,
// with its task if one exists, plus every task recorded for the date whose
// routine is not due then. Tasks whose routine no longer exists are dropped.
// Within each partition, entries keep routine insertion order.
func (s *Service) DayViewFor(date string) (DayView, error) {
	if err := validation.ValidateDate(date); err != nil {
		return DayView{}, err
	}
	day, _ := time.Parse(constants.DateFormat, date)

	routines, err := s.store.GetAllRoutines()
	if err != nil {
		return DayView{}, err
	}
	tasks, err := s.store.GetTasksForDate(date)
	if err != nil {
		return DayView{}, err
	}

	byRoutine := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		byRoutine[t.RoutineID] = t
	}

	view := DayView{Date: date}
	add := func(entry Entry) {
		if entry.Task.Completed {
			view.Completed = append(view.Completed, entry)
		} else {
			view.Pending = append(view.Pending, entry)
		}
	}

	due := make(map[string]bool)
	for _, r := range scheduler.DueRoutines(routines, day) {
		due[r.ID] = true
		entry := Entry{Routine: r}
		if t, ok := byRoutine[r.ID]; ok {
			entry.Task = t
		}
		add(entry)
	}

	// A task can be recorded for any date, not just due ones. Those
	// off-schedule tasks still belong to the day they were recorded for.
	for _, r := range routines {
		if due[r.ID] {
			continue
		}
		if t, ok := byRoutine[r.ID]; ok {
			add(Entry{Routine: r, Task: t})
		}
	}
	return view, nil
}

// Streak counts consecutive due dates ending at the given date on which the
// routine was completed. A pending task on the given date itself does not
// break the streak; the count starts from the most recent completed due date.
func (s *Service) Streak(routineID, date string) (int, error) {
	routine, err := s.store.GetRoutine(routineID)
	if err != nil {
		return 0, err
	}
	if err := validation.ValidateDate(date); err != nil {
		return 0, err
	}

	tasks, err := s.store.GetTasksForRoutine(routineID)
	if err != nil {
		return 0, err
	}
	completed := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			completed[t.Date] = true
		}
	}

	day, _ := time.Parse(constants.DateFormat, date)
	streak := 0
	for i := 0; i < constants.StreakLookbackDays; i++ {
		if scheduler.IsDueOn(routine.Frequency, day) {
			if completed[day.Format(constants.DateFormat)] {
				streak++
			} else if i != 0 {
				break
			}
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
