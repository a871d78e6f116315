package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "wird.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInit_SeedsDefaults(t *testing.T) {
	store := newTestStore(t)

	pages, err := store.GetAllQuranPages()
	if err != nil {
		t.Fatalf("failed to load pages: %v", err)
	}
	if len(pages) != constants.QuranPageCount {
		t.Errorf("expected %d seeded pages, got %d", constants.QuranPageCount, len(pages))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", settings)
	}
}

func TestInit_Idempotent(t *testing.T) {
	store := newTestStore(t)

	page, err := store.GetQuranPage(1)
	if err != nil {
		t.Fatalf("failed to load page: %v", err)
	}
	page.IsRead = true
	if err := store.UpdateQuranPage(page); err != nil {
		t.Fatalf("failed to update page: %v", err)
	}
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	settings.Theme = constants.ThemeDark
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	// A second init must not reset seeded pages or saved settings.
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	reopened := NewStore(store.GetConfigPath())
	if err := reopened.Init(); err != nil {
		t.Fatalf("failed to re-init store: %v", err)
	}
	t.Cleanup(func() { reopened.Close() })

	page, err = reopened.GetQuranPage(1)
	if err != nil {
		t.Fatalf("failed to load page: %v", err)
	}
	if !page.IsRead {
		t.Error("expected page state to survive re-init")
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if got.Theme != constants.ThemeDark {
		t.Error("expected settings to survive re-init")
	}
}

func TestRoutineCRUD(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	routine := models.Routine{
		ID:   "r1",
		Name: "Fajr prayer",
		Icon: "🕌",
		Frequency: models.Frequency{
			Type: constants.FrequencySpecificDays,
			Days: []time.Weekday{time.Monday, time.Friday},
		},
		GoalType:  constants.GoalDuration,
		GoalValue: 10,
		GoalUnit:  "min",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.AddRoutine(routine); err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}

	got, err := store.GetRoutine("r1")
	if err != nil {
		t.Fatalf("failed to load routine: %v", err)
	}
	if got.Name != routine.Name || got.GoalValue != 10 || got.GoalUnit != "min" {
		t.Errorf("routine did not roundtrip: %+v", got)
	}
	if len(got.Frequency.Days) != 2 || got.Frequency.Days[0] != time.Monday {
		t.Errorf("frequency days did not roundtrip: %+v", got.Frequency)
	}

	got.Name = "Fajr at the masjid"
	if err := store.UpdateRoutine(got); err != nil {
		t.Fatalf("failed to update routine: %v", err)
	}
	got, err = store.GetRoutine("r1")
	if err != nil {
		t.Fatalf("failed to reload routine: %v", err)
	}
	if got.Name != "Fajr at the masjid" {
		t.Errorf("update did not persist: %q", got.Name)
	}

	if err := store.DeleteRoutine("r1"); err != nil {
		t.Fatalf("failed to delete routine: %v", err)
	}
	if _, err := store.GetRoutine("r1"); !errors.Is(err, errors.ErrRoutineNotFound) {
		t.Errorf("expected ErrRoutineNotFound after delete, got %v", err)
	}
}

func TestRoutines_InsertionOrder(t *testing.T) {
	store := newTestStore(t)

	names := []string{"fajr", "quran", "water", "reading"}
	for _, name := range names {
		r := models.Routine{
			ID:        name,
			Name:      name,
			Frequency: models.Frequency{Type: constants.FrequencyDaily},
			GoalType:  constants.GoalCompletion,
		}
		if err := store.AddRoutine(r); err != nil {
			t.Fatalf("failed to add routine: %v", err)
		}
	}

	routines, err := store.GetAllRoutines()
	if err != nil {
		t.Fatalf("failed to list routines: %v", err)
	}
	if len(routines) != len(names) {
		t.Fatalf("expected %d routines, got %d", len(names), len(routines))
	}
	for i, name := range names {
		if routines[i].ID != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, routines[i].ID)
		}
	}
}

func TestTasks(t *testing.T) {
	store := newTestStore(t)

	r := models.Routine{ID: "r1", Name: "dhikr", Frequency: models.Frequency{Type: constants.FrequencyDaily}, GoalType: constants.GoalCounter, GoalValue: 100}
	if err := store.AddRoutine(r); err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}

	progress := 33.0
	now := time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:          "t1",
		RoutineID:   "r1",
		Date:        "2026-09-01",
		Completed:   true,
		Progress:    &progress,
		CompletedAt: &now,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	got, err := store.GetTaskForRoutineOnDate("r1", "2026-09-01")
	if err != nil {
		t.Fatalf("failed to load task: %v", err)
	}
	if !got.Completed || got.Progress == nil || *got.Progress != 33.0 {
		t.Errorf("task did not roundtrip: %+v", got)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Errorf("completed-at did not roundtrip: %v", got.CompletedAt)
	}

	// One task per routine per day.
	dup := models.Task{ID: "t2", RoutineID: "r1", Date: "2026-09-01"}
	if err := store.AddTask(dup); err == nil {
		t.Error("expected unique constraint violation for duplicate (routine, date)")
	}

	if _, err := store.GetTaskForRoutineOnDate("r1", "2026-09-02"); !errors.Is(err, errors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	byDate, err := store.GetTasksForDate("2026-09-01")
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(byDate) != 1 || byDate[0].ID != "t1" {
		t.Errorf("unexpected tasks for date: %+v", byDate)
	}
}

func TestDeleteRoutine_CascadesToTasks(t *testing.T) {
	store := newTestStore(t)

	r := models.Routine{ID: "r1", Name: "dhikr", Frequency: models.Frequency{Type: constants.FrequencyDaily}, GoalType: constants.GoalCompletion}
	if err := store.AddRoutine(r); err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}
	if err := store.AddTask(models.Task{ID: "t1", RoutineID: "r1", Date: "2026-09-01"}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if err := store.DeleteRoutine("r1"); err != nil {
		t.Fatalf("failed to delete routine: %v", err)
	}
	if _, err := store.GetTask("t1"); !errors.Is(err, errors.ErrTaskNotFound) {
		t.Errorf("expected cascade to remove the task, got %v", err)
	}
}

func TestBooks(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	later := now.AddDate(0, 0, 3)

	book := models.Book{
		ID:           "b1",
		Title:        "Sahih al-Bukhari",
		Author:       "Imam al-Bukhari",
		TotalPages:   500,
		CurrentPage:  70,
		StartDate:    now,
		LastReadDate: &later,
		ReadingSessions: []models.ReadingSession{
			{Date: now, PagesRead: 40},
			{Date: later, PagesRead: 30},
		},
	}
	if err := store.AddBook(book); err != nil {
		t.Fatalf("failed to add book: %v", err)
	}

	got, err := store.GetBook("b1")
	if err != nil {
		t.Fatalf("failed to load book: %v", err)
	}
	if got.CurrentPage != 70 || got.CompletedDate != nil {
		t.Errorf("book did not roundtrip: %+v", got)
	}
	if len(got.ReadingSessions) != 2 || got.ReadingSessions[0].PagesRead != 40 || got.ReadingSessions[1].PagesRead != 30 {
		t.Errorf("sessions did not roundtrip in order: %+v", got.ReadingSessions)
	}

	got.CurrentPage = 500
	got.CompletedDate = &later
	got.ReadingSessions = append(got.ReadingSessions, models.ReadingSession{Date: later, PagesRead: 430})
	if err := store.UpdateBook(got); err != nil {
		t.Fatalf("failed to update book: %v", err)
	}
	got, err = store.GetBook("b1")
	if err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if got.CompletedDate == nil || len(got.ReadingSessions) != 3 {
		t.Errorf("update did not persist: %+v", got)
	}

	if err := store.DeleteBook("b1"); err != nil {
		t.Fatalf("failed to delete book: %v", err)
	}
	if _, err := store.GetBook("b1"); !errors.Is(err, errors.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound after delete, got %v", err)
	}
	if err := store.DeleteBook("b1"); !errors.Is(err, errors.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound for second delete, got %v", err)
	}
}

func TestQuranPages(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	page, err := store.GetQuranPage(42)
	if err != nil {
		t.Fatalf("failed to load page: %v", err)
	}
	page.IsRead = true
	page.IsMemorized = true
	page.LastRead = &now
	page.LastMemorized = &now
	if err := store.UpdateQuranPage(page); err != nil {
		t.Fatalf("failed to update page: %v", err)
	}

	got, err := store.GetQuranPage(42)
	if err != nil {
		t.Fatalf("failed to reload page: %v", err)
	}
	if !got.IsRead || !got.IsMemorized || got.IsRevised {
		t.Errorf("page flags did not roundtrip: %+v", got)
	}
	if got.LastMemorized == nil || !got.LastMemorized.Equal(now) {
		t.Errorf("timestamps did not roundtrip: %+v", got)
	}

	if _, err := store.GetQuranPage(605); !errors.Is(err, errors.ErrPageOutOfRange) {
		t.Errorf("expected ErrPageOutOfRange, got %v", err)
	}
}

func TestLoad_NotInitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "wird.db"))
	if err := store.Load(); err == nil {
		t.Error("expected load to fail before init")
	}
}
