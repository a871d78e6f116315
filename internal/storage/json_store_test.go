package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "wird.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
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

func TestInit_RefusesExistingFile(t *testing.T) {
	store := newTestStore(t)

	second := NewJSONStore(store.GetConfigPath())
	if err := second.Init(); err == nil {
		t.Error("expected init to refuse an existing store")
	}
}

func TestLoad_NotInitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "wird.json"))
	if err := store.Load(); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("expected not-initialized error, got %v", err)
	}
}

func TestRoundtrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	routine := models.Routine{
		ID:   "r1",
		Name: "Fajr prayer",
		Frequency: models.Frequency{
			Type: constants.FrequencySpecificDays,
			Days: []time.Weekday{time.Monday, time.Friday},
		},
		GoalType:  constants.GoalCompletion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.AddRoutine(routine); err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}

	progress := 2.0
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

	book := models.Book{
		ID:          "b1",
		Title:       "Sahih al-Bukhari",
		Author:      "Imam al-Bukhari",
		TotalPages:  500,
		CurrentPage: 40,
		StartDate:   now,
		ReadingSessions: []models.ReadingSession{
			{Date: now, PagesRead: 40},
		},
	}
	if err := store.AddBook(book); err != nil {
		t.Fatalf("failed to add book: %v", err)
	}

	page, err := store.GetQuranPage(7)
	if err != nil {
		t.Fatalf("failed to load page: %v", err)
	}
	page.IsRead = true
	page.LastRead = &now
	if err := store.UpdateQuranPage(page); err != nil {
		t.Fatalf("failed to update page: %v", err)
	}

	// A fresh store against the same file must see everything persisted.
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}

	gotRoutine, err := reopened.GetRoutine("r1")
	if err != nil {
		t.Fatalf("failed to load routine: %v", err)
	}
	if gotRoutine.Name != routine.Name || len(gotRoutine.Frequency.Days) != 2 {
		t.Errorf("routine did not survive reload: %+v", gotRoutine)
	}

	gotTask, err := reopened.GetTaskForRoutineOnDate("r1", "2026-09-01")
	if err != nil {
		t.Fatalf("failed to load task: %v", err)
	}
	if !gotTask.Completed || gotTask.Progress == nil || *gotTask.Progress != 2.0 {
		t.Errorf("task did not survive reload: %+v", gotTask)
	}

	gotBook, err := reopened.GetBook("b1")
	if err != nil {
		t.Fatalf("failed to load book: %v", err)
	}
	if gotBook.CurrentPage != 40 || len(gotBook.ReadingSessions) != 1 {
		t.Errorf("book did not survive reload: %+v", gotBook)
	}

	gotPage, err := reopened.GetQuranPage(7)
	if err != nil {
		t.Fatalf("failed to load page: %v", err)
	}
	if !gotPage.IsRead || gotPage.LastRead == nil {
		t.Errorf("page did not survive reload: %+v", gotPage)
	}
}

func TestDocumentKeysStable(t *testing.T) {
	store := newTestStore(t)

	data, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}

	// The collection keys match the mobile app's storage keys; an exported
	// document must keep carrying them verbatim.
	keys := []string{
		constants.RoutinesCollection,
		constants.QuranCollection,
		constants.BooksCollection,
		constants.SettingsCollection,
	}
	for _, key := range keys {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("expected document to carry collection key %q", key)
		}
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	store := newTestStore(t)

	names := []string{"fajr", "quran", "water", "reading"}
	for i, name := range names {
		r := models.Routine{
			ID:        name,
			Name:      name,
			Frequency: models.Frequency{Type: constants.FrequencyDaily},
			GoalType:  constants.GoalCompletion,
			CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		}
		if err := store.AddRoutine(r); err != nil {
			t.Fatalf("failed to add routine: %v", err)
		}
	}

	routines, err := store.GetAllRoutines()
	if err != nil {
		t.Fatalf("failed to list routines: %v", err)
	}
	for i, name := range names {
		if routines[i].ID != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, routines[i].ID)
		}
	}
}

func TestDeleteRoutine_Cascades(t *testing.T) {
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

func TestNotFoundSentinels(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetRoutine("missing"); !errors.Is(err, errors.ErrRoutineNotFound) {
		t.Errorf("expected ErrRoutineNotFound, got %v", err)
	}
	if _, err := store.GetTask("missing"); !errors.Is(err, errors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := store.GetBook("missing"); !errors.Is(err, errors.ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, got %v", err)
	}
	if _, err := store.GetQuranPage(700); !errors.Is(err, errors.ErrPageOutOfRange) {
		t.Errorf("expected ErrPageOutOfRange, got %v", err)
	}
}

func TestLoad_MigratesV1Document(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	v1 := `{
  "version": 1,
  "routines-storage": {
    "routines": [
      {"id": "r1", "name": "dhikr", "frequency": {"type": "weekly"}, "goal_type": "completion"},
      {"id": "r2", "name": "gym", "frequency": {"type": "specific-days", "days": [1, 3]}, "goal_type": "completion"}
    ],
    "tasks": []
  },
  "quran-storage": {
    "pages": [
      {"id": 1, "status": "revised"},
      {"id": 2, "status": "memorized"},
      {"id": 3, "status": "read"},
      {"id": 4}
    ]
  },
  "books-storage": {"books": []},
  "settings-storage": {"settings": {}}
}`
	if err := os.WriteFile(path, []byte(v1), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load v1 document: %v", err)
	}

	weekly, err := store.GetRoutine("r1")
	if err != nil {
		t.Fatalf("failed to load routine: %v", err)
	}
	if weekly.Frequency.Type != constants.FrequencyDaily {
		t.Errorf("expected weekly routine to collapse to daily, got %q", weekly.Frequency.Type)
	}
	kept, err := store.GetRoutine("r2")
	if err != nil {
		t.Fatalf("failed to load routine: %v", err)
	}
	if kept.Frequency.Type != constants.FrequencySpecificDays || len(kept.Frequency.Days) != 2 {
		t.Errorf("expected specific-days routine untouched, got %+v", kept.Frequency)
	}

	tests := []struct {
		id                        int
		read, memorized, revised bool
	}{
		{1, true, true, true},
		{2, true, true, false},
		{3, true, false, false},
		{4, false, false, false},
	}
	for _, tt := range tests {
		page, err := store.GetQuranPage(tt.id)
		if err != nil {
			t.Fatalf("failed to load page %d: %v", tt.id, err)
		}
		if page.IsRead != tt.read || page.IsMemorized != tt.memorized || page.IsRevised != tt.revised {
			t.Errorf("page %d: got read=%v memorized=%v revised=%v", tt.id, page.IsRead, page.IsMemorized, page.IsRevised)
		}
	}

	// The upgraded document is persisted, so a second load has nothing to do.
	again := NewJSONStore(path)
	if err := again.Load(); err != nil {
		t.Fatalf("failed to reload migrated document: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	if !strings.Contains(string(data), `"version": 2`) {
		t.Error("expected persisted document to carry version 2")
	}
	if strings.Contains(string(data), `"status"`) {
		t.Error("expected the v1 status enum to be rewritten away")
	}
}

func TestLoad_RejectsNewerDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	doc := `{"version": 99, "routines-storage": {}, "quran-storage": {}, "books-storage": {}, "settings-storage": {}}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("expected newer-version rejection, got %v", err)
	}
}
