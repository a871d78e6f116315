package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wird-app/wird/internal/errors"
	"github.com/wird-app/wird/internal/models"
)

// document is the on-disk shape of the JSON store: one file, explicitly
// versioned, with the four collections under the storage keys the mobile app
// used so exported documents stay readable.
type document struct {
	Version  int         `json:"version"`
	Routines routinesDoc `json:"routines-storage"`
	Quran    quranDoc    `json:"quran-storage"`
	Books    booksDoc    `json:"books-storage"`
	Settings settingsDoc `json:"settings-storage"`
}

type routinesDoc struct {
	Routines []models.Routine `json:"routines"`
	Tasks    []models.Task    `json:"tasks"`
}

type quranDoc struct {
	Pages []quranPageRecord `json:"pages"`
}

type booksDoc struct {
	Books []models.Book `json:"books"`
}

type settingsDoc struct {
	Settings models.Settings `json:"settings"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:  SchemaVersion,
		Quran:    quranDoc{Pages: newPageRecords()},
		Settings: settingsDoc{Settings: models.DefaultSettings()},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'wird init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	migrated, err := migrateDocument(s.doc)
	if err != nil {
		return fmt.Errorf("failed to migrate storage: %w", err)
	}

	// Seed the page set if the document predates the Quran tracker.
	if len(s.doc.Quran.Pages) == 0 {
		s.doc.Quran.Pages = newPageRecords()
		migrated = true
	}

	if migrated {
		return s.save()
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// Settings

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings.Settings = settings
	return s.save()
}

// Routines

func (s *JSONStore) AddRoutine(routine models.Routine) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Routines.Routines = append(s.doc.Routines.Routines, routine)
	return s.save()
}

func (s *JSONStore) GetRoutine(id string) (models.Routine, error) {
	if err := s.loaded(); err != nil {
		return models.Routine{}, err
	}
	for _, r := range s.doc.Routines.Routines {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Routine{}, fmt.Errorf("%w: %s", errors.ErrRoutineNotFound, id)
}

func (s *JSONStore) GetAllRoutines() ([]models.Routine, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	routines := make([]models.Routine, len(s.doc.Routines.Routines))
	copy(routines, s.doc.Routines.Routines)
	return routines, nil
}

func (s *JSONStore) UpdateRoutine(routine models.Routine) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, r := range s.doc.Routines.Routines {
		if r.ID == routine.ID {
			s.doc.Routines.Routines[i] = routine
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", errors.ErrRoutineNotFound, routine.ID)
}

func (s *JSONStore) DeleteRoutine(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	found := false
	routines := s.doc.Routines.Routines[:0]
	for _, r := range s.doc.Routines.Routines {
		if r.ID == id {
			found = true
			continue
		}
		routines = append(routines, r)
	}
	if !found {
		return fmt.Errorf("%w: %s", errors.ErrRoutineNotFound, id)
	}
	s.doc.Routines.Routines = routines

	// Cascade: the routine owns its tasks' existence.
	tasks := s.doc.Routines.Tasks[:0]
	for _, t := range s.doc.Routines.Tasks {
		if t.RoutineID != id {
			tasks = append(tasks, t)
		}
	}
	s.doc.Routines.Tasks = tasks

	return s.save()
}

// Tasks

func (s *JSONStore) AddTask(task models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Routines.Tasks = append(s.doc.Routines.Tasks, task)
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if err := s.loaded(); err != nil {
		return models.Task{}, err
	}
	for _, t := range s.doc.Routines.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("%w: %s", errors.ErrTaskNotFound, id)
}

func (s *JSONStore) GetTaskForRoutineOnDate(routineID, date string) (models.Task, error) {
	if err := s.loaded(); err != nil {
		return models.Task{}, err
	}
	for _, t := range s.doc.Routines.Tasks {
		if t.RoutineID == routineID && t.Date == date {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("%w: routine %s on %s", errors.ErrTaskNotFound, routineID, date)
}

func (s *JSONStore) GetTasksForDate(date string) ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var tasks []models.Task
	for _, t := range s.doc.Routines.Tasks {
		if t.Date == date {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *JSONStore) GetTasksForRoutine(routineID string) ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var tasks []models.Task
	for _, t := range s.doc.Routines.Tasks {
		if t.RoutineID == routineID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, t := range s.doc.Routines.Tasks {
		if t.ID == task.ID {
			s.doc.Routines.Tasks[i] = task
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", errors.ErrTaskNotFound, task.ID)
}

func (s *JSONStore) DeleteTask(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, t := range s.doc.Routines.Tasks {
		if t.ID == id {
			s.doc.Routines.Tasks = append(s.doc.Routines.Tasks[:i], s.doc.Routines.Tasks[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", errors.ErrTaskNotFound, id)
}

// Quran pages

func (s *JSONStore) GetQuranPage(id int) (models.QuranPage, error) {
	if err := s.loaded(); err != nil {
		return models.QuranPage{}, err
	}
	if id < 1 || id > len(s.doc.Quran.Pages) {
		return models.QuranPage{}, fmt.Errorf("%w: %d", errors.ErrPageOutOfRange, id)
	}
	return s.doc.Quran.Pages[id-1].toModel(), nil
}

func (s *JSONStore) GetAllQuranPages() ([]models.QuranPage, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	pages := make([]models.QuranPage, len(s.doc.Quran.Pages))
	for i, rec := range s.doc.Quran.Pages {
		pages[i] = rec.toModel()
	}
	return pages, nil
}

func (s *JSONStore) UpdateQuranPage(page models.QuranPage) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if page.ID < 1 || page.ID > len(s.doc.Quran.Pages) {
		return fmt.Errorf("%w: %d", errors.ErrPageOutOfRange, page.ID)
	}
	s.doc.Quran.Pages[page.ID-1] = pageRecordFromModel(page)
	return s.save()
}

// Books

func (s *JSONStore) AddBook(book models.Book) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Books.Books = append(s.doc.Books.Books, book)
	return s.save()
}

func (s *JSONStore) GetBook(id string) (models.Book, error) {
	if err := s.loaded(); err != nil {
		return models.Book{}, err
	}
	for _, b := range s.doc.Books.Books {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Book{}, fmt.Errorf("%w: %s", errors.ErrBookNotFound, id)
}

func (s *JSONStore) GetAllBooks() ([]models.Book, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	books := make([]models.Book, len(s.doc.Books.Books))
	copy(books, s.doc.Books.Books)
	return books, nil
}

func (s *JSONStore) UpdateBook(book models.Book) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, b := range s.doc.Books.Books {
		if b.ID == book.ID {
			s.doc.Books.Books[i] = book
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", errors.ErrBookNotFound, book.ID)
}

func (s *JSONStore) DeleteBook(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i, b := range s.doc.Books.Books {
		if b.ID == id {
			s.doc.Books.Books = append(s.doc.Books.Books[:i], s.doc.Books.Books[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", errors.ErrBookNotFound, id)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func newPageRecords() []quranPageRecord {
	pages := models.NewQuranPages()
	records := make([]quranPageRecord, len(pages))
	for i, p := range pages {
		records[i] = pageRecordFromModel(p)
	}
	return records
}

var _ Provider = (*JSONStore)(nil)
