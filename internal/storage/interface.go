package storage

import "github.com/wird-app/wird/internal/models"

// Provider is the persistence boundary for all four collections. Backends
// must preserve insertion order for routines, tasks, and books: the tracker's
// pending/completed partitions rely on it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Routines
	AddRoutine(models.Routine) error
	GetRoutine(id string) (models.Routine, error)
	GetAllRoutines() ([]models.Routine, error)
	UpdateRoutine(models.Routine) error
	// DeleteRoutine removes the routine and cascades to every task that
	// references it.
	DeleteRoutine(id string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	// GetTaskForRoutineOnDate returns the single task for (routineID, date),
	// or an error wrapping errors.ErrTaskNotFound when none exists.
	GetTaskForRoutineOnDate(routineID, date string) (models.Task, error)
	GetTasksForDate(date string) ([]models.Task, error)
	GetTasksForRoutine(routineID string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Quran pages. The full page set is seeded by Init and never shrinks.
	GetQuranPage(id int) (models.QuranPage, error)
	GetAllQuranPages() ([]models.QuranPage, error)
	UpdateQuranPage(models.QuranPage) error

	// Books
	AddBook(models.Book) error
	GetBook(id string) (models.Book, error)
	GetAllBooks() ([]models.Book, error)
	UpdateBook(models.Book) error
	DeleteBook(id string) error

	// Utils
	GetConfigPath() string
}
