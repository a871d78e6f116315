package constants

// FrequencyType represents the recurrence rule of a routine
type FrequencyType string

// GoalType represents how a routine's completion is measured
type GoalType string

// CalendarType selects the calendar used for date display
type CalendarType string

// Theme selects the color scheme for the TUI
type Theme string

const (
	AppName           = "wird"
	DefaultConfigPath = "~/.config/wird/wird.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// QuranPageCount is the number of pages in the Madani mushaf
	QuranPageCount = 604

	// JuzCount is the number of juz divisions used for display grouping
	JuzCount = 30

	// Frequency constants
	FrequencyDaily        FrequencyType = "daily"
	FrequencySpecificDays FrequencyType = "specific-days"
	// FrequencyWeeklyLegacy is a removed variant that may still appear in
	// stored data. It is rewritten to FrequencyDaily on load and must never
	// be evaluated by the scheduler.
	FrequencyWeeklyLegacy FrequencyType = "weekly"

	// Goal type constants
	GoalCompletion GoalType = "completion"
	GoalCounter    GoalType = "counter"
	GoalDuration   GoalType = "duration"

	// Calendar constants
	CalendarGregorian CalendarType = "gregorian"
	CalendarHijri     CalendarType = "hijri"

	// Theme constants
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wird-"

	// CoversDirName is the directory next to the store that holds cached book covers
	CoversDirName = "book-covers"

	// StreakLookbackDays bounds how far back streak counting scans
	StreakLookbackDays = 365

	// Default settings
	DefaultTheme            = ThemeSystem
	DefaultAccentColor      = "#4A90D9"
	DefaultCalendar         = CalendarGregorian
	DefaultReminderTime     = "08:00"
	DefaultReviseQueueLimit = 10
	DefaultNotificationsOn  = true
)

// Collection keys used by the JSON document store. These names are load-bearing:
// they match the storage keys the mobile app used, so an exported document from
// the old app remains readable.
const (
	RoutinesCollection = "routines-storage"
	QuranCollection    = "quran-storage"
	BooksCollection    = "books-storage"
	SettingsCollection = "settings-storage"
)
