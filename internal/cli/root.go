package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wird-app/wird/internal/backup"
	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/library"
	"github.com/wird-app/wird/internal/logger"
	"github.com/wird-app/wird/internal/models"
	"github.com/wird-app/wird/internal/quran"
	"github.com/wird-app/wird/internal/storage"
	"github.com/wird-app/wird/internal/tracker"
	"github.com/wird-app/wird/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Service
	Quran   *quran.Service
	Library *library.Service
}

// Today returns today's date string in the user's configured timezone.
func (c *Context) Today() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	return utils.GetTodayFromSettings(settings)
}

// PerformAutomaticBackup snapshots the store before destructive commands.
// Failures are logged, never surfaced: a failed backup must not block the
// user's actual command.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveRoutine finds a routine by ID or, failing that, by case-insensitive
// name match.
func (c *Context) ResolveRoutine(ref string) (models.Routine, error) {
	if r, err := c.Store.GetRoutine(ref); err == nil {
		return r, nil
	}

	routines, err := c.Store.GetAllRoutines()
	if err != nil {
		return models.Routine{}, err
	}
	for _, r := range routines {
		if strings.EqualFold(r.Name, ref) {
			return r, nil
		}
	}
	return models.Routine{}, fmt.Errorf("no routine matches %q", ref)
}

// ResolveBook finds a book by ID or, failing that, by case-insensitive title
// match.
func (c *Context) ResolveBook(ref string) (models.Book, error) {
	if b, err := c.Store.GetBook(ref); err == nil {
		return b, nil
	}

	books, err := c.Store.GetAllBooks()
	if err != nil {
		return models.Book{}, err
	}
	for _, b := range books {
		if strings.EqualFold(b.Title, ref) {
			return b, nil
		}
	}
	return models.Book{}, fmt.Errorf("no book matches %q", ref)
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday..6=Saturday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := ParseWeekday(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday parses a single weekday name or number.
func ParseWeekday(s string) (time.Weekday, error) {
	if wd, ok := weekdayNames[strings.ToLower(s)]; ok {
		return wd, nil
	}
	if num, err := strconv.Atoi(s); err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

// FormatFrequency renders a frequency rule in a human-readable form.
func FormatFrequency(freq models.Frequency) string {
	switch freq.Normalize().Type {
	case constants.FrequencyDaily:
		return "daily"
	case constants.FrequencySpecificDays:
		var days []string
		for _, wd := range freq.Days {
			days = append(days, wd.String()[:3])
		}
		return fmt.Sprintf("on %s", strings.Join(days, ","))
	default:
		return "unknown"
	}
}

// FormatGoal renders a routine's goal in a human-readable form.
func FormatGoal(r models.Routine) string {
	switch r.GoalType {
	case constants.GoalCounter:
		return fmt.Sprintf("%g %s", r.GoalValue, r.GoalUnit)
	case constants.GoalDuration:
		unit := r.GoalUnit
		if unit == "" {
			unit = "min"
		}
		return fmt.Sprintf("%g %s", r.GoalValue, unit)
	default:
		return "complete"
	}
}

// FormatTaskProgress renders a task's state against its routine's goal.
func FormatTaskProgress(r models.Routine, t models.Task) string {
	if !r.HasMeasuredGoal() {
		if t.Completed {
			return "done"
		}
		return "pending"
	}

	progress := 0.0
	if t.Progress != nil {
		progress = *t.Progress
	}
	return fmt.Sprintf("%g/%g %s", progress, r.GoalValue, r.GoalUnit)
}
