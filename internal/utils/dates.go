package utils

import (
	"fmt"
	"time"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/models"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. "Today" is determined by the user's configured timezone, not the
// system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// GetTodayFromSettings returns today's date string using the timezone from settings.
func GetTodayFromSettings(settings models.Settings) (string, error) {
	return GetTodayInTimezone(settings.Timezone)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) at midnight in the
// specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatRelativeDate renders a date as Today/Yesterday/Tomorrow relative to
// the reference day, falling back to "January 2, 2006".
func FormatRelativeDate(date, reference time.Time) string {
	switch {
	case sameDay(date, reference):
		return "Today"
	case sameDay(date, reference.AddDate(0, 0, -1)):
		return "Yesterday"
	case sameDay(date, reference.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return date.Format("January 2, 2006")
	}
}

// FormatDateByCalendar renders a date in the configured calendar system.
func FormatDateByCalendar(date time.Time, calendar constants.CalendarType) string {
	if calendar == constants.CalendarHijri {
		return FormatHijriDate(GregorianToHijri(date))
	}
	return date.Format("Monday, January 2, 2006")
}
