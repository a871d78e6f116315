package models

import "github.com/wird-app/wird/internal/constants"

type Settings struct {
	Theme                constants.Theme        `json:"theme"`
	AccentColor          string                 `json:"accent_color"`
	Calendar             constants.CalendarType `json:"calendar"`
	Timezone             string                 `json:"timezone"`
	NotificationsEnabled bool                   `json:"notifications_enabled"`
	// DailyReminderTime is the HH:MM reminder time shown in settings. The CLI
	// stores it for the companion mobile app; it schedules nothing itself.
	DailyReminderTime string `json:"daily_reminder_time"`
}

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	return Settings{
		Theme:                constants.DefaultTheme,
		AccentColor:          constants.DefaultAccentColor,
		Calendar:             constants.DefaultCalendar,
		Timezone:             "Local",
		NotificationsEnabled: constants.DefaultNotificationsOn,
		DailyReminderTime:    constants.DefaultReminderTime,
	}
}
