package sqlite

import (
	"database/sql"
	"errors"

	"github.com/wird-app/wird/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRow(`
		SELECT theme, accent_color, calendar, timezone, notifications_enabled, daily_reminder_time
		FROM settings WHERE id = 1`).Scan(
		&settings.Theme, &settings.AccentColor, &settings.Calendar,
		&settings.Timezone, &settings.NotificationsEnabled, &settings.DailyReminderTime)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, theme, accent_color, calendar, timezone, notifications_enabled, daily_reminder_time)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			theme = excluded.theme,
			accent_color = excluded.accent_color,
			calendar = excluded.calendar,
			timezone = excluded.timezone,
			notifications_enabled = excluded.notifications_enabled,
			daily_reminder_time = excluded.daily_reminder_time`,
		settings.Theme, settings.AccentColor, settings.Calendar,
		settings.Timezone, settings.NotificationsEnabled, settings.DailyReminderTime)
	return err
}
