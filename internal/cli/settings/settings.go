package settings

import (
	"fmt"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme                string `help:"Color theme (light|dark|system)."`
	AccentColor          string `help:"Accent color (hex)."`
	Calendar             string `help:"Calendar for date display (gregorian|hijri)."`
	Timezone             string `help:"IANA timezone name (e.g. Asia/Riyadh)."`
	NotificationsEnabled *bool  `help:"Enable or disable the daily reminder."`
	ReminderTime         string `help:"Daily reminder time (HH:MM)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:                 %s\n", settings.Theme)
		fmt.Printf("  Accent Color:          %s\n", settings.AccentColor)
		fmt.Printf("  Calendar:              %s\n", settings.Calendar)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Daily Reminder Time:   %s\n", settings.DailyReminderTime)
		return nil
	}

	updated := false
	if c.Theme != "" {
		switch constants.Theme(c.Theme) {
		case constants.ThemeLight, constants.ThemeDark, constants.ThemeSystem:
			settings.Theme = constants.Theme(c.Theme)
		default:
			return fmt.Errorf("invalid theme: %s (expected light, dark, or system)", c.Theme)
		}
		updated = true
	}
	if c.AccentColor != "" {
		settings.AccentColor = c.AccentColor
		updated = true
	}
	if c.Calendar != "" {
		switch constants.CalendarType(c.Calendar) {
		case constants.CalendarGregorian, constants.CalendarHijri:
			settings.Calendar = constants.CalendarType(c.Calendar)
		default:
			return fmt.Errorf("invalid calendar: %s (expected gregorian or hijri)", c.Calendar)
		}
		updated = true
	}
	if c.Timezone != "" {
		if !utils.ValidateTimezone(c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", c.Timezone)
		}
		settings.Timezone = c.Timezone
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.ReminderTime != "" {
		if !utils.ValidateTimeFormat(c.ReminderTime) {
			return fmt.Errorf("invalid reminder time: %s (expected HH:MM)", c.ReminderTime)
		}
		settings.DailyReminderTime = c.ReminderTime
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
