// Package tui is the interactive tabbed view: today's tasks, the Quran grid,
// and the reading log.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wird-app/wird/internal/library"
	"github.com/wird-app/wird/internal/models"
	"github.com/wird-app/wird/internal/quran"
	"github.com/wird-app/wird/internal/storage"
	"github.com/wird-app/wird/internal/tracker"
	"github.com/wird-app/wird/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateQuran
	StateBooks
	StateAddRoutine
)

const tabCount = 3

type RoutineFormModel struct {
	Name      string
	Frequency string
	Goal      string
	Value     string
	Unit      string
}

type Model struct {
	store   storage.Provider
	tracker *tracker.Service
	quran   *quran.Service
	library *library.Service

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	today    string
	settings models.Settings
	dayView  tracker.DayView
	juz      []quran.JuzSummary
	stats    models.QuranStats
	books    []models.Book

	form        *huh.Form
	routineForm *RoutineFormModel

	cursor   int
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, trackerSvc *tracker.Service, quranSvc *quran.Service, librarySvc *library.Service) Model {
	m := Model{
		store:   store,
		tracker: trackerSvc,
		quran:   quranSvc,
		library: librarySvc,
		state:   StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// refresh reloads everything the visible tabs render from.
func (m *Model) refresh() {
	m.err = nil

	settings, err := m.store.GetSettings()
	if err != nil {
		m.err = err
		return
	}
	m.settings = settings

	today, err := utils.GetTodayFromSettings(settings)
	if err != nil {
		m.err = err
		return
	}
	m.today = today

	if m.dayView, err = m.tracker.DayViewFor(today); err != nil {
		m.err = err
		return
	}
	if m.juz, err = m.quran.ByJuz(); err != nil {
		m.err = err
		return
	}
	if m.stats, err = m.quran.Stats(); err != nil {
		m.err = err
		return
	}
	if m.books, err = m.library.ListBooks(); err != nil {
		m.err = err
		return
	}

	if max := m.cursorMax(); m.cursor > max {
		m.cursor = max
	}
}

// entries flattens the day view pending-first for cursor navigation.
func (m Model) entries() []tracker.Entry {
	return append(append([]tracker.Entry{}, m.dayView.Pending...), m.dayView.Completed...)
}

func (m Model) cursorMax() int {
	var n int
	switch m.state {
	case StateToday:
		n = len(m.entries())
	case StateQuran:
		n = len(m.juz)
	case StateBooks:
		n = len(m.books)
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (m *Model) newRoutineForm() {
	m.routineForm = &RoutineFormModel{Frequency: "daily", Goal: "completion"}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.routineForm.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", "daily"),
					huh.NewOption("Specific days", "specific-days"),
				).
				Value(&m.routineForm.Frequency),
			huh.NewSelect[string]().
				Title("Goal").
				Options(
					huh.NewOption("Just complete it", "completion"),
					huh.NewOption("Count something", "counter"),
					huh.NewOption("Spend time on it", "duration"),
				).
				Value(&m.routineForm.Goal),
			huh.NewInput().
				Title("Goal value (counter/duration)").
				Value(&m.routineForm.Value).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := strconv.ParseFloat(s, 64)
					return err
				}),
			huh.NewInput().
				Title("Unit (e.g. pages, min)").
				Value(&m.routineForm.Unit),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Toggle, m.keys.Plus, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Plus, m.keys.Minus, m.keys.Add},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
