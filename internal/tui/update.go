package tui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wird-app/wird/internal/constants"
	"github.com/wird-app/wird/internal/models"
)

var errEmptyName = errors.New("name is required")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	if m.state == StateAddRoutine {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.cursorMax() {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.state == StateToday {
				m.toggleSelected()
			}
		case key.Matches(msg, m.keys.Plus):
			if m.state == StateToday {
				m.bumpSelected(1)
			}
		case key.Matches(msg, m.keys.Minus):
			if m.state == StateToday {
				m.bumpSelected(-1)
			}
		case key.Matches(msg, m.keys.Add):
			if m.state == StateToday {
				m.previousState = m.state
				m.state = StateAddRoutine
				m.newRoutineForm()
				return m, m.form.Init()
			}
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitRoutineForm()
		m.state = m.previousState
		m.refresh()
	}
	return m, cmd
}

func (m *Model) submitRoutineForm() {
	f := m.routineForm

	freq := models.Frequency{Type: constants.FrequencyDaily}
	if f.Frequency == "specific-days" {
		// The form has no weekday picker yet; default to daily and let the
		// user refine with 'wird routine edit'.
		freq.Type = constants.FrequencyDaily
	}

	goalType := constants.GoalType(f.Goal)
	value := 0.0
	if f.Value != "" {
		value, _ = strconv.ParseFloat(f.Value, 64)
	}
	unit := f.Unit
	if goalType == constants.GoalDuration && unit == "" {
		unit = "min"
	}

	if _, err := m.tracker.CreateRoutine(models.Routine{
		Name:      f.Name,
		Frequency: freq,
		GoalType:  goalType,
		GoalValue: value,
		GoalUnit:  unit,
	}); err != nil {
		m.err = err
	}
}

// toggleSelected flips completion on the task under the cursor, creating the
// task first when the routine has no task recorded for today.
func (m *Model) toggleSelected() {
	entries := m.entries()
	if m.cursor >= len(entries) {
		return
	}
	e := entries[m.cursor]

	task := e.Task
	if task.ID == "" {
		created, err := m.tracker.EnsureTaskForDate(e.Routine.ID, m.today)
		if err != nil {
			m.err = err
			return
		}
		task = created
	}

	if _, err := m.tracker.ToggleCompletion(task.ID); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// bumpSelected adjusts measured progress on the task under the cursor.
func (m *Model) bumpSelected(delta float64) {
	entries := m.entries()
	if m.cursor >= len(entries) {
		return
	}
	e := entries[m.cursor]
	if !e.Routine.HasMeasuredGoal() {
		return
	}

	task := e.Task
	if task.ID == "" {
		created, err := m.tracker.EnsureTaskForDate(e.Routine.ID, m.today)
		if err != nil {
			m.err = err
			return
		}
		task = created
	}

	current := 0.0
	if task.Progress != nil {
		current = *task.Progress
	}
	next := current + delta
	if next < 0 {
		next = 0
	}

	if _, err := m.tracker.SetProgress(task.ID, next); err != nil {
		m.err = err
		return
	}
	m.refresh()
}
