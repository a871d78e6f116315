package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wird-app/wird/internal/cli"
	"github.com/wird-app/wird/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAddRoutine {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateQuran:
		content = m.viewQuran()
	case StateBooks:
		content = m.viewBooks()
	}

	sections := []string{m.viewTabs(), content}
	if m.err != nil {
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Quran", "Books"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	if day, err := utils.ParseDate(m.today); err == nil {
		b.WriteString(headerStyle.Render(utils.FormatDateByCalendar(day, m.settings.Calendar)))
		b.WriteString("\n\n")
	}

	entries := m.entries()
	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render("Nothing due today. Add a routine with 'a'."))
		return docStyle.Render(b.String())
	}

	for i, e := range entries {
		mark := "[ ]"
		line := fmt.Sprintf("%s %-24s %s", mark, e.Routine.Name, cli.FormatTaskProgress(e.Routine, e.Task))
		if e.Task.Completed {
			line = fmt.Sprintf("[x] %-24s %s", e.Routine.Name, cli.FormatTaskProgress(e.Routine, e.Task))
		}

		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("> " + line))
		case e.Task.Completed:
			b.WriteString("  " + completedStyle.Render(line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewQuran() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"Memorized %d/604 (%.1f%%)  ·  Read %d  ·  Revised %d",
		m.stats.TotalMemorized, m.stats.CompletionPercentage, m.stats.TotalRead, m.stats.TotalRevised)))
	b.WriteString("\n\n")

	for i, j := range m.juz {
		line := fmt.Sprintf("Juz %2d  p.%3d-%3d  %s %2d/%2d memorized",
			j.Juz, j.FirstPage, j.LastPage, progressBar(j.Memorized, j.Total, 20), j.Memorized, j.Total)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewBooks() string {
	var b strings.Builder

	if len(m.books) == 0 {
		b.WriteString(mutedStyle.Render("No books yet. Add one with 'wird book add'."))
		return docStyle.Render(b.String())
	}

	for i, book := range m.books {
		status := fmt.Sprintf("%d/%d", book.CurrentPage, book.TotalPages)
		if book.Completed() {
			status = "finished"
		}
		line := fmt.Sprintf("%-28s %s %s", book.Title, progressBar(book.CurrentPage, book.TotalPages, 20), status)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func progressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := value * width / total
	if filled > width {
		filled = width
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
