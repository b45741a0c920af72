package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const optionWindow = 7

var fieldTitles = map[field]string{
	fieldKind:         "Goal type",
	fieldStartChapter: "Starting chapter",
	fieldStartVerse:   "Starting verse",
	fieldEndChapter:   "Ending chapter",
	fieldEndVerse:     "Ending verse",
	fieldPages:        "Pages",
	fieldTime:         "Time",
}

func (m Model) View() string {
	s := m.styles

	if m.editor == nil {
		if m.err != nil {
			return "\n  " + s.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		}
		return "\n  Loading book..."
	}

	header := s.Title.Render(fmt.Sprintf("Reading goal: %s (%s)", m.book.Name, m.translation))

	var rows []string
	rows = append(rows, m.renderField(fieldKind))
	for _, pair := range m.rows() {
		boxes := make([]string, 0, len(pair))
		for _, f := range pair {
			boxes = append(boxes, m.renderField(f))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	help := s.Help.Render("tab: next field | j/k: move | enter: choose | x: clear | ctrl+s: save | esc: quit")

	var status string
	switch {
	case m.err != nil:
		status = s.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.editor.Range().Complete():
		start, end := m.editor.Range().Keys()
		status = s.Selected.Render(fmt.Sprintf("%s %s to %s", m.book.Name, start, end))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		status,
		help,
	)
}

func (m Model) rows() [][]field {
	fs := m.fields()[1:]
	var rows [][]field
	for i := 0; i < len(fs); i += 2 {
		rows = append(rows, fs[i:min(i+2, len(fs))])
	}
	return rows
}

func (m Model) renderField(f field) string {
	s := m.styles
	box := s.Field
	if f == m.focus {
		box = s.Focused
	}

	var sb strings.Builder
	sb.WriteString(s.Label.Render(fieldTitles[f]))
	sb.WriteString("\n")

	switch {
	case f == fieldPages:
		sb.WriteString(m.pages.View())
	case m.disabled(f):
		sb.WriteString(s.Help.Render("choose a chapter first"))
	default:
		value := m.valueLabel(f)
		if value == "" && m.selected(f) > 0 {
			value = strconv.Itoa(m.selected(f))
		}
		if value == "" {
			value = "-"
		}
		sb.WriteString(s.Option.Render(value))
		if f == m.focus {
			sb.WriteString("\n")
			sb.WriteString(m.renderOptions(f))
		}
	}

	return box.Render(sb.String())
}

func (m Model) renderOptions(f field) string {
	s := m.styles
	cs := m.choices(f)
	if len(cs) == 0 {
		return s.Help.Render("loading...")
	}

	cursor := m.cursor[f]
	lo := max(0, cursor-optionWindow/2)
	hi := min(len(cs), lo+optionWindow)
	lo = max(0, hi-optionWindow)

	selected := m.selected(f)
	lines := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		label := cs[i].label
		switch {
		case i == cursor:
			lines = append(lines, s.Cursor.Render("> "+label))
		case cs[i].id == selected:
			lines = append(lines, s.Selected.Render("* "+label))
		default:
			lines = append(lines, s.Option.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}
