package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pingcap/errors"
	"github.com/rs/zerolog"

	"sword-goal/internal/api"
	"sword-goal/internal/goal"
	"sword-goal/internal/scripture"
	"sword-goal/internal/theme"
)

type field int

const (
	fieldKind field = iota
	fieldStartChapter
	fieldStartVerse
	fieldEndChapter
	fieldEndVerse
	fieldPages
	fieldTime
)

var kinds = []goal.Kind{goal.KindRange, goal.KindPages, goal.KindTime}

var kindLabels = map[goal.Kind]string{
	goal.KindRange: "Verse range",
	goal.KindPages: "Pages",
	goal.KindTime:  "Time",
}

// Options configure a Model.
type Options struct {
	Source      scripture.Source
	Translation string
	Book        int
	Goal        goal.Goal
	Emitter     goal.Emitter
	Theme       theme.Theme
	Logger      zerolog.Logger

	// Save is called with the goal when the form is submitted.
	Save func(goal.Goal) error
}

type Model struct {
	source      scripture.Source
	translation string
	bookID      int
	book        api.Book
	initial     goal.Goal
	emitter     goal.Emitter
	save        func(goal.Goal) error
	logger      zerolog.Logger
	styles      theme.Styles

	editor *goal.Editor
	counts *scripture.VerseCounts
	pages  textinput.Model
	focus  field
	cursor map[field]int

	width   int
	height  int
	loading bool
	saved   bool
	err     error
}

type errMsg struct{ err error }
type bookLoadedMsg struct{ book api.Book }
type verseCountLoadedMsg struct{ chapter, count int }
type verseCountFailedMsg struct {
	chapter int
	err     error
}

func (e errMsg) Error() string { return e.err.Error() }

func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "pages per day"
	ti.CharLimit = 4
	ti.Width = 12

	return Model{
		source:      opts.Source,
		translation: opts.Translation,
		bookID:      opts.Book,
		initial:     opts.Goal,
		emitter:     opts.Emitter,
		save:        opts.Save,
		logger:      opts.Logger,
		styles:      opts.Theme.Styles(),
		counts:      scripture.NewVerseCounts(),
		pages:       ti,
		cursor:      make(map[field]int),
		loading:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return loadBook(m.source, m.translation, m.bookID)
}

// Goal returns the goal as currently edited, or the initial goal while the
// book is loading.
func (m Model) Goal() goal.Goal {
	if m.editor == nil {
		return m.initial
	}
	return m.editor.Goal()
}

func loadBook(src scripture.Source, translation string, bookID int) tea.Cmd {
	return func() tea.Msg {
		book, err := src.GetBook(translation, bookID)
		if err != nil {
			return errMsg{err}
		}
		return bookLoadedMsg{book}
	}
}

func loadVerseCount(src scripture.Source, counts *scripture.VerseCounts, translation string, book, chapter int) tea.Cmd {
	return func() tea.Msg {
		n, err := counts.Fetch(src, translation, book, chapter)
		if err != nil {
			return verseCountFailedMsg{chapter, err}
		}
		return verseCountLoadedMsg{chapter, n}
	}
}

// fetchVerses returns a command loading the verse count of chapter unless it
// is unset or already known.
func (m Model) fetchVerses(chapter int) tea.Cmd {
	if chapter <= 0 || m.counts.Known(chapter) {
		return nil
	}
	return loadVerseCount(m.source, m.counts, m.translation, m.bookID, chapter)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bookLoadedMsg:
		m.loading = false
		m.book = msg.book
		m.editor = goal.NewEditor(scripture.ChapterOptions(msg.book), m.counts.Options, m.emitter)
		if err := m.editor.Restore(m.initial); err != nil {
			m.logger.Warn().Err(err).Msg("discarding stored goal")
			m.err = err
		}
		m.pages.SetValue(strconv.Itoa(m.editor.Pages()))
		r := m.editor.Range()
		return m, tea.Batch(m.fetchVerses(r.Start.Chapter), m.fetchVerses(r.End.Chapter))

	case verseCountLoadedMsg:
		if m.editor != nil {
			m.editor.SetVerses(m.counts.Options)
		}
		return m, nil

	case verseCountFailedMsg:
		m.logger.Warn().Err(msg.err).Int("chapter", msg.chapter).Msg("verse count")
		m.err = msg.err
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.editor == nil {
			if msg.String() == "ctrl+c" || msg.String() == "q" || msg.String() == "esc" {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	if m.focus == fieldPages {
		if msg.String() == "enter" {
			m.commitPages()
			return m, nil
		}
		var cmd tea.Cmd
		m.pages, cmd = m.pages.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter", " ":
		return m.pick()
	case "backspace", "delete", "x":
		m.clear()
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	fs := m.fields()
	idx := 0
	for i, f := range fs {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fs)) % len(fs)
	m.focus = fs[idx]

	if m.focus == fieldPages {
		m.pages.Focus()
	} else {
		m.pages.Blur()
	}
	m.cursor[m.focus] = m.selectedIndex(m.focus)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.choices(m.focus))
	if n == 0 {
		return
	}
	c := m.cursor[m.focus] + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	m.cursor[m.focus] = c
}

func (m Model) pick() (tea.Model, tea.Cmd) {
	cs := m.choices(m.focus)
	c := m.cursor[m.focus]
	if c >= len(cs) {
		return m, nil
	}
	id := cs[c].id
	m.err = nil

	var cmd tea.Cmd
	switch m.focus {
	case fieldKind:
		m.editor.SetKind(kinds[id])
	case fieldStartChapter:
		m.editor.ChangeChapter(goal.Start, id)
		cmd = m.fetchVerses(id)
	case fieldEndChapter:
		m.editor.ChangeChapter(goal.End, id)
		cmd = m.fetchVerses(id)
	case fieldStartVerse:
		m.err = m.editor.ChangeVerse(goal.Start, id)
	case fieldEndVerse:
		m.err = m.editor.ChangeVerse(goal.End, id)
	case fieldTime:
		m.editor.ChangeSeconds(id)
	}
	m.clampCursors()
	return m, cmd
}

func (m *Model) clear() {
	r := m.editor.Range()
	switch m.focus {
	case fieldStartChapter:
		m.editor.ChangeChapter(goal.Start, 0)
	case fieldEndChapter:
		m.editor.ChangeChapter(goal.End, 0)
	case fieldStartVerse:
		if r.Start.Chapter > 0 {
			m.err = m.editor.ChangeVerse(goal.Start, 0)
		}
	case fieldEndVerse:
		if r.End.Chapter > 0 {
			m.err = m.editor.ChangeVerse(goal.End, 0)
		}
	}
	m.clampCursors()
}

func (m *Model) commitPages() {
	n, err := strconv.Atoi(m.pages.Value())
	if err != nil || n < 1 {
		m.err = errors.Errorf("pages must be a positive number, got %q", m.pages.Value())
		return
	}
	m.err = nil
	m.editor.ChangePages(n)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.focus == fieldPages {
		m.commitPages()
		if m.err != nil {
			return m, nil
		}
	}
	if m.save != nil {
		if err := m.save(m.editor.Goal()); err != nil {
			m.err = err
			return m, nil
		}
	}
	m.saved = true
	return m, tea.Quit
}

// clampCursors keeps every cursor inside its option list after the lists
// were recomputed.
func (m *Model) clampCursors() {
	for _, f := range m.fields() {
		n := len(m.choices(f))
		if m.cursor[f] >= n {
			m.cursor[f] = max(n-1, 0)
		}
	}
}
