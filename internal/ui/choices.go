package ui

import "sword-goal/internal/goal"

type choice struct {
	id    int
	label string
}

// fields lists the inputs shown for the current goal type, in focus order.
func (m Model) fields() []field {
	switch m.editor.Kind() {
	case goal.KindPages:
		return []field{fieldKind, fieldPages}
	case goal.KindTime:
		return []field{fieldKind, fieldTime}
	default:
		return []field{fieldKind, fieldStartChapter, fieldStartVerse, fieldEndChapter, fieldEndVerse}
	}
}

func (m Model) choices(f field) []choice {
	opts := m.editor.Options()
	switch f {
	case fieldKind:
		cs := make([]choice, 0, len(kinds))
		for i, k := range kinds {
			cs = append(cs, choice{i, kindLabels[k]})
		}
		return cs
	case fieldStartChapter:
		return chapterChoices(opts.StartChapters)
	case fieldEndChapter:
		return chapterChoices(opts.EndChapters)
	case fieldStartVerse:
		return verseChoices(opts.StartVerses)
	case fieldEndVerse:
		return verseChoices(opts.EndVerses)
	case fieldTime:
		tos := goal.TimeOptions()
		cs := make([]choice, 0, len(tos))
		for _, o := range tos {
			cs = append(cs, choice{o.Seconds, o.Label})
		}
		return cs
	}
	return nil
}

func chapterChoices(opts []goal.ChapterOption) []choice {
	cs := make([]choice, 0, len(opts))
	for _, o := range opts {
		cs = append(cs, choice{o.ID, o.Label})
	}
	return cs
}

func verseChoices(opts []goal.VerseOption) []choice {
	cs := make([]choice, 0, len(opts))
	for _, o := range opts {
		cs = append(cs, choice{o.ID, o.Label})
	}
	return cs
}

// selected returns the id currently chosen for f, 0 when none.
func (m Model) selected(f field) int {
	r := m.editor.Range()
	switch f {
	case fieldKind:
		for i, k := range kinds {
			if k == m.editor.Kind() {
				return i
			}
		}
	case fieldStartChapter:
		return r.Start.Chapter
	case fieldStartVerse:
		return r.Start.Verse
	case fieldEndChapter:
		return r.End.Chapter
	case fieldEndVerse:
		return r.End.Verse
	case fieldTime:
		return m.editor.Seconds()
	}
	return 0
}

func (m Model) selectedIndex(f field) int {
	id := m.selected(f)
	for i, c := range m.choices(f) {
		if c.id == id {
			return i
		}
	}
	return 0
}

// valueLabel is the text shown in a closed picker.
func (m Model) valueLabel(f field) string {
	id := m.selected(f)
	opts := m.editor.Options()
	switch f {
	case fieldStartChapter, fieldEndChapter:
		return goal.ChapterLabel(m.editor.Master(), id)
	case fieldStartVerse:
		return goal.VerseLabel(opts.StartVerses, id)
	case fieldEndVerse:
		return goal.VerseLabel(opts.EndVerses, id)
	}
	for _, c := range m.choices(f) {
		if c.id == id {
			return c.label
		}
	}
	return ""
}

// disabled reports whether a verse picker has no chapter to pick from.
func (m Model) disabled(f field) bool {
	r := m.editor.Range()
	switch f {
	case fieldStartVerse:
		return r.Start.Chapter == 0
	case fieldEndVerse:
		return r.End.Chapter == 0
	}
	return false
}
