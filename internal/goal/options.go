package goal

// Options are the candidate lists offered to each picker.
type Options struct {
	StartChapters []ChapterOption
	StartVerses   []VerseOption
	EndChapters   []ChapterOption
	EndVerses     []VerseOption
}

// ChapterOptionsForStart returns the chapters the start endpoint may pick: the
// whole master list, or its prefix ending at endChapter. An endChapter past
// the end of master is clamped to the whole list.
func ChapterOptionsForStart(master []ChapterOption, endChapter int) []ChapterOption {
	if endChapter <= 0 || endChapter > len(master) {
		return master
	}
	return master[:endChapter:endChapter]
}

// ChapterOptionsForEnd returns the chapters the end endpoint may pick: the
// whole master list, or its suffix starting at startChapter.
func ChapterOptionsForEnd(master []ChapterOption, startChapter int) []ChapterOption {
	if startChapter <= 0 || startChapter > len(master) {
		return master
	}
	return master[startChapter-1 : len(master) : len(master)]
}

// VerseOptionsForChapter lists the verses of chapter, or nothing when no
// chapter is chosen.
func VerseOptionsForChapter(verses VerseOptionsFunc, chapter int) []VerseOption {
	if chapter <= 0 || verses == nil {
		return nil
	}
	return verses(chapter)
}

// DeriveOptions recomputes all four option lists for r.
func DeriveOptions(r RangeGoal, master []ChapterOption, verses VerseOptionsFunc) Options {
	return Options{
		StartChapters: ChapterOptionsForStart(master, r.End.Chapter),
		StartVerses:   VerseOptionsForChapter(verses, r.Start.Chapter),
		EndChapters:   ChapterOptionsForEnd(master, r.Start.Chapter),
		EndVerses:     VerseOptionsForChapter(verses, r.End.Chapter),
	}
}

// ChapterLabel returns the label of chapter id, looked up by position in
// master, or "" when id is unset or out of range.
func ChapterLabel(master []ChapterOption, id int) string {
	if id <= 0 || id > len(master) {
		return ""
	}
	return master[id-1].Label
}

// VerseLabel returns the label of verse id in opts, or "".
func VerseLabel(opts []VerseOption, id int) string {
	if id <= 0 || id > len(opts) {
		return ""
	}
	return opts[id-1].Label
}
