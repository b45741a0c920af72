package goal

const (
	DefaultPages   = 10
	DefaultSeconds = 10 * 60
)

// Goal is the storable form of a reading goal.
type Goal struct {
	Kind       Kind   `json:"type"`
	StartVerse string `json:"start_verse,omitempty"`
	EndVerse   string `json:"end_verse,omitempty"`
	Pages      int    `json:"pages,omitempty"`
	Seconds    int    `json:"seconds,omitempty"`
}

// Editor threads a goal through successive edits, forwards every record to an
// Emitter and keeps the option lists current. It is not safe for concurrent
// use.
type Editor struct {
	kind    Kind
	rng     RangeGoal
	pages   int
	seconds int

	master  []ChapterOption
	verses  VerseOptionsFunc
	emitter Emitter
	opts    Options
}

// NewEditor returns an Editor for a range goal with both endpoints unset.
// A nil emitter discards records.
func NewEditor(master []ChapterOption, verses VerseOptionsFunc, emitter Emitter) *Editor {
	if emitter == nil {
		emitter = EmitterFunc(func(DiffRecord) {})
	}
	e := &Editor{
		kind:    KindRange,
		pages:   DefaultPages,
		seconds: DefaultSeconds,
		master:  master,
		verses:  verses,
		emitter: emitter,
	}
	e.refresh()
	return e
}

// Restore loads a stored goal. Stored verse keys are decoded; a corrupt key
// leaves the editor untouched and returns the decode error. An unknown goal
// type restores as a range goal.
func (e *Editor) Restore(g Goal) error {
	rng, err := FromKeys(g.StartVerse, g.EndVerse)
	if err != nil {
		return err
	}

	e.kind = g.Kind
	if !e.kind.Valid() {
		e.kind = KindRange
	}
	e.rng = rng
	if g.Pages > 0 {
		e.pages = g.Pages
	}
	if g.Seconds > 0 {
		e.seconds = g.Seconds
	}
	e.refresh()
	return nil
}

// Goal returns the storable form of the current goal.
func (e *Editor) Goal() Goal {
	g := Goal{Kind: e.kind}
	switch e.kind {
	case KindRange:
		g.StartVerse, g.EndVerse = e.rng.Keys()
	case KindPages:
		g.Pages = e.pages
	case KindTime:
		g.Seconds = e.seconds
	}
	return g
}

func (e *Editor) Kind() Kind              { return e.kind }
func (e *Editor) Range() RangeGoal        { return e.rng }
func (e *Editor) Pages() int              { return e.pages }
func (e *Editor) Seconds() int            { return e.seconds }
func (e *Editor) Options() Options        { return e.opts }
func (e *Editor) Master() []ChapterOption { return e.master }

// SetKind switches the goal type. Entering or leaving the range type starts
// over with an empty range.
func (e *Editor) SetKind(k Kind) {
	if k == e.kind {
		return
	}
	if k == KindRange || e.kind == KindRange {
		e.rng = RangeGoal{}
	}
	e.kind = k
	e.refresh()
}

// SetVerses replaces the verse generator, for instance once verse counts
// arrive, and recomputes the options.
func (e *Editor) SetVerses(verses VerseOptionsFunc) {
	e.verses = verses
	e.refresh()
}

// Apply runs one event through Reduce and emits its record, if any.
func (e *Editor) Apply(ev Event) error {
	next, rec, err := Reduce(e.rng, ev)
	if err != nil {
		return err
	}
	e.rng = next
	if rec != nil {
		e.emitter.Emit(*rec)
	}
	e.refresh()
	return nil
}

// ChangeChapter sets the chapter of one endpoint.
func (e *Editor) ChangeChapter(s Side, chapter int) {
	// ChapterChanged never fails.
	_ = e.Apply(ChapterChanged{Side: s, Chapter: chapter})
}

// ChangeVerse sets the verse of one endpoint.
func (e *Editor) ChangeVerse(s Side, verse int) error {
	return e.Apply(VerseChanged{Side: s, Verse: verse})
}

// ChangePages sets the pages goal.
func (e *Editor) ChangePages(pages int) {
	var rec DiffRecord
	e.pages, rec = SetPages(e.pages, pages)
	e.emitter.Emit(rec)
}

// ChangeSeconds sets the time goal.
func (e *Editor) ChangeSeconds(seconds int) {
	var rec DiffRecord
	e.seconds, rec = SetSeconds(e.seconds, seconds)
	e.emitter.Emit(rec)
}

func (e *Editor) refresh() {
	e.opts = DeriveOptions(e.rng, e.master, e.verses)
}
