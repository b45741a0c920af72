package goal

import (
	"github.com/pingcap/errors"

	"sword-goal/internal/versekey"
)

// Event is an edit requested by the host.
type Event interface {
	side() Side
}

// ChapterChanged picks a chapter for one endpoint. Chapter 0 clears it.
type ChapterChanged struct {
	Side    Side
	Chapter int
}

// VerseChanged picks a verse for one endpoint. Verse 0 clears it.
type VerseChanged struct {
	Side  Side
	Verse int
}

func (e ChapterChanged) side() Side { return e.Side }
func (e VerseChanged) side() Side   { return e.Side }

// Reduce applies ev to r.
func Reduce(r RangeGoal, ev Event) (RangeGoal, *DiffRecord, error) {
	switch ev := ev.(type) {
	case ChapterChanged:
		next, rec := SetChapter(r, ev.Side, ev.Chapter)
		return next, rec, nil
	case VerseChanged:
		next, rec, err := SetVerse(r, ev.Side, ev.Verse)
		if err != nil {
			return r, nil, err
		}
		return next, &rec, nil
	default:
		return r, nil, errors.Errorf("unknown event %T", ev)
	}
}

// SetChapter sets the chapter of one endpoint. Clearing the chapter or moving
// to a different one clears that endpoint's verse; the other endpoint is left
// alone. A record is returned only when the endpoint held a verse key before
// the change.
func SetChapter(r RangeGoal, s Side, chapter int) (RangeGoal, *DiffRecord) {
	if chapter < 0 {
		chapter = 0
	}

	prev := r.Endpoint(s)
	next := prev
	if chapter == 0 || chapter != prev.Chapter {
		next.Verse = 0
	}
	next.Chapter = chapter

	var rec *DiffRecord
	if prev.Complete() {
		rec = &DiffRecord{
			Field: s.field(),
			Old:   keyValue(prev),
			New:   nil,
			Context: &DiffContext{
				Chapter: chapter,
				Verse:   r.Endpoint(s.Other()).Verse,
			},
		}
	}

	return r.with(s, next), rec
}

// SetVerse sets the verse of one endpoint. The endpoint must already have a
// chapter. Every call yields a record, even when the verse does not change.
func SetVerse(r RangeGoal, s Side, verse int) (RangeGoal, DiffRecord, error) {
	prev := r.Endpoint(s)
	if prev.Chapter <= 0 {
		return r, DiffRecord{}, errors.Annotatef(ErrPreconditionViolated,
			"%s verse %d set without a chapter", s, verse)
	}
	if verse < 0 {
		verse = 0
	}

	var newKey any
	if verse > 0 {
		k, err := versekey.Encode(prev.Chapter, verse)
		if err != nil {
			return r, DiffRecord{}, err
		}
		newKey = k
	}

	next := prev
	next.Verse = verse

	rec := DiffRecord{
		Field:   s.field(),
		Old:     keyValue(prev),
		New:     newKey,
		Context: &DiffContext{Chapter: prev.Chapter, Verse: verse},
	}
	return r.with(s, next), rec, nil
}

// SetPages records a change of the pages goal.
func SetPages(old, pages int) (int, DiffRecord) {
	return pages, DiffRecord{Field: FieldPages, Old: old, New: pages}
}

// SetSeconds records a change of the time goal.
func SetSeconds(old, seconds int) (int, DiffRecord) {
	return seconds, DiffRecord{Field: FieldSeconds, Old: old, New: seconds}
}
