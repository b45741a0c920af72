// Package goal holds the reading-goal state: the two endpoints of a verse
// range, the chapter and verse options each endpoint may pick from, and the
// change records produced by every edit.
package goal

import (
	"github.com/pingcap/errors"

	"sword-goal/internal/versekey"
)

// Kind is the type of reading goal.
type Kind string

const (
	KindRange Kind = "range"
	KindPages Kind = "pages"
	KindTime  Kind = "time"
)

// Valid reports whether k is a known goal type.
func (k Kind) Valid() bool {
	switch k {
	case KindRange, KindPages, KindTime:
		return true
	}
	return false
}

// Side selects one endpoint of a range.
type Side int

const (
	Start Side = iota
	End
)

func (s Side) String() string {
	if s == End {
		return "end"
	}
	return "start"
}

// Other returns the opposite endpoint.
func (s Side) Other() Side {
	if s == End {
		return Start
	}
	return End
}

func (s Side) field() Field {
	if s == End {
		return FieldEndVerse
	}
	return FieldStartVerse
}

// ChapterOption is one entry of the master chapter list. ID is the 1-based
// chapter number.
type ChapterOption struct {
	ID    int
	Label string
}

// VerseOption is one verse of a chapter. ID is the 1-based verse number.
type VerseOption struct {
	ID    int
	Label string
}

// VerseOptionsFunc lists the verses of a chapter. Unknown chapters yield an
// empty list.
type VerseOptionsFunc func(chapter int) []VerseOption

// Endpoint is one boundary of a range. Zero means "not chosen yet" for both
// fields.
type Endpoint struct {
	Chapter int
	Verse   int
}

// Complete reports whether both chapter and verse are chosen.
func (e Endpoint) Complete() bool {
	return e.Chapter > 0 && e.Verse > 0
}

// Key returns the "chapter:verse" key, or "" when the endpoint is incomplete.
func (e Endpoint) Key() string {
	if !e.Complete() {
		return ""
	}
	return versekey.Key{Chapter: e.Chapter, Verse: e.Verse}.String()
}

// RangeGoal is the pair of endpoints of a reading range.
type RangeGoal struct {
	Start Endpoint
	End   Endpoint
}

// Complete reports whether both endpoints hold a verse key.
func (r RangeGoal) Complete() bool {
	return r.Start.Complete() && r.End.Complete()
}

// Endpoint returns the endpoint on side s.
func (r RangeGoal) Endpoint(s Side) Endpoint {
	if s == End {
		return r.End
	}
	return r.Start
}

func (r RangeGoal) with(s Side, e Endpoint) RangeGoal {
	if s == End {
		r.End = e
	} else {
		r.Start = e
	}
	return r
}

// Keys returns the verse keys of both endpoints, "" for incomplete ones.
func (r RangeGoal) Keys() (start, end string) {
	return r.Start.Key(), r.End.Key()
}

// FromKeys rebuilds a range from stored verse keys. An empty key leaves that
// endpoint unset. A start chapter after the end chapter is reported as an
// invalid key.
func FromKeys(start, end string) (RangeGoal, error) {
	var r RangeGoal
	for _, p := range []struct {
		side Side
		key  string
	}{{Start, start}, {End, end}} {
		if p.key == "" {
			continue
		}
		k, err := versekey.Decode(p.key)
		if err != nil {
			return RangeGoal{}, errors.Annotatef(err, "%s verse", p.side)
		}
		r = r.with(p.side, Endpoint{Chapter: k.Chapter, Verse: k.Verse})
	}
	if r.Start.Chapter > 0 && r.End.Chapter > 0 && r.Start.Chapter > r.End.Chapter {
		return RangeGoal{}, errors.Annotatef(versekey.ErrInvalidKey,
			"start verse %s after end verse %s", start, end)
	}
	return r, nil
}
