// Package scripture turns a translation's book structure into the chapter
// and verse options of the goal pickers.
package scripture

import (
	"fmt"
	"sync"

	"sword-goal/internal/api"
	"sword-goal/internal/goal"
)

// Source is where book and chapter sizes come from.
type Source interface {
	GetBook(translation string, bookID int) (api.Book, error)
	VerseCount(translation string, book, chapter int) (int, error)
}

// ChapterOptions lists every chapter of b, labelled "<book> <chapter>".
func ChapterOptions(b api.Book) []goal.ChapterOption {
	opts := make([]goal.ChapterOption, 0, b.Chapters)
	for i := 1; i <= b.Chapters; i++ {
		opts = append(opts, goal.ChapterOption{ID: i, Label: fmt.Sprintf("%s %d", b.Name, i)})
	}
	return opts
}

// VerseOptions lists verses 1..count.
func VerseOptions(count int) []goal.VerseOption {
	opts := make([]goal.VerseOption, 0, count)
	for i := 1; i <= count; i++ {
		opts = append(opts, goal.VerseOption{ID: i, Label: fmt.Sprintf("Verse %d", i)})
	}
	return opts
}

// VerseCounts remembers the verse count of each chapter of one book as it
// becomes known. It is safe for concurrent use.
type VerseCounts struct {
	mu     sync.RWMutex
	counts map[int]int
}

func NewVerseCounts() *VerseCounts {
	return &VerseCounts{counts: make(map[int]int)}
}

func (v *VerseCounts) Set(chapter, count int) {
	v.mu.Lock()
	v.counts[chapter] = count
	v.mu.Unlock()
}

// Known reports whether the count of chapter has been recorded.
func (v *VerseCounts) Known(chapter int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.counts[chapter]
	return ok
}

// Options is a goal.VerseOptionsFunc; chapters with no known count have no
// verses yet.
func (v *VerseCounts) Options(chapter int) []goal.VerseOption {
	v.mu.RLock()
	n := v.counts[chapter]
	v.mu.RUnlock()
	return VerseOptions(n)
}

// Fetch looks up the verse count of chapter and records it.
func (v *VerseCounts) Fetch(src Source, translation string, book, chapter int) (int, error) {
	n, err := src.VerseCount(translation, book, chapter)
	if err != nil {
		return 0, err
	}
	v.Set(chapter, n)
	return n, nil
}
