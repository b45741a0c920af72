package scripture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sword-goal/internal/api"
	"sword-goal/internal/goal"
)

type fakeSource struct {
	counts map[int]int
	err    error
}

func (f fakeSource) GetBook(translation string, bookID int) (api.Book, error) {
	return api.Book{BookID: bookID, Name: "Ruth", Chapters: len(f.counts)}, f.err
}

func (f fakeSource) VerseCount(translation string, book, chapter int) (int, error) {
	return f.counts[chapter], f.err
}

func TestChapterOptions(t *testing.T) {
	got := ChapterOptions(api.Book{Name: "Ruth", Chapters: 3})

	want := []goal.ChapterOption{
		{ID: 1, Label: "Ruth 1"},
		{ID: 2, Label: "Ruth 2"},
		{ID: 3, Label: "Ruth 3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ChapterOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestVerseOptions(t *testing.T) {
	got := VerseOptions(2)
	assert.Equal(t, []goal.VerseOption{{ID: 1, Label: "Verse 1"}, {ID: 2, Label: "Verse 2"}}, got)
	assert.Empty(t, VerseOptions(0))
}

func TestVerseCounts(t *testing.T) {
	src := fakeSource{counts: map[int]int{1: 22, 2: 23, 3: 18, 4: 22}}
	v := NewVerseCounts()

	assert.False(t, v.Known(2))
	assert.Empty(t, v.Options(2))

	n, err := v.Fetch(src, "KJV", 8, 2)
	require.NoError(t, err)
	assert.Equal(t, 23, n)
	assert.True(t, v.Known(2))
	assert.Len(t, v.Options(2), 23)

	var gen goal.VerseOptionsFunc = v.Options
	assert.Len(t, goal.VerseOptionsForChapter(gen, 2), 23)
}

func TestVerseCounts_FetchError(t *testing.T) {
	v := NewVerseCounts()

	_, err := v.Fetch(fakeSource{err: assert.AnError}, "KJV", 8, 1)

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, v.Known(1))
}
