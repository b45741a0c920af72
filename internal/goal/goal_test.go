package goal

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sword-goal/internal/versekey"
)

func chapters(n int) []ChapterOption {
	out := make([]ChapterOption, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, ChapterOption{ID: i, Label: fmt.Sprintf("Chapter %d", i)})
	}
	return out
}

// versesOf gives chapter c exactly c+2 verses.
func versesOf(c int) []VerseOption {
	if c > 50 {
		return nil
	}
	out := make([]VerseOption, 0, c+2)
	for v := 1; v <= c+2; v++ {
		out = append(out, VerseOption{ID: v, Label: fmt.Sprintf("Verse %d", v)})
	}
	return out
}

func ids(opts []ChapterOption) []int {
	out := make([]int, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.ID)
	}
	return out
}

func TestChapterOptions_Slices(t *testing.T) {
	master := chapters(10)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(ChapterOptionsForStart(master, 5)))
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10}, ids(ChapterOptionsForEnd(master, 5)))
}

func TestChapterOptions_Unset(t *testing.T) {
	master := chapters(4)

	assert.Empty(t, cmp.Diff(master, ChapterOptionsForStart(master, 0)))
	assert.Empty(t, cmp.Diff(master, ChapterOptionsForEnd(master, 0)))
}

func TestChapterOptions_ClampPastEnd(t *testing.T) {
	master := chapters(4)

	assert.Empty(t, cmp.Diff(master, ChapterOptionsForStart(master, 9)))
	assert.Empty(t, cmp.Diff(master, ChapterOptionsForEnd(master, 9)))
}

func TestChapterOptions_AppendDoesNotClobberMaster(t *testing.T) {
	master := chapters(6)

	prefix := ChapterOptionsForStart(master, 3)
	_ = append(prefix, ChapterOption{ID: 99})

	assert.Equal(t, 4, master[3].ID)
}

func TestVerseOptionsForChapter(t *testing.T) {
	assert.Nil(t, VerseOptionsForChapter(versesOf, 0))
	assert.Nil(t, VerseOptionsForChapter(nil, 3))
	assert.Len(t, VerseOptionsForChapter(versesOf, 3), 5)
	assert.Empty(t, VerseOptionsForChapter(versesOf, 99))
}

func TestDeriveOptions(t *testing.T) {
	master := chapters(10)
	r := RangeGoal{
		Start: Endpoint{Chapter: 2, Verse: 1},
		End:   Endpoint{Chapter: 7},
	}

	opts := DeriveOptions(r, master, versesOf)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ids(opts.StartChapters))
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(opts.EndChapters))
	assert.Len(t, opts.StartVerses, 4)
	assert.Len(t, opts.EndVerses, 9)

	again := DeriveOptions(r, master, versesOf)
	assert.Empty(t, cmp.Diff(opts, again))
}

func TestLabels(t *testing.T) {
	master := chapters(3)

	assert.Equal(t, "Chapter 2", ChapterLabel(master, 2))
	assert.Equal(t, "", ChapterLabel(master, 0))
	assert.Equal(t, "", ChapterLabel(master, 4))
	assert.Equal(t, "Verse 3", VerseLabel(versesOf(1), 3))
	assert.Equal(t, "", VerseLabel(versesOf(1), 4))
}

func TestEndpoint_Key(t *testing.T) {
	assert.Equal(t, "3:5", Endpoint{Chapter: 3, Verse: 5}.Key())
	assert.Equal(t, "", Endpoint{Chapter: 3}.Key())
	assert.Equal(t, "", Endpoint{}.Key())
}

func TestRangeGoal_Complete(t *testing.T) {
	r := RangeGoal{Start: Endpoint{1, 1}, End: Endpoint{2, 0}}
	assert.False(t, r.Complete())

	r.End.Verse = 4
	assert.True(t, r.Complete())
}

func TestFromKeys(t *testing.T) {
	r, err := FromKeys("2:3", "")
	require.NoError(t, err)
	assert.Equal(t, RangeGoal{Start: Endpoint{Chapter: 2, Verse: 3}}, r)

	start, end := r.Keys()
	assert.Equal(t, "2:3", start)
	assert.Equal(t, "", end)

	_, err = FromKeys("2:3", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end verse")
	_, err = FromKeys("5:1", "2:1")
	require.Error(t, err)
	assert.True(t, versekey.IsInvalidKey(err))

	r, err = FromKeys("3:10", "3:2")
	require.NoError(t, err)
	assert.Equal(t, RangeGoal{Start: Endpoint{3, 10}, End: Endpoint{3, 2}}, r)
}

func TestKind_Valid(t *testing.T) {
	assert.True(t, KindRange.Valid())
	assert.True(t, KindPages.Valid())
	assert.True(t, KindTime.Valid())
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("bogus").Valid())
}

func TestTimeOptions(t *testing.T) {
	opts := TimeOptions()
	require.NotEmpty(t, opts)

	for i := 1; i < len(opts); i++ {
		assert.Less(t, opts[i-1].Seconds, opts[i].Seconds)
	}
	assert.Equal(t, TimeOption{Seconds: 60, Label: "1 minute"}, opts[0])
	assert.Contains(t, opts, TimeOption{Seconds: 3600, Label: "1 hour"})
	assert.Contains(t, opts, TimeOption{Seconds: 5400, Label: "1.5 hours"})
}

func TestSide(t *testing.T) {
	assert.Equal(t, End, Start.Other())
	assert.Equal(t, Start, End.Other())
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "end", End.String())
}

// randomEdit picks an edit the pickers could offer for r.
func randomEdit(rnd *rand.Rand, r RangeGoal, master []ChapterOption) Event {
	s := Side(rnd.Intn(2))
	opts := DeriveOptions(r, master, versesOf)

	if rnd.Intn(2) == 0 || r.Endpoint(s).Chapter == 0 {
		chs := opts.StartChapters
		if s == End {
			chs = opts.EndChapters
		}
		if rnd.Intn(8) == 0 {
			return ChapterChanged{Side: s}
		}
		return ChapterChanged{Side: s, Chapter: chs[rnd.Intn(len(chs))].ID}
	}

	vs := opts.StartVerses
	if s == End {
		vs = opts.EndVerses
	}
	if len(vs) == 0 || rnd.Intn(8) == 0 {
		return VerseChanged{Side: s}
	}
	return VerseChanged{Side: s, Verse: vs[rnd.Intn(len(vs))].ID}
}

func TestReduce_OrderingPreserved(t *testing.T) {
	master := chapters(20)
	rnd := rand.New(rand.NewSource(7))

	for run := 0; run < 200; run++ {
		var r RangeGoal
		for step := 0; step < 30; step++ {
			next, _, err := Reduce(r, randomEdit(rnd, r, master))
			require.NoError(t, err)
			r = next

			if r.Start.Chapter > 0 && r.End.Chapter > 0 {
				require.LessOrEqual(t, r.Start.Chapter, r.End.Chapter, "run %d step %d: %+v", run, step, r)
			}
		}
	}
}

func TestReduce_UnknownEvent(t *testing.T) {
	_, _, err := Reduce(RangeGoal{}, nil)
	assert.Error(t, err)
}
