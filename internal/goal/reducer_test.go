package goal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetChapter_ClearsOwnVerse(t *testing.T) {
	r := RangeGoal{Start: Endpoint{Chapter: 3, Verse: 5}}

	r, _ = SetChapter(r, Start, 4)

	assert.Equal(t, Endpoint{Chapter: 4}, r.Start)
}

func TestSetChapter_SameChapterKeepsVerse(t *testing.T) {
	r := RangeGoal{Start: Endpoint{Chapter: 3, Verse: 5}}

	r, rec := SetChapter(r, Start, 3)

	assert.Equal(t, Endpoint{Chapter: 3, Verse: 5}, r.Start)
	require.NotNil(t, rec)
	assert.Equal(t, "3:5", rec.Old)
	assert.Nil(t, rec.New)
}

func TestSetChapter_Unset(t *testing.T) {
	r := RangeGoal{End: Endpoint{Chapter: 6, Verse: 2}}

	r, _ = SetChapter(r, End, 0)

	assert.Equal(t, Endpoint{}, r.End)
}

func TestSetChapter_NegativeIsUnset(t *testing.T) {
	r := RangeGoal{End: Endpoint{Chapter: 6, Verse: 2}}

	r, _ = SetChapter(r, End, -2)

	assert.Equal(t, Endpoint{}, r.End)
}

func TestSetChapter_LeavesOtherEndpoint(t *testing.T) {
	start := Endpoint{Chapter: 2, Verse: 8}
	end := Endpoint{Chapter: 9, Verse: 1}

	r, _ := SetChapter(RangeGoal{Start: start, End: end}, Start, 5)
	assert.Equal(t, end, r.End)

	r, _ = SetChapter(RangeGoal{Start: start, End: end}, End, 0)
	assert.Equal(t, start, r.Start)
}

func TestSetChapter_NoRecordWithoutPriorVerse(t *testing.T) {
	_, rec := SetChapter(RangeGoal{}, Start, 3)
	assert.Nil(t, rec)

	_, rec = SetChapter(RangeGoal{End: Endpoint{Chapter: 2}}, End, 4)
	assert.Nil(t, rec)
}

func TestSetChapter_RecordContext(t *testing.T) {
	r := RangeGoal{
		Start: Endpoint{Chapter: 1, Verse: 4},
		End:   Endpoint{Chapter: 6, Verse: 11},
	}

	_, rec := SetChapter(r, Start, 2)

	require.NotNil(t, rec)
	assert.Equal(t, DiffRecord{
		Field:   FieldStartVerse,
		Old:     "1:4",
		New:     nil,
		Context: &DiffContext{Chapter: 2, Verse: 11},
	}, *rec)
}

func TestSetVerse_EmitsRecord(t *testing.T) {
	r := RangeGoal{Start: Endpoint{Chapter: 2}}

	r, rec, err := SetVerse(r, Start, 7)

	require.NoError(t, err)
	assert.Equal(t, Endpoint{Chapter: 2, Verse: 7}, r.Start)
	assert.Equal(t, DiffRecord{
		Field:   FieldStartVerse,
		Old:     nil,
		New:     "2:7",
		Context: &DiffContext{Chapter: 2, Verse: 7},
	}, rec)
}

func TestSetVerse_Clear(t *testing.T) {
	r := RangeGoal{End: Endpoint{Chapter: 4, Verse: 9}}

	r, rec, err := SetVerse(r, End, 0)

	require.NoError(t, err)
	assert.Equal(t, Endpoint{Chapter: 4}, r.End)
	assert.Equal(t, FieldEndVerse, rec.Field)
	assert.Equal(t, "4:9", rec.Old)
	assert.Nil(t, rec.New)
}

func TestSetVerse_SameValueStillRecorded(t *testing.T) {
	r := RangeGoal{End: Endpoint{Chapter: 4, Verse: 9}}

	_, rec, err := SetVerse(r, End, 9)

	require.NoError(t, err)
	assert.Equal(t, "4:9", rec.Old)
	assert.Equal(t, "4:9", rec.New)
}

func TestSetVerse_WithoutChapter(t *testing.T) {
	r := RangeGoal{End: Endpoint{Chapter: 3, Verse: 1}}

	got, _, err := SetVerse(r, Start, 1)

	require.Error(t, err)
	assert.True(t, IsPreconditionViolated(err))
	assert.Equal(t, r, got)
}

func TestSetPagesAndSeconds(t *testing.T) {
	pages, rec := SetPages(10, 12)
	assert.Equal(t, 12, pages)
	assert.Equal(t, DiffRecord{Field: FieldPages, Old: 10, New: 12}, rec)

	secs, rec := SetSeconds(600, 600)
	assert.Equal(t, 600, secs)
	assert.Equal(t, DiffRecord{Field: FieldSeconds, Old: 600, New: 600}, rec)
}

func TestDiffRecord_JSON(t *testing.T) {
	rec := DiffRecord{
		Field:   FieldEndVerse,
		Old:     "5:2",
		New:     nil,
		Context: &DiffContext{Chapter: 6},
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"end_verse","old":"5:2","new":null,"context":{"chapter":6,"verse":null}}`, string(b))

	b, err = json.Marshal(DiffRecord{Field: FieldPages, Old: 1, New: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"pages","old":1,"new":2}`, string(b))
}
