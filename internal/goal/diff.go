package goal

import "encoding/json"

// Field names the goal value a DiffRecord describes.
type Field string

const (
	FieldStartVerse Field = "start_verse"
	FieldEndVerse   Field = "end_verse"
	FieldPages      Field = "pages"
	FieldSeconds    Field = "seconds"
)

// DiffContext carries the chapter and verse around a verse change. Zero
// values are unset and encode as null.
type DiffContext struct {
	Chapter int
	Verse   int
}

func (c DiffContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Chapter *int `json:"chapter"`
		Verse   *int `json:"verse"`
	}{nonZero(c.Chapter), nonZero(c.Verse)})
}

func nonZero(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

// DiffRecord is the before/after of one accepted edit. Old and New are nil
// when the value is unset; verse fields carry "chapter:verse" strings and
// pages/seconds carry ints.
type DiffRecord struct {
	Field   Field        `json:"field"`
	Old     any          `json:"old"`
	New     any          `json:"new"`
	Context *DiffContext `json:"context,omitempty"`
}

// Emitter receives every DiffRecord. Emit must not drop a record because Old
// equals New.
type Emitter interface {
	Emit(rec DiffRecord)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(rec DiffRecord)

func (f EmitterFunc) Emit(rec DiffRecord) { f(rec) }

func keyValue(e Endpoint) any {
	if k := e.Key(); k != "" {
		return k
	}
	return nil
}
