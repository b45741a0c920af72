// Package versekey converts between a chapter/verse pair and its
// "chapter:verse" textual key.
package versekey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
)

const separator = ":"

// ErrInvalidKey is the cause of every error returned by this package.
var ErrInvalidKey = errors.New("invalid verse key")

// Key is a chapter and verse inside one book. Both numbers are 1-based.
type Key struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// New validates chapter and verse and returns the Key.
func New(chapter, verse int) (Key, error) {
	if chapter < 1 || verse < 1 {
		return Key{}, errors.Annotatef(ErrInvalidKey, "chapter %d verse %d", chapter, verse)
	}
	return Key{Chapter: chapter, Verse: verse}, nil
}

// String renders the canonical "chapter:verse" form.
func (k Key) String() string {
	return fmt.Sprintf("%d%s%d", k.Chapter, separator, k.Verse)
}

// Encode builds the "chapter:verse" key for a chapter and verse.
func Encode(chapter, verse int) (string, error) {
	k, err := New(chapter, verse)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Decode parses a "chapter:verse" key. Only the canonical form is accepted:
// no signs, spaces or leading zeros, so Decode(s).String() == s.
func Decode(s string) (Key, error) {
	parts := strings.Split(s, separator)
	if len(parts) != 2 {
		return Key{}, errors.Annotatef(ErrInvalidKey, "%q", s)
	}

	chapter, ok := parseNumber(parts[0])
	if !ok {
		return Key{}, errors.Annotatef(ErrInvalidKey, "%q: bad chapter", s)
	}
	verse, ok := parseNumber(parts[1])
	if !ok {
		return Key{}, errors.Annotatef(ErrInvalidKey, "%q: bad verse", s)
	}

	return New(chapter, verse)
}

// parseNumber accepts a canonical decimal: digits only, no leading zero.
func parseNumber(s string) (int, bool) {
	if s == "" || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ChapterOf returns the chapter number of a key, or 0 when the key is empty.
func ChapterOf(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	k, err := Decode(s)
	if err != nil {
		return 0, err
	}
	return k.Chapter, nil
}

// VerseOf returns the verse number of a key, or 0 when the key is empty.
func VerseOf(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	k, err := Decode(s)
	if err != nil {
		return 0, err
	}
	return k.Verse, nil
}

// IsInvalidKey reports whether err was caused by a malformed key.
func IsInvalidKey(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidKey
}
