package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pingcap/errors"
)

const DefaultBaseURL = "https://bolls.life"

type CacheInterface interface {
	IsCached(translation string) bool
	GetChapter(translation string, book, chapter int) ([]Verse, error)
	VerseCount(translation string, book, chapter int) (int, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      CacheInterface
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) SetCache(cache CacheInterface) {
	c.cache = cache
}

type Book struct {
	BookID     int    `json:"bookid"`
	ChronOrder int    `json:"chronorder"`
	Name       string `json:"name"`
	Chapters   int    `json:"chapters"`
}

type Verse struct {
	PK          int    `json:"pk"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
	Book        int    `json:"book,omitempty"`
	Chapter     int    `json:"chapter,omitempty"`
}

func (c *Client) getJSON(url string, out any) error {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return errors.Trace(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return errors.Trace(json.NewDecoder(resp.Body).Decode(out))
}

func (c *Client) GetBooks(translation string) ([]Book, error) {
	var books []Book
	url := fmt.Sprintf("%s/get-books/%s/", c.baseURL, translation)
	if err := c.getJSON(url, &books); err != nil {
		return nil, errors.Annotatef(err, "get books %s", translation)
	}
	return books, nil
}

// GetBook returns one book of a translation.
func (c *Client) GetBook(translation string, bookID int) (Book, error) {
	books, err := c.GetBooks(translation)
	if err != nil {
		return Book{}, err
	}
	for _, b := range books {
		if b.BookID == bookID {
			return b, nil
		}
	}
	return Book{}, errors.Errorf("book %d not found in %s", bookID, translation)
}

func (c *Client) GetChapter(translation string, book, chapter int) ([]Verse, error) {
	// Try cache first if available
	if c.cache != nil && c.cache.IsCached(translation) {
		return c.cache.GetChapter(translation, book, chapter)
	}

	var verses []Verse
	url := fmt.Sprintf("%s/get-text/%s/%d/%d/", c.baseURL, translation, book, chapter)
	if err := c.getJSON(url, &verses); err != nil {
		return nil, errors.Annotatef(err, "get chapter %d:%d", book, chapter)
	}
	return verses, nil
}

// VerseCount returns how many verses a chapter has.
func (c *Client) VerseCount(translation string, book, chapter int) (int, error) {
	if c.cache != nil && c.cache.IsCached(translation) {
		return c.cache.VerseCount(translation, book, chapter)
	}

	verses, err := c.GetChapter(translation, book, chapter)
	if err != nil {
		return 0, err
	}
	return len(verses), nil
}
