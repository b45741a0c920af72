package cache

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/pingcap/errors"

	"sword-goal/internal/api"
)

const DefaultBaseURL = "https://bolls.life/static/translations"

type chapterRef struct {
	book    int
	chapter int
}

type Cache struct {
	cacheDir   string
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	counts map[string]map[chapterRef]int // translation -> verse count per chapter
}

// NewCache keeps translations under dir, creating it if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Annotate(err, "create cache dir")
	}

	return &Cache{
		cacheDir:   dir,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		counts:     make(map[string]map[chapterRef]int),
	}, nil
}

// SetBaseURL points downloads at another mirror.
func (c *Cache) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Cache) path(translation string) string {
	return filepath.Join(c.cacheDir, translation+".json")
}

// IsCached checks if a translation is already downloaded
func (c *Cache) IsCached(translation string) bool {
	_, err := os.Stat(c.path(translation))
	return err == nil
}

// DownloadTranslation downloads and caches a translation
func (c *Cache) DownloadTranslation(translation string) error {
	url := fmt.Sprintf("%s/%s.zip", c.baseURL, translation)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return errors.Annotate(err, "download")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("download failed with status %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", translation+"*.zip")
	if err != nil {
		return errors.Trace(err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return errors.Trace(err)
	}

	if err := c.extractJSON(tmpFile.Name(), translation); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.counts, translation)
	c.mu.Unlock()
	return nil
}

func (c *Cache) extractJSON(zipPath, translation string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return errors.Annotate(err, "open zip")
	}
	defer r.Close()

	for _, f := range r.File {
		if filepath.Ext(f.Name) != ".json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return errors.Trace(err)
		}
		defer rc.Close()

		outFile, err := os.Create(c.path(translation))
		if err != nil {
			return errors.Trace(err)
		}
		defer outFile.Close()

		_, err = io.Copy(outFile, rc)
		return errors.Trace(err)
	}

	return errors.New("no JSON file found in ZIP")
}

func (c *Cache) load(translation string) ([]api.Verse, error) {
	if !c.IsCached(translation) {
		return nil, errors.Errorf("translation %s not cached", translation)
	}

	file, err := os.Open(c.path(translation))
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()

	var allVerses []api.Verse
	if err := json.NewDecoder(file).Decode(&allVerses); err != nil {
		return nil, errors.Annotatef(err, "decode %s", translation)
	}
	return allVerses, nil
}

// GetChapter retrieves a chapter from cached data
func (c *Cache) GetChapter(translation string, book, chapter int) ([]api.Verse, error) {
	allVerses, err := c.load(translation)
	if err != nil {
		return nil, err
	}

	var verses []api.Verse
	for _, v := range allVerses {
		if v.Book == book && v.Chapter == chapter {
			verses = append(verses, v)
		}
	}

	return verses, nil
}

// VerseCount returns the number of verses of a chapter. The translation file
// is indexed on first use.
func (c *Cache) VerseCount(translation string, book, chapter int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts, ok := c.counts[translation]
	if !ok {
		allVerses, err := c.load(translation)
		if err != nil {
			return 0, err
		}
		counts = make(map[chapterRef]int)
		for _, v := range allVerses {
			counts[chapterRef{v.Book, v.Chapter}]++
		}
		c.counts[translation] = counts
	}

	return counts[chapterRef{book, chapter}], nil
}
