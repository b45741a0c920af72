package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pingcap/errors"

	"sword-goal/internal/goal"
)

type Settings struct {
	SelectedTranslation string    `json:"selected_translation"`
	CurrentBook         int       `json:"current_book"`
	CurrentTheme        string    `json:"current_theme"` // theme key, e.g. dracula
	Goal                goal.Goal `json:"goal"`
}

// Load reads the settings at path. A missing file yields the zero value. The
// stored goal's verse keys are checked, so a corrupt file reports an invalid
// key error.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		// No config = just return zero value, no error
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Trace(err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Annotatef(err, "parse %s", path)
	}

	if _, err := goal.FromKeys(s.Goal.StartVerse, s.Goal.EndVerse); err != nil {
		return Settings{}, errors.Annotatef(err, "stored goal in %s", path)
	}

	return s, nil
}

func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Trace(err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}

	return errors.Trace(os.WriteFile(path, data, 0o644))
}
