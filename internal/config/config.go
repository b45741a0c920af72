// Package config loads the environment configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pingcap/errors"
)

const (
	Prefix        = "SWORD_GOAL"
	AppName       = "sword-goal"
	DefaultAPIURL = "https://bolls.life"
)

// Config holds environment based configuration. Variables carry the
// SWORD_GOAL_ prefix.
type Config struct {
	// Translation is the translation short name, e.g. KJV.
	Translation string `envconfig:"TRANSLATION" default:"KJV"`

	// Book is the book number the goal ranges over.
	Book int `envconfig:"BOOK" default:"1"`

	Theme string `envconfig:"THEME" default:"catppuccin-mocha"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogDir defaults to <user cache dir>/sword-goal.
	LogDir string `envconfig:"LOG_DIR"`

	// CacheDir holds downloaded translations.
	// Defaults to <user cache dir>/sword-goal/translations.
	CacheDir string `envconfig:"CACHE_DIR"`

	// SettingsPath defaults to <user config dir>/sword-goal/config.json.
	SettingsPath string `envconfig:"SETTINGS_PATH"`

	APIURL string `envconfig:"API_URL" default:"https://bolls.life"`

	// KafkaBrokers is a comma separated broker list. Empty disables Kafka.
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`

	KafkaTopic string `envconfig:"KAFKA_TOPIC" default:"reading-goal-changes"`
}

// LoadDotEnv loads path into the environment. A missing file is not an
// error. Existing variables win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Annotate(godotenv.Load(path), "load dotenv")
}

// Load reads envFile, then the environment, and fills in directory defaults.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, errors.Annotate(err, "process env")
	}
	if err := cfg.fillDirs(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fillDirs() error {
	if c.LogDir == "" || c.CacheDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return errors.Annotate(err, "user cache dir")
		}
		if c.LogDir == "" {
			c.LogDir = filepath.Join(cacheDir, AppName)
		}
		if c.CacheDir == "" {
			c.CacheDir = filepath.Join(cacheDir, AppName, "translations")
		}
	}
	if c.SettingsPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return errors.Annotate(err, "user config dir")
		}
		c.SettingsPath = filepath.Join(configDir, AppName, "config.json")
	}
	return nil
}
