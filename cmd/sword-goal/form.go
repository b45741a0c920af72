package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"sword-goal/internal/api"
	"sword-goal/internal/cache"
	"sword-goal/internal/config"
	"sword-goal/internal/goal"
	"sword-goal/internal/log"
	"sword-goal/internal/settings"
	"sword-goal/internal/telemetry"
	"sword-goal/internal/theme"
	"sword-goal/internal/ui"
)

func runForm(cfg config.Config) error {
	logger, closer, err := log.Init(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("init log: %w", err)
	}
	defer closer.Close()

	s, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		// A damaged settings file should not keep the form from opening.
		logger.Warn().Err(err).Msg("ignoring stored settings")
		s = settings.Settings{}
	}
	// The stored goal only applies to the book it was set for.
	if s.SelectedTranslation != cfg.Translation || s.CurrentBook != cfg.Book {
		s.Goal = goal.Goal{}
	}
	if s.CurrentTheme != "" && cfg.Theme == "catppuccin-mocha" {
		cfg.Theme = s.CurrentTheme
	}

	emitter, closeSinks, err := newEmitter(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSinks()

	client := api.NewClient(cfg.APIURL)
	if c, err := cache.NewCache(cfg.CacheDir); err != nil {
		logger.Warn().Err(err).Msg("translation cache disabled")
	} else {
		client.SetCache(c)
	}

	model := ui.NewModel(ui.Options{
		Source:      client,
		Translation: cfg.Translation,
		Book:        cfg.Book,
		Goal:        s.Goal,
		Emitter:     emitter,
		Theme:       theme.GetTheme(cfg.Theme),
		Logger:      logger,
		Save: func(g goal.Goal) error {
			return settings.Save(cfg.SettingsPath, settings.Settings{
				SelectedTranslation: cfg.Translation,
				CurrentBook:         cfg.Book,
				CurrentTheme:        cfg.Theme,
				Goal:                g,
			})
		},
	})

	logger.Info().Str("translation", cfg.Translation).Int("book", cfg.Book).Msg("starting goal form")

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}

// newEmitter always logs change records and also publishes them to Kafka
// when brokers are configured.
func newEmitter(cfg config.Config, logger zerolog.Logger) (goal.Emitter, func(), error) {
	sinks := telemetry.Multi{telemetry.NewLogSink(logger)}

	brokers := telemetry.ParseBrokers(cfg.KafkaBrokers)
	if len(brokers) == 0 {
		return sinks, func() {}, nil
	}

	k, err := telemetry.NewKafkaSink(telemetry.KafkaConfig{
		Brokers: brokers,
		Topic:   cfg.KafkaTopic,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka sink: %w", err)
	}
	sinks = append(sinks, k)

	return sinks, func() {
		if err := k.Close(); err != nil {
			logger.Warn().Err(err).Msg("close kafka sink")
		}
	}, nil
}
