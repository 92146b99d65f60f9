package main

import (
	"log/slog"
	"strings"
	"sync"

	"minutes/internal/analysis"
	"minutes/internal/api"
	"minutes/internal/config"
	"minutes/internal/logging"
	"minutes/internal/meetings"
	"minutes/internal/services"
	"minutes/internal/services/llm"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cfg *config.Config) *slog.Logger {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

// withStore opens the meetings store for one command invocation and closes
// it when the command returns.
func (c *commandContext) withStore(fn func(*config.Config, *meetings.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := meetings.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, store)
}

// withService wires the full analysis workflow: store, generation client,
// and analyzer. Commands that only read the store use withStore instead.
func (c *commandContext) withService(fn func(*config.Config, *api.MeetingService) error) error {
	return c.withStore(func(cfg *config.Config, store *meetings.Store) error {
		llmCfg := cfg.GetLLM()
		if llmCfg.APIKey == "" {
			return services.Wrap(services.ErrConfiguration, "cli", "analyze",
				"llm.api_key is not set; run `minutes config init` and edit the config file", nil)
		}

		logger := c.logger(cfg)
		client := llm.NewClient(llm.Config{
			APIKey:         llmCfg.APIKey,
			BaseURL:        llmCfg.BaseURL,
			Model:          llmCfg.Model,
			Referer:        llmCfg.Referer,
			Title:          llmCfg.Title,
			TimeoutSeconds: llmCfg.TimeoutSeconds,
		})
		analyzer := analysis.NewAnalyzer(cfg, client, logger)
		return fn(cfg, api.NewMeetingService(store, analyzer, logger))
	})
}
