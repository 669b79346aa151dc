package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"spatial/internal/config"
	"spatial/internal/history"
	"spatial/internal/installer"
	"spatial/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
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
		if err := cfg.Validate(); err != nil {
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

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// newManager wires the installer against the configured artifact paths.
func (c *commandContext) newManager(cfg *config.Config, journal installer.Journal) (*installer.Manager, error) {
	opts := installer.Options{
		ConfPath:  cfg.ConfFilePath(),
		AssetPath: cfg.InstalledAssetPath(),
		LockPath:  filepath.Join(cfg.Paths.StateDir, "spatial.lock"),
		Journal:   journal,
		Logger:    c.ensureLogger(),
	}
	return installer.New(opts)
}

// openJournal opens the history store; failures degrade to no journal.
func (c *commandContext) openJournal(cfg *config.Config) *history.Store {
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		c.ensureLogger().Warn("history journal unavailable",
			logging.Args(logging.Error(err))...)
		return nil
	}
	return store
}
