package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AstroCB/UMD-Gym/internal/config"
	"github.com/AstroCB/UMD-Gym/internal/logging"
	"github.com/AstroCB/UMD-Gym/internal/prefs"
	"github.com/AstroCB/UMD-Gym/internal/recwell"
	"github.com/AstroCB/UMD-Gym/internal/state"
	"github.com/AstroCB/UMD-Gym/internal/ui"
)

// Options configure the gym monitor application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/umdgym/prefs.toml
	FeedURL    string // overrides the configured feed endpoint
}

// Run boots the TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so logging goes to a file. A failed open
	// drops logs rather than blocking startup.
	logger, closer, err := logging.Open(cfg.DebugLogPath(), cfg.LogLevel)
	if err != nil {
		logger = logging.Discard()
	} else {
		defer func() { _ = closer.Close() }()
	}
	slog.SetDefault(logger)

	userPrefs := prefs.Load(opts.PrefsPath)

	feedURL := cfg.FeedURL
	if opts.FeedURL != "" {
		feedURL = opts.FeedURL
	}
	client, err := recwell.NewClient(feedURL)
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	store := &state.Store{}

	slog.Info("starting", "feed_url", feedURL)

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Store:     store,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
