package cmd

import (
	"fmt"
	"net/http"

	"github.com/jfmyers9/spotweb/internal/config"
	"github.com/jfmyers9/spotweb/internal/idcache"
	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session bundles what a command needs to talk to Spotify
type session struct {
	client *spotify.Client
	log    zerolog.Logger
	cache  *idcache.Cache
}

func (s *session) Close() error {
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// newSession loads configuration, applies global flag overrides and builds
// a client. Callers must Close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	logger := setupLogger(cfg.LogLevel)
	s := &session{log: logger}

	if cfg.Cache.Enabled {
		cache, err := idcache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open id cache: %w", err)
		}
		logger.Debug().Str("path", cfg.Cache.Path).Msg("Using id cache")
		s.cache = cache
	}

	clientCfg := spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		HTTPClient:   &http.Client{Timeout: cfg.TimeoutDuration()},
		Market:       cfg.Market,
		Logger:       sdkLogger{log: logger},
	}
	// A nil *idcache.Cache must not become a non-nil interface
	if s.cache != nil {
		clientCfg.IDCache = s.cache
	}

	client, err := spotify.NewClient(clientCfg)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.client = client

	return s, nil
}

// applyFlags overrides config values with any global flags that were set
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("client-id") {
		cfg.Spotify.ClientID = flagClientID
	}
	if flags.Changed("client-secret") {
		cfg.Spotify.ClientSecret = flagClientSecret
	}
	if flags.Changed("market") {
		cfg.Market = flagMarket
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("cache") {
		cfg.Cache.Enabled = flagCache
	}
}

// withSession runs fn with a session opened for cmd
func withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return fn(s)
}

// refArg builds a Ref from positional args, joined with spaces. byID treats
// the argument as a Spotify id.
func refArg(args []string, byID bool) spotify.Ref {
	value := joinArgs(args)
	if byID {
		return spotify.ID(value)
	}
	return spotify.Name(value)
}

// refArgs builds one Ref per positional arg
func refArgs(args []string, byID bool) []spotify.Ref {
	if byID {
		return spotify.IDs(args...)
	}
	return spotify.Names(args...)
}
