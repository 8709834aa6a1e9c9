package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Spotify application credentials
	Spotify SpotifyConfig

	// Default market for market-aware requests
	// Default: "US"
	Market string

	// Request timeout (in seconds)
	Timeout int

	// Log level: debug, info, warn or error
	LogLevel string

	// Name to id resolution cache
	Cache CacheConfig
}

// SpotifyConfig holds Spotify application credentials
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
}

// CacheConfig holds the resolution cache settings
type CacheConfig struct {
	Enabled bool
	Path    string
}

// TimeoutDuration returns Timeout as a duration
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	return load(getConfigDir())
}

func load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("market", "US")
	v.SetDefault("timeout", 10)
	v.SetDefault("log_level", "warn")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.path", filepath.Join(configDir, "ids.db"))

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// SPOTWEB_MARKET, SPOTWEB_CACHE_ENABLED, ...
	v.SetEnvPrefix("SPOTWEB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The conventional Spotify variables work too
	_ = v.BindEnv("spotify.client_id", "SPOTWEB_SPOTIFY_CLIENT_ID", "SPOTIFY_ID")
	_ = v.BindEnv("spotify.client_secret", "SPOTWEB_SPOTIFY_CLIENT_SECRET", "SPOTIFY_SECRET")

	cfg := &Config{
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("spotify.client_id"),
			ClientSecret: v.GetString("spotify.client_secret"),
		},
		Market:   v.GetString("market"),
		Timeout:  v.GetInt("timeout"),
		LogLevel: v.GetString("log_level"),
		Cache: CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			Path:    v.GetString("cache.path"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "spotweb")
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	return c.saveTo(getConfigDir())
}

func (c *Config) saveTo(configDir string) error {
	v := viper.New()

	configFile := filepath.Join(configDir, "config.yaml")

	v.Set("spotify.client_id", c.Spotify.ClientID)
	v.Set("spotify.client_secret", c.Spotify.ClientSecret)
	v.Set("market", c.Market)
	v.Set("timeout", c.Timeout)
	v.Set("log_level", c.LogLevel)
	v.Set("cache.enabled", c.Cache.Enabled)
	v.Set("cache.path", c.Cache.Path)

	return v.WriteConfigAs(configFile)
}
