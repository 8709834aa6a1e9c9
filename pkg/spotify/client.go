// Package spotify provides a read-only client for the Spotify Web API.
//
// The client authenticates as an application using the client credentials
// flow and covers the Browse, Artists, Albums, Tracks and Search areas of
// the API. Methods that take a Ref accept either a Spotify id or a
// human-readable name; names are resolved to ids with a search first.
//
// Example usage:
//
//	import "github.com/jfmyers9/spotweb/pkg/spotify"
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracks, err := client.Albums().Tracks(ctx, spotify.Name("jane doe"), nil)
package spotify

import (
	"context"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	ClientID     string       // Optional: falls back to SPOTIFY_ID
	ClientSecret string       // Optional: falls back to SPOTIFY_SECRET
	HTTPClient   *http.Client // Optional: HTTP client (defaults to one with DefaultTimeout)
	BaseURL      string       // Optional: API base URL (used for testing)
	TokenURL     string       // Optional: token endpoint (used for testing)
	Market       string       // Optional: default market/country code (defaults to US)
	Logger       Logger       // Optional: Logger interface for debug logging
	IDCache      IDCache      // Optional: cache for name to id resolution

	// LookupEnv reads credential fallbacks. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// IDCache stores the result of name to id resolution.
//
// The client works without one; every name is then resolved with a fresh
// search. Lookup reports false on a miss.
type IDCache interface {
	Lookup(ctx context.Context, kind SearchType, name string) (id string, ok bool, err error)
	Store(ctx context.Context, kind SearchType, name, id string) error
}

// Client is the main entry point for Spotify Web API operations.
//
// A Client is safe for concurrent use; the token manager is the only
// mutable state and it is guarded by a mutex.
type Client struct {
	httpClient *http.Client
	baseURL    string
	market     string
	logger     Logger
	cache      IDCache
	tokens     *tokenManager

	browse  *BrowseService
	artists *ArtistService
	albums  *AlbumService
	tracks  *TrackService
	search  *SearchService
}

const (
	// DefaultBaseURL is the Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"

	// DefaultTokenURL is the Spotify accounts token endpoint.
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	// DefaultMarket is used when no market is configured.
	DefaultMarket = "US"

	// DefaultTimeout bounds every outbound request when no HTTP client is
	// supplied.
	DefaultTimeout = 10 * time.Second
)

// NewClient creates a new Spotify API client.
//
// Credentials are resolved with ResolveCredentials. No network call is made
// until the first request; the access token is fetched lazily.
func NewClient(cfg Config) (*Client, error) {
	creds, err := ResolveCredentials(cfg.ClientID, cfg.ClientSecret, cfg.LookupEnv)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	market := cfg.Market
	if market == "" {
		market = DefaultMarket
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		market:     market,
		logger:     cfg.Logger,
		cache:      cfg.IDCache,
	}
	c.tokens = &tokenManager{
		creds:      creds,
		tokenURL:   tokenURL,
		httpClient: httpClient,
		now:        time.Now,
		logf:       c.logDebugf,
	}

	c.browse = &BrowseService{client: c}
	c.artists = &ArtistService{client: c}
	c.albums = &AlbumService{client: c}
	c.tracks = &TrackService{client: c}
	c.search = &SearchService{client: c}

	return c, nil
}

// Browse returns the browse service.
func (c *Client) Browse() *BrowseService {
	return c.browse
}

// Artists returns the artists service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// Albums returns the albums service.
func (c *Client) Albums() *AlbumService {
	return c.albums
}

// Tracks returns the tracks service.
func (c *Client) Tracks() *TrackService {
	return c.tracks
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return c.search
}

// Market returns the default market applied to market-aware requests.
func (c *Client) Market() string {
	return c.market
}

// Token returns a valid access token, exchanging credentials if none is
// held or the held one has expired.
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.tokens.Token(ctx)
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
