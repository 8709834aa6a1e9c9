// Package spotify provides a read-only client library for the Spotify Web API.
//
// # Overview
//
// This package authenticates as an application with the OAuth2 client
// credentials flow and covers the catalog parts of the API that need no
// user: Browse, Artists, Albums, Tracks and Search. Responses are decoded
// into typed structs and every failure is reported with a categorized error.
//
// # Installation
//
//	go get github.com/jfmyers9/spotweb/pkg/spotify
//
// # Quick Start
//
// Create a client with your application credentials. Both are optional;
// missing values are read from SPOTIFY_ID and SPOTIFY_SECRET:
//
//	import "github.com/jfmyers9/spotweb/pkg/spotify"
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, spotify.ErrConfiguration)
//	}
//
// # Authentication
//
// The access token is fetched on the first request and reused until shortly
// before it expires, at which point the next request exchanges the
// credentials again. There is no user login and no refresh token.
//
// # Names and ids
//
// Most lookups take a Ref, which is either an id or a name:
//
//	// By id
//	albums, err := client.Artists().Albums(ctx, spotify.ID("4Z8W4fKeB5YxbusRsdQVPb"), nil)
//
//	// By name: searches for the artist and uses the first result
//	albums, err = client.Artists().Albums(ctx, spotify.Name("radiohead"), nil)
//
// Names can also be resolved directly:
//
//	id, err := client.ResolveID(ctx, "converge", spotify.SearchTypeArtist)
//
// # Error Handling
//
// Errors match one of ErrConfiguration, ErrAuthentication, ErrNotFound,
// ErrRateLimited, ErrRemoteService, ErrResponseFormat or ErrInvalidArgument.
// Nothing is retried automatically:
//
//	tracks, err := client.Albums().Tracks(ctx, spotify.Name("jane doe"), nil)
//	if err != nil {
//	    var apiErr *spotify.Error
//	    if errors.As(err, &apiErr) && apiErr.Temporary() {
//	        // Back off for apiErr.RetryAfter and try again
//	    }
//	}
//
// # Configuration
//
// The client can be configured with a custom HTTP client, base URLs (for
// testing), a default market, an optional logger and an optional cache for
// name resolution:
//
//	client, err := spotify.NewClient(spotify.Config{
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	    Market:     "SE",
//	    Logger:     myLogger, // Implements spotify.Logger
//	})
//
// # Spotify Web API Documentation
//
// https://developer.spotify.com/documentation/web-api
package spotify
