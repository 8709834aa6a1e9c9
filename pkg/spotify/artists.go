package spotify

import (
	"context"
	"net/url"
	"strings"
)

const (
	// MaxArtistsPerRequest is the most artists the several-artists
	// endpoint accepts at once.
	MaxArtistsPerRequest = 50
)

// DefaultIncludeGroups are the album groups returned by Albums when the
// caller does not choose any.
var DefaultIncludeGroups = []string{"album", "single", "appears_on", "compilation"}

// ArtistService provides artist lookups.
type ArtistService struct {
	client *Client
}

// Get returns a single artist.
func (s *ArtistService) Get(ctx context.Context, artist Ref) (*FullArtist, error) {
	id, err := s.client.resolve(ctx, artist, SearchTypeArtist)
	if err != nil {
		return nil, err
	}

	var result FullArtist
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Several returns multiple artists in one request, in the order given.
//
// Up to MaxArtistsPerRequest artists can be requested at once.
func (s *ArtistService) Several(ctx context.Context, artists []Ref, opt *Options) ([]FullArtist, error) {
	if len(artists) == 0 {
		return nil, invalidArgument("at least one artist is required")
	}
	if len(artists) > MaxArtistsPerRequest {
		return nil, invalidArgument("cannot request more than %d artists at once (got %d)", MaxArtistsPerRequest, len(artists))
	}

	ids, err := s.client.resolveAll(ctx, artists, SearchTypeArtist)
	if err != nil {
		return nil, err
	}

	var result struct {
		Artists []FullArtist `json:"artists"`
	}
	defaults := url.Values{"ids": {strings.Join(ids, ",")}}
	if err := s.client.get(ctx, "/artists", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if result.Artists == nil {
		return nil, formatError(&missingFieldError{field: "artists"})
	}
	return result.Artists, nil
}

// Albums returns the first page of an artist's albums.
//
// IncludeGroups defaults to DefaultIncludeGroups and the page size to 20.
//
// Example:
//
//	albums, err := client.Artists().Albums(ctx, spotify.Name("converge"), &spotify.Options{
//	    IncludeGroups: []string{"album"},
//	})
func (s *ArtistService) Albums(ctx context.Context, artist Ref, opt *Options) ([]SimpleAlbum, error) {
	id, err := s.client.resolve(ctx, artist, SearchTypeArtist)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{
		"include_groups": {strings.Join(DefaultIncludeGroups, ",")},
		"limit":          {"20"},
	}

	var page Paging[SimpleAlbum]
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(id)+"/albums", opt.query(defaults), &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// TopTracks returns an artist's most popular tracks in a market. The
// market defaults to the client's market.
func (s *ArtistService) TopTracks(ctx context.Context, artist Ref, opt *Options) ([]FullTrack, error) {
	id, err := s.client.resolve(ctx, artist, SearchTypeArtist)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{"market": {s.client.market}}

	var result struct {
		Tracks []FullTrack `json:"tracks"`
	}
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(id)+"/top-tracks", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if result.Tracks == nil {
		return nil, formatError(&missingFieldError{field: "tracks"})
	}
	return result.Tracks, nil
}

// RelatedArtists returns artists similar to the given artist.
func (s *ArtistService) RelatedArtists(ctx context.Context, artist Ref) ([]FullArtist, error) {
	id, err := s.client.resolve(ctx, artist, SearchTypeArtist)
	if err != nil {
		return nil, err
	}

	var result struct {
		Artists []FullArtist `json:"artists"`
	}
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(id)+"/related-artists", nil, &result); err != nil {
		return nil, err
	}
	if result.Artists == nil {
		return nil, formatError(&missingFieldError{field: "artists"})
	}
	return result.Artists, nil
}

// IDs resolves artist names to ids, in order. The first name that matches
// nothing fails the whole call with an ErrNotFound error.
func (s *ArtistService) IDs(ctx context.Context, names ...string) ([]string, error) {
	return s.client.resolveNames(ctx, names, SearchTypeArtist)
}
