package spotify

import (
	"context"
	"net/url"
	"strings"
)

const (
	// MaxSeeds is the most seeds the recommendations endpoint accepts,
	// counted across artists, tracks and genres.
	MaxSeeds = 5
)

// BrowseService provides the browse and recommendations endpoints.
type BrowseService struct {
	client *Client
}

// Categories returns the first page of browse categories.
//
// The country defaults to the client's market and the page size to 20.
func (s *BrowseService) Categories(ctx context.Context, opt *Options) ([]Category, error) {
	defaults := url.Values{
		"country": {s.client.market},
		"limit":   {"20"},
	}

	var result struct {
		Categories Paging[Category] `json:"categories"`
	}
	if err := s.client.get(ctx, "/browse/categories", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if err := result.Categories.validate(); err != nil {
		return nil, formatError(err)
	}
	return result.Categories.Items, nil
}

// Category returns a single browse category.
func (s *BrowseService) Category(ctx context.Context, id string, opt *Options) (*Category, error) {
	if id == "" {
		return nil, invalidArgument("category id is required")
	}

	defaults := url.Values{"country": {s.client.market}}

	var result Category
	if err := s.client.get(ctx, "/browse/categories/"+url.PathEscape(id), opt.query(defaults), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CategoryPlaylists returns the first page of Spotify playlists tagged
// with a category.
func (s *BrowseService) CategoryPlaylists(ctx context.Context, id string, opt *Options) ([]SimplePlaylist, error) {
	if id == "" {
		return nil, invalidArgument("category id is required")
	}

	defaults := url.Values{
		"country": {s.client.market},
		"limit":   {"20"},
	}

	var result FeaturedPlaylists
	if err := s.client.get(ctx, "/browse/categories/"+url.PathEscape(id)+"/playlists", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	return result.Playlists.Items, nil
}

// FeaturedPlaylists returns Spotify's featured playlists along with the
// headline message shown with them.
func (s *BrowseService) FeaturedPlaylists(ctx context.Context, opt *Options) (*FeaturedPlaylists, error) {
	defaults := url.Values{
		"country": {s.client.market},
		"limit":   {"20"},
	}

	var result FeaturedPlaylists
	if err := s.client.get(ctx, "/browse/featured-playlists", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NewReleases returns the first page of newly released albums.
func (s *BrowseService) NewReleases(ctx context.Context, opt *Options) ([]SimpleAlbum, error) {
	defaults := url.Values{
		"country": {s.client.market},
		"limit":   {"20"},
	}

	var result struct {
		Albums Paging[SimpleAlbum] `json:"albums"`
	}
	if err := s.client.get(ctx, "/browse/new-releases", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if err := result.Albums.validate(); err != nil {
		return nil, formatError(err)
	}
	return result.Albums.Items, nil
}

// Recommendations returns tracks generated from the given seeds.
//
// Between one and MaxSeeds seeds must be given in total. Artist and track
// seeds given by name are resolved first. Extra tuning parameters such as
// target_energy can be passed through Options.Extra.
//
// Example:
//
//	tracks, err := client.Browse().Recommendations(ctx, spotify.Seeds{
//	    Artists: spotify.Names("converge"),
//	    Genres:  []string{"metalcore"},
//	}, nil)
func (s *BrowseService) Recommendations(ctx context.Context, seeds Seeds, opt *Options) ([]SimpleTrack, error) {
	if n := seeds.count(); n == 0 || n > MaxSeeds {
		return nil, invalidArgument("between 1 and %d seeds are required (got %d)", MaxSeeds, n)
	}

	artistIDs, err := s.client.resolveAll(ctx, seeds.Artists, SearchTypeArtist)
	if err != nil {
		return nil, err
	}
	trackIDs, err := s.client.resolveAll(ctx, seeds.Tracks, SearchTypeTrack)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{
		"seed_artists": {strings.Join(artistIDs, ",")},
		"seed_tracks":  {strings.Join(trackIDs, ",")},
		"seed_genres":  {strings.Join(seeds.Genres, ",")},
		"limit":        {"20"},
		"market":       {s.client.market},
	}

	var result struct {
		Tracks []SimpleTrack `json:"tracks"`
	}
	if err := s.client.get(ctx, "/recommendations", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if result.Tracks == nil {
		return nil, formatError(&missingFieldError{field: "tracks"})
	}
	return result.Tracks, nil
}

// GenreSeeds returns the genres accepted as recommendation seeds.
func (s *BrowseService) GenreSeeds(ctx context.Context) ([]string, error) {
	var result struct {
		Genres []string `json:"genres"`
	}
	if err := s.client.get(ctx, "/recommendations/available-genre-seeds", nil, &result); err != nil {
		return nil, err
	}
	if result.Genres == nil {
		return nil, formatError(&missingFieldError{field: "genres"})
	}
	return result.Genres, nil
}
