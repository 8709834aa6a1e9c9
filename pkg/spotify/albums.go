package spotify

import (
	"context"
	"net/url"
	"strings"
)

const (
	// MaxAlbumsPerRequest is the most albums the several-albums endpoint
	// accepts at once.
	MaxAlbumsPerRequest = 20
)

// AlbumService provides album lookups.
type AlbumService struct {
	client *Client
}

// Get returns a single album. The market defaults to the client's market.
func (s *AlbumService) Get(ctx context.Context, album Ref, opt *Options) (*FullAlbum, error) {
	id, err := s.client.resolve(ctx, album, SearchTypeAlbum)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{"market": {s.client.market}}

	var result FullAlbum
	if err := s.client.get(ctx, "/albums/"+url.PathEscape(id), opt.query(defaults), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Several returns multiple albums in one request, in the order given.
//
// Up to MaxAlbumsPerRequest albums can be requested at once. The market
// defaults to the client's market.
func (s *AlbumService) Several(ctx context.Context, albums []Ref, opt *Options) ([]FullAlbum, error) {
	if len(albums) == 0 {
		return nil, invalidArgument("at least one album is required")
	}
	if len(albums) > MaxAlbumsPerRequest {
		return nil, invalidArgument("cannot request more than %d albums at once (got %d)", MaxAlbumsPerRequest, len(albums))
	}

	ids, err := s.client.resolveAll(ctx, albums, SearchTypeAlbum)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{
		"ids":    {strings.Join(ids, ",")},
		"market": {s.client.market},
	}

	var result struct {
		Albums []FullAlbum `json:"albums"`
	}
	if err := s.client.get(ctx, "/albums", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if result.Albums == nil {
		return nil, formatError(&missingFieldError{field: "albums"})
	}
	return result.Albums, nil
}

// Tracks returns the tracks on the first page of an album's track listing,
// in album order.
//
// The page size defaults to 20 and the market to the client's market.
//
// Example:
//
//	tracks, err := client.Albums().Tracks(ctx, spotify.Name("jane doe"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range tracks {
//	    fmt.Printf("%d. %s\n", t.TrackNumber, t.Name)
//	}
func (s *AlbumService) Tracks(ctx context.Context, album Ref, opt *Options) ([]SimpleTrack, error) {
	id, err := s.client.resolve(ctx, album, SearchTypeAlbum)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{
		"limit":  {"20"},
		"market": {s.client.market},
	}

	var page Paging[SimpleTrack]
	if err := s.client.get(ctx, "/albums/"+url.PathEscape(id)+"/tracks", opt.query(defaults), &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// IDs resolves album names to ids, in order. The first name that matches
// nothing fails the whole call with an ErrNotFound error.
func (s *AlbumService) IDs(ctx context.Context, names ...string) ([]string, error) {
	return s.client.resolveNames(ctx, names, SearchTypeAlbum)
}
