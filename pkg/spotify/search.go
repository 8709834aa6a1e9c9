package spotify

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SearchType selects what a search returns. Types can be combined with |.
type SearchType int

const (
	SearchTypeArtist SearchType = 1 << iota
	SearchTypeAlbum
	SearchTypeTrack
	SearchTypePlaylist

	searchTypeAll = SearchTypeArtist | SearchTypeAlbum | SearchTypeTrack | SearchTypePlaylist
)

var searchTypeNames = []struct {
	t    SearchType
	name string
}{
	{SearchTypeArtist, "artist"},
	{SearchTypeAlbum, "album"},
	{SearchTypeTrack, "track"},
	{SearchTypePlaylist, "playlist"},
}

// String returns the comma separated API names of the types in st.
func (st SearchType) String() string {
	var names []string
	for _, n := range searchTypeNames {
		if st&n.t != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// single reports whether exactly one known type is set.
func (st SearchType) single() bool {
	return st != 0 && st&^searchTypeAll == 0 && st&(st-1) == 0
}

// ParseSearchType parses a comma separated list of type names such as
// "artist" or "album,track".
func ParseSearchType(s string) (SearchType, error) {
	var st SearchType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		found := false
		for _, n := range searchTypeNames {
			if part == n.name {
				st |= n.t
				found = true
				break
			}
		}
		if !found {
			return 0, invalidArgument("unknown search type %q", part)
		}
	}
	return st, nil
}

const (
	// DefaultSearchLimit is the page size used for searches when none is
	// given.
	DefaultSearchLimit = 3
)

// SearchService provides catalog search.
type SearchService struct {
	client *Client
}

// Search queries the catalog for items of the given types.
//
// The result holds one page per requested type; there is no aggregation
// across types. Defaults to DefaultSearchLimit results per type in the
// client's market.
//
// Example:
//
//	res, err := client.Search().Search(ctx, "deathspell omega", spotify.SearchTypeArtist, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range res.Artists.Items {
//	    fmt.Println(a.ID, a.Name)
//	}
func (s *SearchService) Search(ctx context.Context, query string, types SearchType, opt *Options) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalidArgument("search query is required")
	}
	if types == 0 || types&^searchTypeAll != 0 {
		return nil, invalidArgument("invalid search type %d", int(types))
	}

	defaults := url.Values{
		"q":      {query},
		"type":   {types.String()},
		"limit":  {strconv.Itoa(DefaultSearchLimit)},
		"market": {s.client.market},
	}

	var result SearchResult
	if err := s.client.get(ctx, "/search", opt.query(defaults), &result); err != nil {
		return nil, err
	}

	if err := result.validate(types); err != nil {
		return nil, formatError(err)
	}

	return &result, nil
}

// validate checks that every requested type has a page with items.
func (r *SearchResult) validate(types SearchType) error {
	checks := []struct {
		t    SearchType
		page interface{ validate() error }
		ok   bool
	}{
		{SearchTypeArtist, r.Artists, r.Artists != nil},
		{SearchTypeAlbum, r.Albums, r.Albums != nil},
		{SearchTypeTrack, r.Tracks, r.Tracks != nil},
		{SearchTypePlaylist, r.Playlists, r.Playlists != nil},
	}
	for _, c := range checks {
		if types&c.t == 0 {
			continue
		}
		if !c.ok {
			return &missingFieldError{field: c.t.String() + "s"}
		}
		if err := c.page.validate(); err != nil {
			return err
		}
	}
	return nil
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return "response missing " + e.field
}

// Artists searches for artists and returns the matching items.
func (s *SearchService) Artists(ctx context.Context, query string, opt *Options) ([]FullArtist, error) {
	res, err := s.Search(ctx, query, SearchTypeArtist, opt)
	if err != nil {
		return nil, err
	}
	return res.Artists.Items, nil
}

// Albums searches for albums and returns the matching items.
func (s *SearchService) Albums(ctx context.Context, query string, opt *Options) ([]SimpleAlbum, error) {
	res, err := s.Search(ctx, query, SearchTypeAlbum, opt)
	if err != nil {
		return nil, err
	}
	return res.Albums.Items, nil
}

// Tracks searches for tracks and returns the matching items.
func (s *SearchService) Tracks(ctx context.Context, query string, opt *Options) ([]FullTrack, error) {
	res, err := s.Search(ctx, query, SearchTypeTrack, opt)
	if err != nil {
		return nil, err
	}
	return res.Tracks.Items, nil
}

// Playlists searches for playlists and returns the matching items.
func (s *SearchService) Playlists(ctx context.Context, query string, opt *Options) ([]SimplePlaylist, error) {
	res, err := s.Search(ctx, query, SearchTypePlaylist, opt)
	if err != nil {
		return nil, err
	}
	return res.Playlists.Items, nil
}
