package spotify

import (
	"context"
	"fmt"
	"strings"
)

// ResolveID returns the id of the entity of the given kind that best
// matches name.
//
// It searches for name scoped to kind and takes the first result, trusting
// Spotify's relevance ranking. Returns an ErrNotFound error if the search
// has no results. Without an IDCache every call issues a fresh search.
func (c *Client) ResolveID(ctx context.Context, name string, kind SearchType) (string, error) {
	if !kind.single() {
		return "", invalidArgument("name resolution needs exactly one entity kind, got %q", kind.String())
	}
	if strings.TrimSpace(name) == "" {
		return "", invalidArgument("%s name is required", kind)
	}

	if c.cache != nil {
		id, ok, err := c.cache.Lookup(ctx, kind, name)
		if err != nil {
			c.logDebugf("spotify: id cache lookup for %s %q failed: %v", kind, name, err)
		} else if ok {
			c.logDebugf("spotify: resolved %s %q to %s from cache", kind, name, id)
			return id, nil
		}
	}

	res, err := c.search.Search(ctx, name, kind, &Options{Limit: 1})
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s %q: %w", kind, name, err)
	}

	id := firstID(res, kind)
	if id == "" {
		return "", &Error{Kind: ErrNotFound, Message: fmt.Sprintf("no %s matches %q", kind, name)}
	}

	c.logDebugf("spotify: resolved %s %q to %s", kind, name, id)

	if c.cache != nil {
		if err := c.cache.Store(ctx, kind, name, id); err != nil {
			c.logDebugf("spotify: failed to cache %s %q: %v", kind, name, err)
		}
	}

	return id, nil
}

// firstID returns the id of the first item of the page for kind. Null
// entries in the page decode to items without an id and are skipped.
func firstID(res *SearchResult, kind SearchType) string {
	switch kind {
	case SearchTypeArtist:
		return firstNonEmpty(res.Artists.Items, func(a FullArtist) string { return a.ID })
	case SearchTypeAlbum:
		return firstNonEmpty(res.Albums.Items, func(a SimpleAlbum) string { return a.ID })
	case SearchTypeTrack:
		return firstNonEmpty(res.Tracks.Items, func(t FullTrack) string { return t.ID })
	case SearchTypePlaylist:
		return firstNonEmpty(res.Playlists.Items, func(p SimplePlaylist) string { return p.ID })
	}
	return ""
}

func firstNonEmpty[T any](items []T, id func(T) string) string {
	for _, item := range items {
		if v := id(item); v != "" {
			return v
		}
	}
	return ""
}

// resolve returns ref's id, searching for its name if it has none.
func (c *Client) resolve(ctx context.Context, ref Ref, kind SearchType) (string, error) {
	if ref.ID != "" {
		return ref.ID, nil
	}
	return c.ResolveID(ctx, ref.Name, kind)
}

// resolveAll resolves refs in order. The first failure aborts.
func (c *Client) resolveAll(ctx context.Context, refs []Ref, kind SearchType) ([]string, error) {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		id, err := c.resolve(ctx, ref, kind)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// resolveNames resolves a list of names to ids of the given kind.
func (c *Client) resolveNames(ctx context.Context, names []string, kind SearchType) ([]string, error) {
	if len(names) == 0 {
		return nil, invalidArgument("at least one %s name is required", kind)
	}
	return c.resolveAll(ctx, Names(names...), kind)
}
