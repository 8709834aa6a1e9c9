package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestArtistService_Get(t *testing.T) {
	api := newTestAPI(t)
	api.handleJSON("/artists/6OBl2zq3Y7bnbOSDNSAKfw", `{
		"id": "6OBl2zq3Y7bnbOSDNSAKfw",
		"name": "Converge",
		"genres": ["metalcore", "mathcore"],
		"popularity": 52,
		"followers": {"total": 412000}
	}`)
	client := api.client(t)

	artist, err := client.Artists().Get(context.Background(), ID("6OBl2zq3Y7bnbOSDNSAKfw"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if artist.Name != "Converge" {
		t.Errorf("expected name Converge, got %q", artist.Name)
	}
	if len(artist.Genres) != 2 {
		t.Errorf("expected 2 genres, got %v", artist.Genres)
	}
	if artist.Followers.Total != 412000 {
		t.Errorf("expected 412000 followers, got %d", artist.Followers.Total)
	}
}

func TestArtistService_Albums(t *testing.T) {
	tests := []struct {
		name       string
		opt        *Options
		wantGroups string
		wantLimit  string
	}{
		{
			name:       "defaults",
			opt:        nil,
			wantGroups: "album,single,appears_on,compilation",
			wantLimit:  "20",
		},
		{
			name:       "only albums",
			opt:        &Options{IncludeGroups: []string{"album"}, Limit: 50},
			wantGroups: "album",
			wantLimit:  "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			var got url.Values
			api.handle("/artists/a1/albums", func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
				writeJSON(w, http.StatusOK, map[string]any{
					"items": []map[string]any{
						{"id": "al1", "name": "Jane Doe", "album_group": "album"},
						{"id": "al2", "name": "Axe to Fall", "album_group": "album"},
					},
				})
			})
			client := api.client(t)

			albums, err := client.Artists().Albums(context.Background(), ID("a1"), tt.opt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Get("include_groups") != tt.wantGroups {
				t.Errorf("expected include_groups %q, got %q", tt.wantGroups, got.Get("include_groups"))
			}
			if got.Get("limit") != tt.wantLimit {
				t.Errorf("expected limit %q, got %q", tt.wantLimit, got.Get("limit"))
			}
			if len(albums) != 2 || albums[0].Name != "Jane Doe" {
				t.Errorf("unexpected albums: %+v", albums)
			}
		})
	}
}

func TestArtistService_TopTracks(t *testing.T) {
	api := newTestAPI(t)
	var market string
	api.handle("/artists/a1/top-tracks", func(w http.ResponseWriter, r *http.Request) {
		market = r.URL.Query().Get("market")
		writeJSON(w, http.StatusOK, map[string]any{
			"tracks": []map[string]any{
				{"id": "t1", "name": "Concubine", "popularity": 60, "album": map[string]any{"id": "al1", "name": "Jane Doe"}},
			},
		})
	})
	client := api.client(t)

	tracks, err := client.Artists().TopTracks(context.Background(), ID("a1"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if market != DefaultMarket {
		t.Errorf("expected market %q, got %q", DefaultMarket, market)
	}
	if len(tracks) != 1 || tracks[0].Album.Name != "Jane Doe" {
		t.Errorf("unexpected tracks: %+v", tracks)
	}
}

func TestArtistService_RelatedArtists(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLen  int
		wantKind error
	}{
		{
			name:    "related",
			body:    `{"artists":[{"id":"a2","name":"Botch"},{"id":"a3","name":"Cave In"}]}`,
			wantLen: 2,
		},
		{
			name:    "none",
			body:    `{"artists":[]}`,
			wantLen: 0,
		},
		{
			name:     "missing field",
			body:     `{}`,
			wantKind: ErrResponseFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.handleJSON("/artists/a1/related-artists", tt.body)
			client := api.client(t)

			artists, err := client.Artists().RelatedArtists(context.Background(), ID("a1"))
			if tt.wantKind != nil {
				if !errors.Is(err, tt.wantKind) {
					t.Fatalf("expected %v, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(artists) != tt.wantLen {
				t.Errorf("expected %d artists, got %d", tt.wantLen, len(artists))
			}
		})
	}
}

func TestArtistService_Several(t *testing.T) {
	api := newTestAPI(t)
	api.handle("/search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"artists": map[string]any{"items": []map[string]any{{"id": "resolved"}}},
		})
	})
	var ids string
	api.handle("/artists", func(w http.ResponseWriter, r *http.Request) {
		ids = r.URL.Query().Get("ids")
		writeJSON(w, http.StatusOK, map[string]any{
			"artists": []map[string]any{{"id": "a1"}, {"id": "resolved"}},
		})
	})
	client := api.client(t)

	artists, err := client.Artists().Several(context.Background(), []Ref{ID("a1"), Name("botch")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ids != "a1,resolved" {
		t.Errorf("expected ids a1,resolved, got %q", ids)
	}
	if len(artists) != 2 {
		t.Errorf("expected 2 artists, got %d", len(artists))
	}
}

func TestArtistService_Several_Limits(t *testing.T) {
	api := newTestAPI(t)
	client := api.client(t)
	ctx := context.Background()

	if _, err := client.Artists().Several(ctx, nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for no artists, got %v", err)
	}

	refs := make([]Ref, MaxArtistsPerRequest+1)
	for i := range refs {
		refs[i] = ID("a")
	}
	if _, err := client.Artists().Several(ctx, refs, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for too many artists, got %v", err)
	}

	if n := api.requests.Load(); n != 0 {
		t.Errorf("expected no requests, got %d", n)
	}
}

func TestArtistService_Get_UnknownName(t *testing.T) {
	api := newTestAPI(t)
	api.handleJSON("/search", `{"artists":{"items":[]}}`)
	client := api.client(t)

	_, err := client.Artists().Get(context.Background(), Name("definitely not a band"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n := api.requests.Load(); n != 1 {
		t.Errorf("expected only the search request, got %d", n)
	}
}
