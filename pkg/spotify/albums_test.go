package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

const janeDoeTracks = `{
	"href": "https://api.spotify.com/v1/albums/2z9Ju4CkKdGLXR7v0qTYTR/tracks",
	"items": [
		{"id": "t1", "name": "Concubine", "track_number": 1, "disc_number": 1, "duration_ms": 81000},
		{"id": "t2", "name": "Fault and Fracture", "track_number": 2, "disc_number": 1, "duration_ms": 89000},
		{"id": "t3", "name": "Distance and Meaning", "track_number": 3, "disc_number": 1, "duration_ms": 275000},
		{"id": "t4", "name": "Hell to Pay", "track_number": 4, "disc_number": 1, "duration_ms": 175000}
	],
	"limit": 20,
	"offset": 0,
	"total": 12
}`

func TestAlbumService_Tracks(t *testing.T) {
	api := newTestAPI(t)
	api.handleJSON("/albums/2z9Ju4CkKdGLXR7v0qTYTR/tracks", janeDoeTracks)
	client := api.client(t)

	tracks, err := client.Albums().Tracks(context.Background(), ID("2z9Ju4CkKdGLXR7v0qTYTR"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Concubine", "Fault and Fracture", "Distance and Meaning", "Hell to Pay"}
	if len(tracks) != len(want) {
		t.Fatalf("expected %d tracks, got %d", len(want), len(tracks))
	}
	for i, name := range want {
		if tracks[i].Name != name {
			t.Errorf("track %d: expected %q, got %q", i, name, tracks[i].Name)
		}
		if tracks[i].TrackNumber != i+1 {
			t.Errorf("track %d: expected track number %d, got %d", i, i+1, tracks[i].TrackNumber)
		}
	}
}

func TestAlbumService_Tracks_ByName(t *testing.T) {
	api := newTestAPI(t)
	var searched string
	api.handle("/search", func(w http.ResponseWriter, r *http.Request) {
		searched = r.URL.Query().Get("q")
		if r.URL.Query().Get("type") != "album" {
			t.Errorf("expected album search, got type=%q", r.URL.Query().Get("type"))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"albums": map[string]any{"items": []map[string]any{{"id": "2z9Ju4CkKdGLXR7v0qTYTR", "name": "Jane Doe"}}},
		})
	})
	api.handleJSON("/albums/2z9Ju4CkKdGLXR7v0qTYTR/tracks", janeDoeTracks)
	client := api.client(t)

	tracks, err := client.Albums().Tracks(context.Background(), Name("jane doe"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if searched != "jane doe" {
		t.Errorf("expected search for %q, got %q", "jane doe", searched)
	}
	if len(tracks) != 4 {
		t.Errorf("expected 4 tracks, got %d", len(tracks))
	}
	if n := api.requests.Load(); n != 2 {
		t.Errorf("expected 2 requests (search then tracks), got %d", n)
	}
}

func TestAlbumService_Tracks_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
	}{
		{
			name:     "unknown album",
			status:   http.StatusNotFound,
			body:     `{"error":{"status":404,"message":"Non existing id"}}`,
			wantKind: ErrNotFound,
		},
		{
			name:     "missing items",
			status:   http.StatusOK,
			body:     `{"limit":20,"total":0}`,
			wantKind: ErrResponseFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.handle("/albums/nope/tracks", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			client := api.client(t)

			_, err := client.Albums().Tracks(context.Background(), ID("nope"), nil)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("expected %v, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestAlbumService_Get(t *testing.T) {
	api := newTestAPI(t)
	var market string
	api.handle("/albums/al1", func(w http.ResponseWriter, r *http.Request) {
		market = r.URL.Query().Get("market")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "al1",
			"name": "Jane Doe",
			"album_type": "album",
			"label": "Equal Vision",
			"artists": [{"id": "a1", "name": "Converge"}],
			"tracks": {"items": [{"id": "t1", "name": "Concubine"}], "total": 12}
		}`))
	})
	client := api.client(t)

	album, err := client.Albums().Get(context.Background(), ID("al1"), &Options{Market: "SE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if market != "SE" {
		t.Errorf("expected market SE, got %q", market)
	}
	if album.Name != "Jane Doe" || album.Label != "Equal Vision" {
		t.Errorf("unexpected album: %+v", album)
	}
	if len(album.Tracks.Items) != 1 || album.Tracks.Total != 12 {
		t.Errorf("unexpected album tracks: %+v", album.Tracks)
	}
}

func TestAlbumService_Several(t *testing.T) {
	api := newTestAPI(t)
	var ids string
	api.handle("/albums", func(w http.ResponseWriter, r *http.Request) {
		ids = r.URL.Query().Get("ids")
		writeJSON(w, http.StatusOK, map[string]any{
			"albums": []map[string]any{{"id": "al1"}, {"id": "al2"}},
		})
	})
	client := api.client(t)

	albums, err := client.Albums().Several(context.Background(), IDs("al1", "al2"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ids != "al1,al2" {
		t.Errorf("expected ids al1,al2, got %q", ids)
	}
	if len(albums) != 2 || albums[0].ID != "al1" || albums[1].ID != "al2" {
		t.Errorf("unexpected albums: %+v", albums)
	}
}

func TestAlbumService_Several_Limits(t *testing.T) {
	tooMany := make([]string, MaxAlbumsPerRequest+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("al%d", i)
	}

	tests := []struct {
		name string
		refs []Ref
	}{
		{name: "none", refs: nil},
		{name: "too many", refs: IDs(tooMany...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			client := api.client(t)

			_, err := client.Albums().Several(context.Background(), tt.refs, nil)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if n := api.requests.Load(); n != 0 {
				t.Errorf("expected no requests, got %d", n)
			}
		})
	}
}

func TestAlbumService_IDs(t *testing.T) {
	api := newTestAPI(t)
	api.handle("/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "no such album" {
			writeJSON(w, http.StatusOK, map[string]any{"albums": map[string]any{"items": []any{}}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"albums": map[string]any{"items": []map[string]any{{"id": "id-" + strings.ReplaceAll(q, " ", "-")}}},
		})
	})
	client := api.client(t)
	ctx := context.Background()

	ids, err := client.Albums().IDs(ctx, "jane doe", "axe to fall")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(ids, ",") != "id-jane-doe,id-axe-to-fall" {
		t.Errorf("unexpected ids: %v", ids)
	}

	if _, err := client.Albums().IDs(ctx, "jane doe", "no such album"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := client.Albums().IDs(ctx); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
