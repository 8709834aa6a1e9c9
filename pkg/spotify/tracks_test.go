package spotify

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestTrackService_Get(t *testing.T) {
	api := newTestAPI(t)
	api.handleJSON("/tracks/t1", `{
		"id": "t1",
		"name": "Concubine",
		"duration_ms": 81000,
		"album": {"id": "al1", "name": "Jane Doe"},
		"artists": [{"id": "a1", "name": "Converge"}],
		"external_ids": {"isrc": "USEV10100001"}
	}`)
	client := api.client(t)

	track, err := client.Tracks().Get(context.Background(), ID("t1"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.Name != "Concubine" || track.Album.Name != "Jane Doe" {
		t.Errorf("unexpected track: %+v", track)
	}
	if track.ExternalIDs.ISRC != "USEV10100001" {
		t.Errorf("expected isrc USEV10100001, got %q", track.ExternalIDs.ISRC)
	}
}

func TestTrackService_Several(t *testing.T) {
	api := newTestAPI(t)
	var ids string
	api.handle("/tracks", func(w http.ResponseWriter, r *http.Request) {
		ids = r.URL.Query().Get("ids")
		writeJSON(w, http.StatusOK, map[string]any{
			"tracks": []map[string]any{{"id": "t1"}, {"id": "t2"}},
		})
	})
	client := api.client(t)

	tracks, err := client.Tracks().Several(context.Background(), IDs("t1", "t2"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids != "t1,t2" {
		t.Errorf("expected ids t1,t2, got %q", ids)
	}
	if len(tracks) != 2 {
		t.Errorf("expected 2 tracks, got %d", len(tracks))
	}

	if _, err := client.Tracks().Several(context.Background(), make([]Ref, MaxTracksPerRequest+1), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestTrackService_AudioFeatures(t *testing.T) {
	api := newTestAPI(t)
	var ids string
	api.handle("/audio-features", func(w http.ResponseWriter, r *http.Request) {
		ids = r.URL.Query().Get("ids")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"audio_features":[
			{"id":"t1","energy":0.99,"tempo":187.3,"key":4,"mode":0},
			null,
			{"id":"t3","energy":0.42,"tempo":92.1}
		]}`))
	})
	client := api.client(t)

	features, err := client.Tracks().AudioFeatures(context.Background(), IDs("t1", "t2", "t3"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ids != "t1,t2,t3" {
		t.Errorf("expected ids t1,t2,t3, got %q", ids)
	}
	if len(features) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(features))
	}
	if features[0].ID != "t1" || features[0].Energy != 0.99 {
		t.Errorf("unexpected first entry: %+v", features[0])
	}
	if features[1] != (AudioFeatures{}) {
		t.Errorf("expected zero value for missing features, got %+v", features[1])
	}
	if features[2].ID != "t3" {
		t.Errorf("unexpected third entry: %+v", features[2])
	}
}

func TestTrackService_AudioFeatures_LengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "extra entry", body: `{"audio_features":[{"id":"t1"},{"id":"t2"},{"id":"t3"}]}`},
		{name: "missing entry", body: `{"audio_features":[{"id":"t1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.handleJSON("/audio-features", tt.body)
			client := api.client(t)

			_, err := client.Tracks().AudioFeatures(context.Background(), IDs("t1", "t2"), nil)
			if !errors.Is(err, ErrResponseFormat) {
				t.Errorf("expected ErrResponseFormat, got %v", err)
			}
		})
	}
}

func TestTrackService_AudioFeatures_Limits(t *testing.T) {
	api := newTestAPI(t)
	client := api.client(t)
	ctx := context.Background()

	if _, err := client.Tracks().AudioFeatures(ctx, nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for no tracks, got %v", err)
	}
	if _, err := client.Tracks().AudioFeatures(ctx, make([]Ref, MaxAudioFeaturesPerRequest+1), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for too many tracks, got %v", err)
	}
}

func TestTrackService_AudioAnalysis(t *testing.T) {
	api := newTestAPI(t)
	api.handleJSON("/audio-analysis/t1", `{
		"track": {"duration": 81.2, "tempo": 187.3, "key": 4, "mode": 0, "time_signature": 4},
		"bars": [{"start": 0.1, "duration": 1.3, "confidence": 0.8}],
		"sections": [{"start": 0, "duration": 20.5, "confidence": 1, "loudness": -4.2, "tempo": 187.1}],
		"segments": [{"start": 0, "duration": 0.2, "confidence": 0.5, "loudness_max": -3.1, "pitches": [0.1, 0.9], "timbre": [40.2]}]
	}`)
	client := api.client(t)

	analysis, err := client.Tracks().AudioAnalysis(context.Background(), ID("t1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Track.Tempo != 187.3 || analysis.Track.TimeSignature != 4 {
		t.Errorf("unexpected track summary: %+v", analysis.Track)
	}
	if len(analysis.Bars) != 1 || analysis.Bars[0].Duration != 1.3 {
		t.Errorf("unexpected bars: %+v", analysis.Bars)
	}
	if len(analysis.Sections) != 1 || analysis.Sections[0].Loudness != -4.2 {
		t.Errorf("unexpected sections: %+v", analysis.Sections)
	}
	if len(analysis.Segments) != 1 || len(analysis.Segments[0].Pitches) != 2 {
		t.Errorf("unexpected segments: %+v", analysis.Segments)
	}
}

func TestTrackService_AudioAnalysis_ByName(t *testing.T) {
	api := newTestAPI(t)
	api.handleJSON("/search", `{"tracks":{"items":[{"id":"t1","name":"Concubine"}]}}`)
	api.handleJSON("/audio-analysis/t1", `{"track":{"tempo":187.3}}`)
	client := api.client(t)

	analysis, err := client.Tracks().AudioAnalysis(context.Background(), Name("concubine"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Track.Tempo != 187.3 {
		t.Errorf("expected tempo 187.3, got %v", analysis.Track.Tempo)
	}
}
