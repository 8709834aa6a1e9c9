package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	// MaxTracksPerRequest is the most tracks the several-tracks endpoint
	// accepts at once.
	MaxTracksPerRequest = 50

	// MaxAudioFeaturesPerRequest is the most tracks the audio features
	// endpoint accepts at once.
	MaxAudioFeaturesPerRequest = 100
)

// TrackService provides track lookups and audio analysis.
type TrackService struct {
	client *Client
}

// Get returns a single track. The market defaults to the client's market.
func (s *TrackService) Get(ctx context.Context, track Ref, opt *Options) (*FullTrack, error) {
	id, err := s.client.resolve(ctx, track, SearchTypeTrack)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{"market": {s.client.market}}

	var result FullTrack
	if err := s.client.get(ctx, "/tracks/"+url.PathEscape(id), opt.query(defaults), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Several returns multiple tracks in one request, in the order given.
//
// Up to MaxTracksPerRequest tracks can be requested at once. The market
// defaults to the client's market.
func (s *TrackService) Several(ctx context.Context, tracks []Ref, opt *Options) ([]FullTrack, error) {
	if len(tracks) == 0 {
		return nil, invalidArgument("at least one track is required")
	}
	if len(tracks) > MaxTracksPerRequest {
		return nil, invalidArgument("cannot request more than %d tracks at once (got %d)", MaxTracksPerRequest, len(tracks))
	}

	ids, err := s.client.resolveAll(ctx, tracks, SearchTypeTrack)
	if err != nil {
		return nil, err
	}

	defaults := url.Values{
		"ids":    {strings.Join(ids, ",")},
		"market": {s.client.market},
	}

	var result struct {
		Tracks []FullTrack `json:"tracks"`
	}
	if err := s.client.get(ctx, "/tracks", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if result.Tracks == nil {
		return nil, formatError(&missingFieldError{field: "tracks"})
	}
	return result.Tracks, nil
}

// AudioFeatures returns audio features for each track, in the order given.
//
// Tracks Spotify has no features for come back as zero values with an
// empty ID, so the result lines up with the input. A response with a
// different number of entries is an ErrResponseFormat error.
//
// Example:
//
//	feats, err := client.Tracks().AudioFeatures(ctx, []spotify.Ref{
//	    spotify.Name("concubine"),
//	    spotify.ID("11dFghVXANMlKmJXsNCbNl"),
//	}, nil)
func (s *TrackService) AudioFeatures(ctx context.Context, tracks []Ref, opt *Options) ([]AudioFeatures, error) {
	if len(tracks) == 0 {
		return nil, invalidArgument("at least one track is required")
	}
	if len(tracks) > MaxAudioFeaturesPerRequest {
		return nil, invalidArgument("cannot request audio features for more than %d tracks at once (got %d)", MaxAudioFeaturesPerRequest, len(tracks))
	}

	ids, err := s.client.resolveAll(ctx, tracks, SearchTypeTrack)
	if err != nil {
		return nil, err
	}

	var result struct {
		AudioFeatures []*AudioFeatures `json:"audio_features"`
	}
	defaults := url.Values{"ids": {strings.Join(ids, ",")}}
	if err := s.client.get(ctx, "/audio-features", opt.query(defaults), &result); err != nil {
		return nil, err
	}
	if result.AudioFeatures == nil {
		return nil, formatError(&missingFieldError{field: "audio_features"})
	}
	if len(result.AudioFeatures) != len(ids) {
		return nil, formatError(fmt.Errorf("got audio features for %d tracks, requested %d", len(result.AudioFeatures), len(ids)))
	}

	features := make([]AudioFeatures, len(result.AudioFeatures))
	for i, f := range result.AudioFeatures {
		if f != nil {
			features[i] = *f
		}
	}
	return features, nil
}

// AudioAnalysis returns the audio analysis for a single track.
func (s *TrackService) AudioAnalysis(ctx context.Context, track Ref) (*AudioAnalysis, error) {
	id, err := s.client.resolve(ctx, track, SearchTypeTrack)
	if err != nil {
		return nil, err
	}

	var result AudioAnalysis
	if err := s.client.get(ctx, "/audio-analysis/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// IDs resolves track names to ids, in order. The first name that matches
// nothing fails the whole call with an ErrNotFound error.
func (s *TrackService) IDs(ctx context.Context, names ...string) ([]string, error) {
	return s.client.resolveNames(ctx, names, SearchTypeTrack)
}
