package spotify

import (
	"errors"
)

// Image is an artwork or avatar image.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ExternalURLs maps a service name to a URL for the object on that service.
type ExternalURLs map[string]string

// Followers holds follower information for an artist or playlist.
type Followers struct {
	Total int `json:"total"`
}

// SimpleArtist is the artist object embedded in albums and tracks.
type SimpleArtist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// FullArtist is the full artist object returned by the artists endpoints.
type FullArtist struct {
	SimpleArtist
	Genres     []string  `json:"genres"`
	Images     []Image   `json:"images"`
	Popularity int       `json:"popularity"`
	Followers  Followers `json:"followers"`
}

func (a *FullArtist) validate() error {
	if a.ID == "" {
		return &missingFieldError{field: "artist id"}
	}
	return nil
}

// SimpleAlbum is the album object returned in lists.
type SimpleAlbum struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	AlbumType            string         `json:"album_type"`
	AlbumGroup           string         `json:"album_group,omitempty"` // Only set by artist albums
	Artists              []SimpleArtist `json:"artists"`
	ReleaseDate          string         `json:"release_date"`
	ReleaseDatePrecision string         `json:"release_date_precision"`
	TotalTracks          int            `json:"total_tracks"`
	Images               []Image        `json:"images"`
	URI                  string         `json:"uri"`
	ExternalURLs         ExternalURLs   `json:"external_urls"`
}

// FullAlbum is the full album object including its first page of tracks.
type FullAlbum struct {
	SimpleAlbum
	Genres     []string            `json:"genres"`
	Label      string              `json:"label"`
	Popularity int                 `json:"popularity"`
	Tracks     Paging[SimpleTrack] `json:"tracks"`
	Copyrights []struct {
		Text string `json:"text"`
		Type string `json:"type"`
	} `json:"copyrights"`
}

func (a *FullAlbum) validate() error {
	if a.ID == "" {
		return &missingFieldError{field: "album id"}
	}
	return nil
}

// SimpleTrack is the track object returned by album track listings and
// recommendations.
type SimpleTrack struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Artists      []SimpleArtist `json:"artists"`
	DiscNumber   int            `json:"disc_number"`
	TrackNumber  int            `json:"track_number"`
	DurationMS   int            `json:"duration_ms"`
	Explicit     bool           `json:"explicit"`
	PreviewURL   string         `json:"preview_url"`
	IsPlayable   *bool          `json:"is_playable,omitempty"` // Only set when a market is given
	URI          string         `json:"uri"`
	ExternalURLs ExternalURLs   `json:"external_urls"`
}

// FullTrack is the full track object.
type FullTrack struct {
	SimpleTrack
	Album       SimpleAlbum `json:"album"`
	Popularity  int         `json:"popularity"`
	ExternalIDs struct {
		ISRC string `json:"isrc"`
	} `json:"external_ids"`
}

func (t *FullTrack) validate() error {
	if t.ID == "" {
		return &missingFieldError{field: "track id"}
	}
	return nil
}

// AudioFeatures describes the acoustic properties of a track.
type AudioFeatures struct {
	ID               string  `json:"id"`
	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	DurationMS       int     `json:"duration_ms"`
	Energy           float64 `json:"energy"`
	Instrumentalness float64 `json:"instrumentalness"`
	Key              int     `json:"key"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
	Valence          float64 `json:"valence"`
	URI              string  `json:"uri"`
}

// AudioAnalysis is the low-level analysis of a track's structure.
type AudioAnalysis struct {
	Track    *AnalysisTrack `json:"track"`
	Bars     []TimeInterval `json:"bars"`
	Beats    []TimeInterval `json:"beats"`
	Tatums   []TimeInterval `json:"tatums"`
	Sections []Section      `json:"sections"`
	Segments []Segment      `json:"segments"`
}

func (a *AudioAnalysis) validate() error {
	if a.Track == nil {
		return &missingFieldError{field: "track"}
	}
	return nil
}

// AnalysisTrack is the whole-track summary of an audio analysis.
type AnalysisTrack struct {
	Duration      float64 `json:"duration"`
	Loudness      float64 `json:"loudness"`
	Tempo         float64 `json:"tempo"`
	Key           int     `json:"key"`
	Mode          int     `json:"mode"`
	TimeSignature int     `json:"time_signature"`
}

// TimeInterval is a bar, beat or tatum in an audio analysis.
type TimeInterval struct {
	Start      float64 `json:"start"`
	Duration   float64 `json:"duration"`
	Confidence float64 `json:"confidence"`
}

// Section is a large structural section of a track.
type Section struct {
	TimeInterval
	Loudness float64 `json:"loudness"`
	Tempo    float64 `json:"tempo"`
	Key      int     `json:"key"`
	Mode     int     `json:"mode"`
}

// Segment is a short, roughly consistent sound in a track.
type Segment struct {
	TimeInterval
	LoudnessStart float64   `json:"loudness_start"`
	LoudnessMax   float64   `json:"loudness_max"`
	Pitches       []float64 `json:"pitches"`
	Timbre        []float64 `json:"timbre"`
}

// Category is a browse category.
type Category struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Href  string  `json:"href"`
	Icons []Image `json:"icons"`
}

func (c *Category) validate() error {
	if c.ID == "" {
		return &missingFieldError{field: "category id"}
	}
	return nil
}

// SimplePlaylist is the playlist object returned in lists.
type SimplePlaylist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Public *bool `json:"public"`
	Tracks struct {
		Total int `json:"total"`
	} `json:"tracks"`
	Images       []Image      `json:"images"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// FeaturedPlaylists is the response of the featured playlists endpoint.
type FeaturedPlaylists struct {
	Message   string                 `json:"message"`
	Playlists Paging[SimplePlaylist] `json:"playlists"`
}

func (f *FeaturedPlaylists) validate() error {
	return f.Playlists.validate()
}

// Paging is the pagination envelope Spotify wraps lists in. Only a single
// page is ever fetched.
type Paging[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Total    int     `json:"total"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

func (p *Paging[T]) validate() error {
	if p.Items == nil {
		return errors.New("paging object missing items")
	}
	return nil
}

// SearchResult holds one page per requested search type. Pages for types
// that were not requested are nil.
type SearchResult struct {
	Artists   *Paging[FullArtist]     `json:"artists"`
	Albums    *Paging[SimpleAlbum]    `json:"albums"`
	Tracks    *Paging[FullTrack]      `json:"tracks"`
	Playlists *Paging[SimplePlaylist] `json:"playlists"`
}

// Seeds are the inputs to the recommendations endpoint. Artist and track
// seeds may be names; they are resolved to ids before the request.
// At most five seeds may be given in total.
type Seeds struct {
	Artists []Ref
	Tracks  []Ref
	Genres  []string
}

func (s Seeds) count() int {
	return len(s.Artists) + len(s.Tracks) + len(s.Genres)
}
