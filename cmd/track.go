package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var trackByID bool

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track <name>",
	Short: "Show a track",
	Long: `Show a track by name or, with --id, by Spotify id.

A name is resolved with a track search and the first match is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrack,
}

var trackFeaturesCmd = &cobra.Command{
	Use:   "features <name>...",
	Short: "Show audio features for one or more tracks",
	Long: `Show audio features for one or more tracks.

Each argument is a separate track; quote names that contain spaces.`,
	Example: `  spotweb track features concubine "fault and fracture"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTrackFeatures,
}

var trackAnalysisCmd = &cobra.Command{
	Use:   "analysis <name>",
	Short: "Show the audio analysis summary and sections of a track",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrackAnalysis,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackFeaturesCmd, trackAnalysisCmd)

	trackCmd.PersistentFlags().BoolVar(&trackByID, "id", false, "Treat arguments as Spotify ids")
}

func runTrack(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		track, err := s.client.Tracks().Get(cmd.Context(), refArg(args, trackByID), nil)
		if err != nil {
			return fmt.Errorf("failed to get track: %w", err)
		}

		return render(cmd.OutOrStdout(), track, func() *table {
			tbl := newTable("TRACK", "ARTISTS", "ALBUM", "LENGTH", "ID")
			tbl.add(track.Name, artistNames(track.Artists), track.Album.Name, formatDuration(track.DurationMS), track.ID)
			return tbl
		})
	})
}

func runTrackFeatures(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		features, err := s.client.Tracks().AudioFeatures(cmd.Context(), refArgs(args, trackByID), nil)
		if err != nil {
			return fmt.Errorf("failed to get audio features: %w", err)
		}

		return render(cmd.OutOrStdout(), features, func() *table {
			tbl := newTable("TRACK", "TEMPO", "KEY", "ENERGY", "DANCE", "VALENCE", "ID")
			for i, f := range features {
				if f.ID == "" {
					tbl.add(args[i], "-", "-", "-", "-", "-", "")
					continue
				}
				tbl.add(args[i],
					strconv.FormatFloat(f.Tempo, 'f', 1, 64),
					keyName(f.Key, f.Mode),
					strconv.FormatFloat(f.Energy, 'f', 2, 64),
					strconv.FormatFloat(f.Danceability, 'f', 2, 64),
					strconv.FormatFloat(f.Valence, 'f', 2, 64),
					f.ID,
				)
			}
			return tbl
		})
	})
}

func runTrackAnalysis(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		analysis, err := s.client.Tracks().AudioAnalysis(cmd.Context(), refArg(args, trackByID))
		if err != nil {
			return fmt.Errorf("failed to get audio analysis: %w", err)
		}

		return render(cmd.OutOrStdout(), analysis, func() *table {
			tbl := newTable("SECTION", "START", "LENGTH", "TEMPO", "KEY", "LOUDNESS")
			for i, sec := range analysis.Sections {
				tbl.add(strconv.Itoa(i+1),
					strconv.FormatFloat(sec.Start, 'f', 1, 64),
					strconv.FormatFloat(sec.Duration, 'f', 1, 64),
					strconv.FormatFloat(sec.Tempo, 'f', 1, 64),
					keyName(sec.Key, sec.Mode),
					strconv.FormatFloat(sec.Loudness, 'f', 1, 64),
				)
			}
			return tbl
		})
	})
}

var pitchClasses = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// keyName renders a pitch class and mode as e.g. "E minor". Spotify uses -1
// for an undetected key.
func keyName(key, mode int) string {
	if key < 0 || key >= len(pitchClasses) {
		return "?"
	}
	if mode == 1 {
		return pitchClasses[key] + " major"
	}
	return pitchClasses[key] + " minor"
}
