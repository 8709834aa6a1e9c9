package cmd

import (
	"fmt"
	"strconv"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/spf13/cobra"
)

var (
	albumByID  bool
	albumLimit int
)

// albumCmd represents the album command
var albumCmd = &cobra.Command{
	Use:   "album <name>",
	Short: "Show an album",
	Long: `Show an album by name or, with --id, by Spotify id.

A name is resolved with an album search and the first match is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAlbum,
}

var albumTracksCmd = &cobra.Command{
	Use:     "tracks <name>",
	Short:   "List the tracks on an album",
	Example: `  spotweb album tracks jane doe`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runAlbumTracks,
}

func init() {
	rootCmd.AddCommand(albumCmd)
	albumCmd.AddCommand(albumTracksCmd)

	albumCmd.PersistentFlags().BoolVar(&albumByID, "id", false, "Treat the argument as a Spotify id")
	albumTracksCmd.Flags().IntVarP(&albumLimit, "limit", "l", 0, "Number of tracks (default 20)")
}

func runAlbum(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		album, err := s.client.Albums().Get(cmd.Context(), refArg(args, albumByID), nil)
		if err != nil {
			return fmt.Errorf("failed to get album: %w", err)
		}

		return render(cmd.OutOrStdout(), album, func() *table {
			tbl := newTable("ALBUM", "ARTISTS", "RELEASED", "LABEL", "TRACKS", "ID")
			tbl.add(album.Name, artistNames(album.Artists), album.ReleaseDate, album.Label, strconv.Itoa(album.TotalTracks), album.ID)
			return tbl
		})
	})
}

func runAlbumTracks(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		tracks, err := s.client.Albums().Tracks(cmd.Context(), refArg(args, albumByID), &spotify.Options{Limit: albumLimit})
		if err != nil {
			return fmt.Errorf("failed to get album tracks: %w", err)
		}

		return render(cmd.OutOrStdout(), tracks, func() *table {
			tbl := newTable("#", "TRACK", "ARTISTS", "LENGTH", "ID")
			for _, t := range tracks {
				tbl.add(strconv.Itoa(t.TrackNumber), t.Name, artistNames(t.Artists), formatDuration(t.DurationMS), t.ID)
			}
			return tbl
		})
	})
}
