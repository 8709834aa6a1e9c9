package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/spf13/cobra"
)

var (
	artistByID   bool
	artistGroups []string
	artistLimit  int
)

// artistCmd represents the artist command
var artistCmd = &cobra.Command{
	Use:   "artist <name>",
	Short: "Show an artist",
	Long: `Show an artist by name or, with --id, by Spotify id.

A name is resolved with an artist search and the first match is used.`,
	Example: `  spotweb artist converge
  spotweb artist --id 6OBl2zq3Y7bnbOSDNSAKfw`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArtist,
}

var artistAlbumsCmd = &cobra.Command{
	Use:   "albums <name>",
	Short: "List an artist's albums",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistAlbums,
}

var artistTopTracksCmd = &cobra.Command{
	Use:   "top-tracks <name>",
	Short: "List an artist's most popular tracks in the market",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistTopTracks,
}

var artistRelatedCmd = &cobra.Command{
	Use:   "related <name>",
	Short: "List artists similar to an artist",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistRelated,
}

func init() {
	rootCmd.AddCommand(artistCmd)
	artistCmd.AddCommand(artistAlbumsCmd, artistTopTracksCmd, artistRelatedCmd)

	artistCmd.PersistentFlags().BoolVar(&artistByID, "id", false, "Treat the argument as a Spotify id")
	artistAlbumsCmd.Flags().StringSliceVar(&artistGroups, "groups", nil, "Album groups: album, single, appears_on, compilation")
	artistAlbumsCmd.Flags().IntVarP(&artistLimit, "limit", "l", 0, "Number of albums (default 20)")
}

func runArtist(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		artist, err := s.client.Artists().Get(cmd.Context(), refArg(args, artistByID))
		if err != nil {
			return fmt.Errorf("failed to get artist: %w", err)
		}

		return render(cmd.OutOrStdout(), artist, func() *table {
			tbl := newTable("ARTIST", "ID", "FOLLOWERS", "POPULARITY", "GENRES")
			tbl.add(artist.Name, artist.ID, strconv.Itoa(artist.Followers.Total), strconv.Itoa(artist.Popularity), strings.Join(artist.Genres, ", "))
			return tbl
		})
	})
}

func runArtistAlbums(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		albums, err := s.client.Artists().Albums(cmd.Context(), refArg(args, artistByID), &spotify.Options{
			IncludeGroups: artistGroups,
			Limit:         artistLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to get albums: %w", err)
		}

		return render(cmd.OutOrStdout(), albums, func() *table {
			tbl := newTable("ALBUM", "GROUP", "RELEASED", "TRACKS", "ID")
			for _, a := range albums {
				tbl.add(a.Name, a.AlbumGroup, a.ReleaseDate, strconv.Itoa(a.TotalTracks), a.ID)
			}
			return tbl
		})
	})
}

func runArtistTopTracks(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		tracks, err := s.client.Artists().TopTracks(cmd.Context(), refArg(args, artistByID), nil)
		if err != nil {
			return fmt.Errorf("failed to get top tracks: %w", err)
		}

		return render(cmd.OutOrStdout(), tracks, func() *table {
			tbl := newTable("#", "TRACK", "ALBUM", "LENGTH", "ID")
			for i, t := range tracks {
				tbl.add(strconv.Itoa(i+1), t.Name, t.Album.Name, formatDuration(t.DurationMS), t.ID)
			}
			return tbl
		})
	})
}

func runArtistRelated(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		artists, err := s.client.Artists().RelatedArtists(cmd.Context(), refArg(args, artistByID))
		if err != nil {
			return fmt.Errorf("failed to get related artists: %w", err)
		}

		return render(cmd.OutOrStdout(), artists, func() *table {
			tbl := newTable("ARTIST", "POPULARITY", "ID")
			for _, a := range artists {
				tbl.add(a.Name, strconv.Itoa(a.Popularity), a.ID)
			}
			return tbl
		})
	})
}
