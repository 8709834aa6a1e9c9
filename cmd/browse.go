package cmd

import (
	"fmt"
	"strconv"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/spf13/cobra"
)

var (
	browseLimit   int
	browseCountry string
	browseLocale  string

	recommendArtists []string
	recommendTracks  []string
	recommendGenres  []string
	recommendByID    bool
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse categories, featured playlists, new releases and recommendations",
}

var browseCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List browse categories",
	Args:  cobra.NoArgs,
	RunE:  runBrowseCategories,
}

var browseCategoryCmd = &cobra.Command{
	Use:   "category <id>",
	Short: "Show a browse category",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowseCategory,
}

var browsePlaylistsCmd = &cobra.Command{
	Use:   "playlists <category-id>",
	Short: "List the playlists in a browse category",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowsePlaylists,
}

var browseFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured playlists",
	Args:  cobra.NoArgs,
	RunE:  runBrowseFeatured,
}

var browseNewReleasesCmd = &cobra.Command{
	Use:   "new-releases",
	Short: "List new album releases",
	Args:  cobra.NoArgs,
	RunE:  runBrowseNewReleases,
}

var browseGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres accepted as recommendation seeds",
	Args:  cobra.NoArgs,
	RunE:  runBrowseGenres,
}

var browseRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend tracks from artist, track and genre seeds",
	Long: `Recommend tracks from up to five seeds in total.

Artist and track seeds are names unless --id is given.`,
	Example: `  spotweb browse recommend --artist converge --genre metalcore`,
	Args:    cobra.NoArgs,
	RunE:    runBrowseRecommend,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.AddCommand(
		browseCategoriesCmd,
		browseCategoryCmd,
		browsePlaylistsCmd,
		browseFeaturedCmd,
		browseNewReleasesCmd,
		browseGenresCmd,
		browseRecommendCmd,
	)

	browseCmd.PersistentFlags().IntVarP(&browseLimit, "limit", "l", 0, "Number of results (default 20)")
	browseCmd.PersistentFlags().StringVar(&browseCountry, "country", "", "Country code (defaults to the market)")
	browseCmd.PersistentFlags().StringVar(&browseLocale, "locale", "", "Locale such as sv_SE")

	browseRecommendCmd.Flags().StringSliceVar(&recommendArtists, "artist", nil, "Artist seed (repeatable)")
	browseRecommendCmd.Flags().StringSliceVar(&recommendTracks, "track", nil, "Track seed (repeatable)")
	browseRecommendCmd.Flags().StringSliceVar(&recommendGenres, "genre", nil, "Genre seed (repeatable)")
	browseRecommendCmd.Flags().BoolVar(&recommendByID, "id", false, "Treat artist and track seeds as Spotify ids")
}

func browseOptions() *spotify.Options {
	return &spotify.Options{
		Limit:   browseLimit,
		Country: browseCountry,
		Locale:  browseLocale,
	}
}

func runBrowseCategories(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		categories, err := s.client.Browse().Categories(cmd.Context(), browseOptions())
		if err != nil {
			return fmt.Errorf("failed to get categories: %w", err)
		}

		return render(cmd.OutOrStdout(), categories, func() *table {
			tbl := newTable("CATEGORY", "ID")
			for _, c := range categories {
				tbl.add(c.Name, c.ID)
			}
			return tbl
		})
	})
}

func runBrowseCategory(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		category, err := s.client.Browse().Category(cmd.Context(), args[0], browseOptions())
		if err != nil {
			return fmt.Errorf("failed to get category: %w", err)
		}

		return render(cmd.OutOrStdout(), category, func() *table {
			tbl := newTable("CATEGORY", "ID", "HREF")
			tbl.add(category.Name, category.ID, category.Href)
			return tbl
		})
	})
}

func runBrowsePlaylists(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		playlists, err := s.client.Browse().CategoryPlaylists(cmd.Context(), args[0], browseOptions())
		if err != nil {
			return fmt.Errorf("failed to get category playlists: %w", err)
		}

		return render(cmd.OutOrStdout(), playlists, playlistTable(playlists))
	})
}

func runBrowseFeatured(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		featured, err := s.client.Browse().FeaturedPlaylists(cmd.Context(), browseOptions())
		if err != nil {
			return fmt.Errorf("failed to get featured playlists: %w", err)
		}

		if !flagJSON && featured.Message != "" {
			fmt.Fprintln(cmd.OutOrStdout(), featured.Message)
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return render(cmd.OutOrStdout(), featured, playlistTable(featured.Playlists.Items))
	})
}

func playlistTable(playlists []spotify.SimplePlaylist) func() *table {
	return func() *table {
		tbl := newTable("PLAYLIST", "OWNER", "TRACKS", "ID")
		for _, p := range playlists {
			tbl.add(p.Name, p.Owner.DisplayName, strconv.Itoa(p.Tracks.Total), p.ID)
		}
		return tbl
	}
}

func runBrowseNewReleases(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		albums, err := s.client.Browse().NewReleases(cmd.Context(), browseOptions())
		if err != nil {
			return fmt.Errorf("failed to get new releases: %w", err)
		}

		return render(cmd.OutOrStdout(), albums, func() *table {
			tbl := newTable("ALBUM", "ARTISTS", "TYPE", "RELEASED", "ID")
			for _, a := range albums {
				tbl.add(a.Name, artistNames(a.Artists), a.AlbumType, a.ReleaseDate, a.ID)
			}
			return tbl
		})
	})
}

func runBrowseGenres(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		genres, err := s.client.Browse().GenreSeeds(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get genre seeds: %w", err)
		}

		return render(cmd.OutOrStdout(), genres, func() *table {
			tbl := newTable("GENRE")
			for _, g := range genres {
				tbl.add(g)
			}
			return tbl
		})
	})
}

func runBrowseRecommend(cmd *cobra.Command, args []string) error {
	seeds := spotify.Seeds{
		Artists: refArgs(recommendArtists, recommendByID),
		Tracks:  refArgs(recommendTracks, recommendByID),
		Genres:  recommendGenres,
	}

	return withSession(cmd, func(s *session) error {
		tracks, err := s.client.Browse().Recommendations(cmd.Context(), seeds, &spotify.Options{
			Limit:  browseLimit,
			Market: browseCountry,
		})
		if err != nil {
			return fmt.Errorf("failed to get recommendations: %w", err)
		}

		return render(cmd.OutOrStdout(), tracks, func() *table {
			tbl := newTable("TRACK", "ARTISTS", "LENGTH", "ID")
			for _, t := range tracks {
				tbl.add(t.Name, artistNames(t.Artists), formatDuration(t.DurationMS), t.ID)
			}
			return tbl
		})
	})
}
