package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/spf13/cobra"
)

var (
	searchType   string
	searchLimit  int
	searchOffset int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the Spotify catalog",
	Long: `Search the catalog for artists, albums, tracks or playlists.

The query may use Spotify's field filters, for example
"artist:converge year:2001". Several types can be given at once with
--type album,track; each gets its own page of results.`,
	Example: `  spotweb search deathspell omega
  spotweb search --type album,track jane doe`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchType, "type", "t", "artist", "Comma separated types: artist, album, track, playlist")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Results per type (default 3)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "Index of the first result")
}

func runSearch(cmd *cobra.Command, args []string) error {
	types, err := spotify.ParseSearchType(searchType)
	if err != nil {
		return err
	}

	return withSession(cmd, func(s *session) error {
		res, err := s.client.Search().Search(cmd.Context(), joinArgs(args), types, &spotify.Options{
			Limit:  searchLimit,
			Offset: searchOffset,
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if flagJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return writeSearchResult(cmd.OutOrStdout(), res)
	})
}

// writeSearchResult prints one table per page in the result
func writeSearchResult(w io.Writer, res *spotify.SearchResult) error {
	var tables []*table

	if res.Artists != nil {
		tbl := newTable("ARTIST", "ID", "POPULARITY")
		for _, a := range res.Artists.Items {
			tbl.add(a.Name, a.ID, strconv.Itoa(a.Popularity))
		}
		tables = append(tables, tbl)
	}
	if res.Albums != nil {
		tbl := newTable("ALBUM", "ARTISTS", "RELEASED", "ID")
		for _, a := range res.Albums.Items {
			tbl.add(a.Name, artistNames(a.Artists), a.ReleaseDate, a.ID)
		}
		tables = append(tables, tbl)
	}
	if res.Tracks != nil {
		tbl := newTable("TRACK", "ARTISTS", "ALBUM", "ID")
		for _, t := range res.Tracks.Items {
			tbl.add(t.Name, artistNames(t.Artists), t.Album.Name, t.ID)
		}
		tables = append(tables, tbl)
	}
	if res.Playlists != nil {
		tbl := newTable("PLAYLIST", "OWNER", "TRACKS", "ID")
		for _, p := range res.Playlists.Items {
			tbl.add(p.Name, p.Owner.DisplayName, strconv.Itoa(p.Tracks.Total), p.ID)
		}
		tables = append(tables, tbl)
	}

	for i, tbl := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := tbl.write(w); err != nil {
			return err
		}
	}
	return nil
}
