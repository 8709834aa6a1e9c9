package cmd

import (
	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <artist|album|track|playlist> <name>...",
	Short: "Resolve names to Spotify ids",
	Long: `Resolve one or more names to Spotify ids.

Each name is searched for separately and the first result is used, so
the id printed is the one other commands would use for that name. Quote
names that contain spaces.`,
	Example: `  spotweb resolve artist converge botch
  spotweb resolve album "jane doe"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	kind, err := spotify.ParseSearchType(args[0])
	if err != nil {
		return err
	}
	names := args[1:]

	return withSession(cmd, func(s *session) error {
		type resolution struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		}

		resolved := make([]resolution, 0, len(names))
		for _, name := range names {
			id, err := s.client.ResolveID(cmd.Context(), name, kind)
			if err != nil {
				return err
			}
			s.log.Debug().Str("name", name).Str("id", id).Msg("Resolved")
			resolved = append(resolved, resolution{Name: name, ID: id})
		}

		return render(cmd.OutOrStdout(), resolved, func() *table {
			tbl := newTable("NAME", "ID")
			for _, r := range resolved {
				tbl.add(r.Name, r.ID)
			}
			return tbl
		})
	})
}
