package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Global flags
var (
	flagClientID     string
	flagClientSecret string
	flagMarket       string
	flagLogLevel     string
	flagJSON         bool
	flagCache        bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotweb",
	Short: "Read-only Spotify Web API client",
	Long: `spotweb queries the Spotify Web API catalog from the command line.

It authenticates as an application with the client credentials flow, so
no user login is needed. Set SPOTIFY_ID and SPOTIFY_SECRET (or the
spotify section of ~/.config/spotweb/config.yaml) to your application's
credentials.

Anywhere an artist, album or track is expected you can give its name;
it is resolved to an id with a search and the first match is used.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagClientID, "client-id", "", "Spotify client id (overrides config and SPOTIFY_ID)")
	flags.StringVar(&flagClientSecret, "client-secret", "", "Spotify client secret (overrides config and SPOTIFY_SECRET)")
	flags.StringVar(&flagMarket, "market", "", "Market code for market-aware requests (overrides config)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&flagJSON, "json", false, "Print raw JSON instead of a table")
	flags.BoolVar(&flagCache, "cache", false, "Cache name to id resolutions on disk (overrides config)")
}
