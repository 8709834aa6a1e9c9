package cmd

import (
	"fmt"
	"time"

	"github.com/jfmyers9/spotweb/internal/config"
	"github.com/jfmyers9/spotweb/internal/idcache"
	"github.com/spf13/cobra"
)

var cacheMaxAge time.Duration

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or prune the name to id cache",
	Long: `Inspect or prune the on-disk cache of name to id resolutions.

The cache is only used when enabled with --cache or cache.enabled in the
config file.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of cached resolutions",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove resolutions older than --older-than",
	Args:  cobra.NoArgs,
	RunE:  runCachePrune,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cachePruneCmd)

	cachePruneCmd.Flags().DurationVar(&cacheMaxAge, "older-than", 30*24*time.Hour, "Maximum age of kept resolutions")
}

func openCache() (*idcache.Cache, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	cache, err := idcache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open id cache: %w", err)
	}
	return cache, cfg.Cache.Path, nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	cache, path, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = cache.Close() }()

	count, err := cache.Count(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d resolutions\n", path, count)
	return nil
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	cache, _, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = cache.Close() }()

	deleted, err := cache.Cleanup(cmd.Context(), cacheMaxAge)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d resolutions\n", deleted)
	return nil
}
