package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jfmyers9/spotweb/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the spotweb configuration file",
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current settings to the config file",
	Long: `Save the effective settings to ~/.config/spotweb/config.yaml.

Values come from the existing config file and environment, overridden by
any global flags given, so this is how credentials are stored once:

  spotweb config save --client-id <id> --client-secret <secret>`,
	Args: cobra.NoArgs,
	RunE: runConfigSave,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigDir())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSaveCmd, configPathCmd)
}

func runConfigSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := filepath.Join(config.GetConfigDir(), "config.yaml")
	fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", configPath)
	return nil
}
