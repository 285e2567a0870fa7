// Root command for the exchange CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/internal/paths"
	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
	flagVerbose   bool
)

// appConfig holds the effective configuration, loaded by PersistentPreRunE
// so every subcommand can use it.
var appConfig types.Config

var rootCmd = &cobra.Command{
	Use:     "exchange",
	Short:   "Exchange is a peer-to-peer campus catalog",
	Long: `Exchange lists, searches, and manages campus listings and requests.
All data lives in memory and is reset on every run; the CLI starts from the
built-in demo dataset.`,
	Version:       catalog.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		appConfig, err = buildConfig(v)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the sqlite backend (default: in-memory)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "store backend: memory or sqlite (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log operator diagnostics")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(respondCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > EXCHANGE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
