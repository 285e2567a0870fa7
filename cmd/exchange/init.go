package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Init resolves the configuration directory, writes a default
config.yaml if none exists, and reports the effective settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config was loaded (and the default file written) by the
		// persistent pre-run hook.
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]any{
				"configDir": configDir,
				"config":    appConfig,
			})
		}
		fmt.Printf("Configuration directory: %s\n", configDir)
		fmt.Printf("Backend: %s\n", appConfig.Backend)
		if appConfig.DataDir != "" {
			fmt.Printf("Data directory: %s\n", appConfig.DataDir)
		}
		return nil
	},
}
