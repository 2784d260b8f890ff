// Root command and persistent flags for the modelctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/wennys/modelbuddy"
	"github.com/wennys/modelbuddy/internal/logging"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDriver    string
	flagDSN       string
	flagJSON      bool
	flagDebug     bool
)

// Config file values, set by PersistentPreRunE so all subcommands can use
// them. Flags take precedence; see resolveDriver and resolveDSN.
var (
	configDriver string
	configDSN    string
)

var rootCmd = &cobra.Command{
	Use:     "modelctl",
	Short:   "modelctl drives the modelbuddy record engine against a database",
	Version: modelbuddy.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logging.Config{Debug: flagDebug, JSON: flagJSON})

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDriver = cfg.GetString(cfgKeyDriver)
		configDSN = cfg.GetString(cfgKeyDSN)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "database driver: sqlite, mysql, postgres (default: sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "connection string (default: $(CWD)/modelctl.db for sqlite)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log synthesized statements")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
}
