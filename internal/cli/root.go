package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tradeverifyd/arrakis/internal/config"
	"github.com/tradeverifyd/arrakis/internal/logging"
)

// Global flags
var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  = zerolog.Nop()
)

// NewRootCommand creates the root cobra command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arrakis",
		Short: "Arrakis spice economy CLI",
		Long: `Arrakis command-line interface.

Characters on Arrakis hold energy, solaris and spice. This tool
runs scripted sessions against them:
  - Initializing a configuration file
  - Playing the bundled scenarios
  - Running your own step scripts`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./arrakis.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewRunCommand())

	return rootCmd
}

// initConfig loads configuration from file and sets up logging
func initConfig(cmd *cobra.Command) error {
	path := cfgFile
	if path == "" {
		// Try default locations
		if _, err := os.Stat("arrakis.yaml"); err == nil {
			path = "arrakis.yaml"
		} else if _, err := os.Stat("arrakis.yml"); err == nil {
			path = "arrakis.yml"
		}
	}

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		if err := cfg.ApplyEnv(); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logCfg := cfg.Log
	if verbose {
		logCfg.Level = zerolog.LevelDebugValue
	}

	l, err := logging.New(logCfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}
