package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tradeverifyd/arrakis/internal/config"
)

type initOptions struct {
	dir    string
	seed   uint64
	format string
	force  bool
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an arrakis configuration file",
		Long: `Create an arrakis configuration file (arrakis.yaml).

The file sets the log level and format, the random seed used
for new characters (0 picks a fresh seed every run) and the
result output format.

Example:
  arrakis init
  arrakis init --dir ./session --seed 10191 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "directory to write the configuration in")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 for nondeterministic)")
	cmd.Flags().StringVar(&opts.format, "format", config.FormatText, "output format: text, yaml, json or cbor")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	if err := config.ValidateOutputFormat(opts.format); err != nil {
		return err
	}

	// Create directory structure
	if err := os.MkdirAll(opts.dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	configPath := filepath.Join(opts.dir, "arrakis.yaml")
	if _, err := os.Stat(configPath); err == nil && !opts.force {
		return fmt.Errorf("configuration already exists (use --force to overwrite)")
	}

	c := config.DefaultConfig()
	c.Random.Seed = opts.seed
	c.Output.Format = opts.format

	if err := config.SaveConfig(c, configPath); err != nil {
		return err
	}

	logger.Debug().Str("path", configPath).Msg("configuration written")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "✓ Arrakis configuration initialized")
	fmt.Fprintf(out, "\nConfiguration:\n")
	fmt.Fprintf(out, "  Config: %s\n", configPath)
	fmt.Fprintf(out, "  Seed:   %d\n", c.Random.Seed)
	fmt.Fprintf(out, "  Output: %s\n", c.Output.Format)
	fmt.Fprintf(out, "\nTo play a scenario, run:\n")
	fmt.Fprintf(out, "  arrakis play operations --config %s\n", configPath)

	return nil
}
