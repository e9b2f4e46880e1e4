package cli

import (
	"github.com/spf13/cobra"
	"github.com/tradeverifyd/arrakis/internal/script"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	opts := &sessionOptions{}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a step script",
		Long: `Run a YAML step script.

A script declares characters by handle and a list of steps.
Each step names an actor and one action:
  mine, eat, sell   - optional amount, divisor or excess
  clone, alias      - target handle
  set               - field and value
  show              - record the current state

A step with expect_error passes only when it fails with a
message containing that text.

Example:
  arrakis run session.yaml
  arrakis run session.yaml --seed 10191 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			return opts.execute(cmd, s)
		},
	}

	opts.bind(cmd)

	return cmd
}
