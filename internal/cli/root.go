package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

// options are the flags shared by every command.
type options struct {
	seedSource string
	seedFile   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Manage a small warehouse inventory",
		Long:  "warehouse keeps an in-memory stock of products sold by weight: add and remove products, adjust quantities and prices, and value the stock.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.seedSource, "seed-source", "", "Seed source: none, builtin, file, s3 or postgres (overrides SEED_SOURCE)")
	cmd.PersistentFlags().StringVar(&opts.seedFile, "seed-file", "", "YAML seed catalogue, optionally gzipped (overrides SEED_FILE)")

	cmd.AddCommand(newShellCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newValueCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
