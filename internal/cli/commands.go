package cli

import (
	"fmt"

	"warehouse/internal/shell"

	"github.com/spf13/cobra"
)

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *options) error {
	svc, logger, err := openInventory(cmd, opts)
	if err != nil {
		return err
	}

	return shell.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run(cmd.Context())
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the seeded products and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openInventory(cmd, opts)
			if err != nil {
				return err
			}

			for _, p := range svc.ListAll(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
			return nil
		},
	}
}

func newValueCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "value",
		Short: "Print the total value of the seeded stock and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openInventory(cmd, opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total value of all products: %.2f\n", svc.TotalValue(cmd.Context()))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show warehouse version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "warehouse %s (%s)\n", version, commit)
			return nil
		},
	}
}
