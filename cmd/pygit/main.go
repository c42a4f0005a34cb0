package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/pygit/pkg/repo"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "pygit",
		Short:         "A minimal content-addressed version control system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newCheckoutCmd())

	if err := root.Execute(); err != nil {
		// Domain errors and unanticipated failures are reported distinctly
		// but both terminate with the same exit code.
		if repo.IsDomain(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "pygit 0.1.0-dev")
		},
	}
}
