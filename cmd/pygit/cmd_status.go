package main

import (
	"fmt"

	"github.com/odvcencio/pygit/pkg/repo"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			report, err := r.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			branch := report.Branch
			if branch == "" {
				branch = "HEAD"
			}
			fmt.Fprintf(out, "On branch %s\n", branch)

			if report.Recovered {
				fmt.Fprintln(out, "warning: staging index was unreadable and has been reset")
			}

			if len(report.Staged) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Changes to be committed:")
				for _, p := range report.Staged {
					fmt.Fprintf(out, "  new file:   %s\n", p)
				}
			}

			if len(report.Modified) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Changes not staged for commit:")
				for _, p := range report.Modified {
					fmt.Fprintf(out, "  modified:   %s\n", p)
				}
			}

			if len(report.Untracked) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Untracked files:")
				for _, p := range report.Untracked {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}

			if report.Clean() {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "nothing to commit, working tree clean")
			}
			return nil
		},
	}
}
