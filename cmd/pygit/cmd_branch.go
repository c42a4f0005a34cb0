package main

import (
	"fmt"

	"github.com/odvcencio/pygit/pkg/repo"
	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	var listAll bool

	cmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "List or create branches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			// Create mode. A name wins over -a.
			if len(args) == 1 {
				name := args[0]
				if err := r.CreateBranch(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created branch %s\n", name)
				return nil
			}

			// List mode.
			branches, err := r.ListBranches()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(branches) == 0 {
				fmt.Fprintln(out, "No branches found")
				return nil
			}
			for _, b := range branches {
				if b.Current {
					fmt.Fprintf(out, "* %s\n", b.Name)
				} else {
					fmt.Fprintf(out, "  %s\n", b.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listAll, "all", "a", false, "list branches")

	return cmd
}
