package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/odvcencio/pygit/pkg/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create an empty pygit repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("create directory: %w", err)
			}

			existed := repo.IsRepository(abs)
			r, err := repo.Init(abs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if existed {
				fmt.Fprintf(out, "Repository already exists at %s\n", r.RootDir)
				return nil
			}
			fmt.Fprintf(out, "Initialized empty pygit repository in %s\n", r.PygitDir)
			return nil
		},
	}
}
