package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/odvcencio/pygit/pkg/diff"
	"github.com/odvcencio/pygit/pkg/repo"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [path]",
		Short: "Show changes between the working tree and the staging area",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			staged, err := r.StagedEntries()
			if err != nil {
				return err
			}

			var paths []string
			if len(args) == 1 {
				paths = []string{filepath.ToSlash(args[0])}
			} else {
				paths, err = workingTreeFiles(r)
				if err != nil {
					return err
				}
			}

			var diffs []string
			for _, p := range paths {
				entry, inStaging := staged[p]
				if !inStaging {
					continue
				}

				workData, err := os.ReadFile(filepath.Join(r.RootDir, filepath.FromSlash(p)))
				if err != nil {
					if os.IsNotExist(err) {
						continue
					}
					return fmt.Errorf("diff: read %q: %w", p, err)
				}
				if diff.IsBinary(workData) {
					continue
				}

				blob, err := r.Store.ReadBlob(entry.Hash)
				if err != nil {
					return fmt.Errorf("diff: read staged blob for %q: %w", p, err)
				}
				if diff.IsBinary(blob.Data) {
					continue
				}

				text, err := diff.Unified(p, blob.Data, workData)
				if err != nil {
					return err
				}
				if text != "" {
					diffs = append(diffs, text)
				}
			}

			out := cmd.OutOrStdout()
			if len(diffs) == 0 {
				fmt.Fprintln(out, "No differences found")
				return nil
			}
			fmt.Fprint(out, strings.Join(diffs, "\n"))
			return nil
		},
	}
}

// workingTreeFiles returns every file under the repo root (skipping .pygit/),
// repo-relative with forward slashes, sorted.
func workingTreeFiles(r *repo.Repo) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(r.RootDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if d.Name() == repo.PygitDirName {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(r.RootDir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("diff: walk: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
