package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/odvcencio/pygit/pkg/object"
)

// StatusReport summarizes the repository state for display.
type StatusReport struct {
	Branch    string   // current branch name, "" when detached
	Staged    []string // paths with a staging entry
	Modified  []string // staged paths whose working copy hashes differently
	Untracked []string // on-disk paths with no staging entry
	Recovered bool     // the persisted index was corrupt and reset to empty
}

// Clean reports whether there is nothing to commit and the working tree
// matches the staged state.
func (s *StatusReport) Clean() bool {
	return len(s.Staged) == 0 && len(s.Modified) == 0 && len(s.Untracked) == 0
}

// Status classifies every working-tree file against the staging index: a
// staged path whose fresh content hash differs from the staged hash is
// modified; a path with no staging entry is untracked. All lists come back
// sorted.
func (r *Repo) Status() (*StatusReport, error) {
	stg, err := r.ReadStaging()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	report := &StatusReport{Branch: branch, Recovered: stg.Recovered}
	for p := range stg.Entries {
		report.Staged = append(report.Staged, p)
	}

	err = filepath.WalkDir(r.RootDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if d.Name() == PygitDirName {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(r.RootDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		entry, staged := stg.Entries[rel]
		if !staged {
			report.Untracked = append(report.Untracked, rel)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", rel, err)
		}
		if object.HashObject(object.TypeBlob, content) != entry.Hash {
			report.Modified = append(report.Modified, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("status: walk: %w", err)
	}

	sort.Strings(report.Staged)
	sort.Strings(report.Modified)
	sort.Strings(report.Untracked)
	return report, nil
}
