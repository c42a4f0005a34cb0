package repo

import (
	"fmt"
	"os"
	"sort"

	"github.com/odvcencio/pygit/pkg/object"
)

// BranchInfo describes one branch in a listing.
type BranchInfo struct {
	Name    string
	Hash    object.Hash
	Current bool
}

// CreateBranch creates a new branch pointing at the current HEAD commit.
// Requires at least one commit (ErrNoCommits) and a free branch name
// (ErrBranchExists).
func (r *Repo) CreateBranch(name string) error {
	head, err := r.ResolveHead()
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	if head == "" {
		return fmt.Errorf("create branch %q: %w", name, ErrNoCommits)
	}

	if _, err := os.Stat(r.branchPath(name)); err == nil {
		return fmt.Errorf("create branch %q: %w", name, ErrBranchExists)
	}

	if err := r.writeBranch(name, head); err != nil {
		return fmt.Errorf("create branch %q: %w", name, err)
	}
	return nil
}

// ListBranches reads .pygit/refs/heads/ and returns the branches sorted
// lexicographically, with the current one marked.
func (r *Repo) ListBranches() ([]BranchInfo, error) {
	headsDir := r.branchPath("")

	dirEntries, err := os.ReadDir(headsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}

	current, err := r.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	var branches []BranchInfo
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		h, err := r.ReadBranch(e.Name())
		if err != nil {
			return nil, fmt.Errorf("list branches: %w", err)
		}
		branches = append(branches, BranchInfo{
			Name:    e.Name(),
			Hash:    h,
			Current: e.Name() == current,
		})
	}
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}
