package repo

import (
	"fmt"
	"time"

	"github.com/odvcencio/pygit/pkg/object"
)

// Commit creates a new commit from the current staging area.
//
//  1. Read staging; refuse when empty
//  2. Build the tree from staged entries
//  3. Resolve HEAD to get the parent commit hash (if any)
//  4. Create the CommitObj with configured identity and current timestamp
//  5. Write the commit to the store
//  6. Advance the current branch ref (or detached HEAD) to the new hash
func (r *Repo) Commit(message string) (object.Hash, error) {
	stg, err := r.ReadStaging()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	if len(stg.Entries) == 0 {
		return "", fmt.Errorf("commit: %w", ErrNothingStaged)
	}

	treeHash, err := r.BuildTree(stg)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	parentHash, err := r.ResolveHead()
	if err != nil {
		return "", fmt.Errorf("commit: resolve HEAD: %w", err)
	}

	cfg, err := r.ReadConfig()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	ident := cfg.Author()

	commitObj := &object.CommitObj{
		TreeHash:   treeHash,
		ParentHash: parentHash,
		Author:     ident,
		Committer:  ident,
		Timestamp:  time.Now().Unix(),
		Message:    message,
	}

	commitHash, err := r.Store.WriteCommit(commitObj)
	if err != nil {
		return "", fmt.Errorf("commit: write commit: %w", err)
	}

	if err := r.AdvanceHead(commitHash); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return commitHash, nil
}

// LogEntry pairs a commit with its own hash.
type LogEntry struct {
	Hash   object.Hash
	Commit *object.CommitObj
}

// Log walks the commit history starting from the resolved HEAD, following
// parent links, returning up to limit entries newest first. The walk stops
// at the root commit (no parent) or at limit, whichever comes first. A
// repository with no commits yields an empty slice.
func (r *Repo) Log(limit int) ([]LogEntry, error) {
	current, err := r.ResolveHead()
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	var entries []LogEntry
	for current != "" && len(entries) < limit {
		c, err := r.Store.ReadCommit(current)
		if err != nil {
			return nil, fmt.Errorf("log: read commit %s: %w", current, err)
		}
		entries = append(entries, LogEntry{Hash: current, Commit: c})
		current = c.ParentHash
	}

	return entries, nil
}
