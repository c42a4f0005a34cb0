package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/pygit/pkg/object"
)

const headsPrefix = "refs/heads/"

// Head reads .pygit/HEAD. If the content starts with "ref: ", it returns the
// ref path (e.g. "refs/heads/main"). Otherwise it returns the raw content as
// a detached hash string.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.PygitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimSpace(string(data))

	if strings.HasPrefix(content, "ref: ") {
		return strings.TrimPrefix(content, "ref: "), nil
	}
	return content, nil
}

// CurrentBranch returns the branch name HEAD points at, or "" when HEAD is
// detached.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	if strings.HasPrefix(head, headsPrefix) {
		return strings.TrimPrefix(head, headsPrefix), nil
	}
	return "", nil
}

// branchPath returns the ref file for a branch name.
func (r *Repo) branchPath(name string) string {
	return filepath.Join(r.PygitDir, "refs", "heads", name)
}

// ReadBranch reads the commit hash stored in a branch ref file. A missing
// ref yields ErrBranchNotFound.
func (r *Repo) ReadBranch(name string) (object.Hash, error) {
	data, err := os.ReadFile(r.branchPath(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("branch %q: %w", name, ErrBranchNotFound)
		}
		return "", fmt.Errorf("read branch %q: %w", name, err)
	}
	return object.Hash(strings.TrimSpace(string(data))), nil
}

// writeBranch writes a commit hash to a branch ref file. Ref writes are
// plain whole-file rewrites.
func (r *Repo) writeBranch(name string, h object.Hash) error {
	if err := os.WriteFile(r.branchPath(name), []byte(string(h)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write branch %q: %w", name, err)
	}
	return nil
}

// ResolveHead is the single reference-resolution routine: it dereferences a
// symbolic HEAD through its branch ref (one level only) or passes a detached
// hash through. An unborn branch (symbolic HEAD whose ref file does not
// exist yet) resolves to an empty hash with no error.
func (r *Repo) ResolveHead() (object.Hash, error) {
	head, err := r.Head()
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(head, headsPrefix) {
		h, err := r.ReadBranch(strings.TrimPrefix(head, headsPrefix))
		if errors.Is(err, ErrBranchNotFound) {
			return "", nil
		}
		return h, err
	}

	// Detached HEAD: the value is a hash.
	return object.Hash(head), nil
}

// AdvanceHead moves the current checkout position to the given commit: it
// rewrites the branch ref the symbolic HEAD points at, or rewrites HEAD
// itself when detached.
func (r *Repo) AdvanceHead(h object.Hash) error {
	head, err := r.Head()
	if err != nil {
		return err
	}

	if strings.HasPrefix(head, headsPrefix) {
		return r.writeBranch(strings.TrimPrefix(head, headsPrefix), h)
	}

	headPath := filepath.Join(r.PygitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte(string(h)+"\n"), 0o644); err != nil {
		return fmt.Errorf("update detached HEAD: %w", err)
	}
	return nil
}
