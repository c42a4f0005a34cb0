package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/odvcencio/pygit/pkg/object"
)

// IndexEntry records the staged state of a single file. The JSON tags match
// the persisted index layout: a flat map of path to entry.
type IndexEntry struct {
	Path  string      `json:"path"`
	Hash  object.Hash `json:"hash"`
	Mode  string      `json:"mode"`
	Size  int64       `json:"size"`
	MTime int64       `json:"mtime"`
}

// Staging holds the full staging area (index) for a repository.
//
// Recovered is set when the persisted index existed but could not be parsed
// and was reset to empty. The degradation is deliberate (a corrupt index must
// not wedge the repository) but observable, so callers can surface it.
type Staging struct {
	Entries   map[string]*IndexEntry
	Recovered bool
}

// indexPath returns the filesystem path to the staging index file.
func (r *Repo) indexPath() string {
	return filepath.Join(r.PygitDir, "index")
}

// ReadStaging loads the staging area from .pygit/index. A missing file yields
// an empty staging area; so does an unreadable or malformed one, with
// Recovered set.
func (r *Repo) ReadStaging() (*Staging, error) {
	stg := &Staging{Entries: make(map[string]*IndexEntry)}

	data, err := os.ReadFile(r.indexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return stg, nil
		}
		stg.Recovered = true
		return stg, nil
	}

	if err := json.Unmarshal(data, &stg.Entries); err != nil {
		stg.Entries = make(map[string]*IndexEntry)
		stg.Recovered = true
	}
	return stg, nil
}

// WriteStaging serializes the full staging map to .pygit/index. The write is
// a plain whole-file rewrite; concurrent invocations against the same
// repository are unsupported.
func (r *Repo) WriteStaging(s *Staging) error {
	data, err := json.MarshalIndent(s.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("write staging: marshal: %w", err)
	}
	if err := os.WriteFile(r.indexPath(), data, 0o644); err != nil {
		return fmt.Errorf("write staging: %w", err)
	}
	return nil
}

// Add stages the given paths and returns the repo-relative paths staged. A
// path of "." stages every file under the repository root (skipping
// .pygit/). For each file the raw content is written as a blob, and an
// IndexEntry with the blob hash and file metadata is inserted or
// overwritten. The index is persisted after every staged file, so a failure
// partway through a batch keeps the earlier paths staged.
func (r *Repo) Add(paths []string) ([]string, error) {
	stg, err := r.ReadStaging()
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}

	var added []string
	for _, p := range paths {
		if p == "." {
			walked, err := r.addAll(stg)
			if err != nil {
				return nil, fmt.Errorf("add: %w", err)
			}
			added = append(added, walked...)
			continue
		}

		relPath, err := r.repoRelPath(p)
		if err != nil {
			return nil, fmt.Errorf("add: resolve path %q: %w", p, err)
		}
		if err := r.addOne(stg, relPath); err != nil {
			return nil, fmt.Errorf("add: %w", err)
		}
		added = append(added, relPath)
	}
	return added, nil
}

// addAll walks the working tree and stages every regular file.
func (r *Repo) addAll(stg *Staging) ([]string, error) {
	var added []string
	err := filepath.WalkDir(r.RootDir, func(path string, d fs.DirEntry, walkErr error) error {
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
		if err := r.addOne(stg, rel); err != nil {
			return err
		}
		added = append(added, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// addOne stages a single repo-relative file path into stg and persists the
// index immediately.
func (r *Repo) addOne(stg *Staging, relPath string) error {
	absPath := filepath.Join(r.RootDir, filepath.FromSlash(relPath))

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q: %w", relPath, ErrFileNotFound)
		}
		return fmt.Errorf("stat %q: %w", relPath, err)
	}
	if info.IsDir() {
		// Directories are not staged directly.
		return nil
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", relPath, err)
	}

	blobHash, err := r.Store.WriteBlob(&object.Blob{Data: content})
	if err != nil {
		return fmt.Errorf("write blob %q: %w", relPath, err)
	}

	stg.Entries[relPath] = &IndexEntry{
		Path:  relPath,
		Hash:  blobHash,
		Mode:  fmt.Sprintf("%03o", info.Mode().Perm()),
		Size:  info.Size(),
		MTime: info.ModTime().Unix(),
	}
	return r.WriteStaging(stg)
}

// RemoveFile deletes the entry for relPath if present and persists the index.
// Removing an unstaged path is a no-op, not an error.
func (r *Repo) RemoveFile(relPath string) error {
	stg, err := r.ReadStaging()
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	if _, ok := stg.Entries[relPath]; !ok {
		return nil
	}
	delete(stg.Entries, relPath)
	if err := r.WriteStaging(stg); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// StagedEntries returns a snapshot copy of the staging map. The copy does not
// reflect later mutations.
func (r *Repo) StagedEntries() (map[string]*IndexEntry, error) {
	stg, err := r.ReadStaging()
	if err != nil {
		return nil, err
	}
	out := make(map[string]*IndexEntry, len(stg.Entries))
	for p, e := range stg.Entries {
		copied := *e
		out[p] = &copied
	}
	return out, nil
}

// repoRelPath converts a path (absolute, or relative to CWD) into a
// forward-slash path relative to the repository root. A path that cannot be
// anchored inside the repo is treated as already repo-relative.
func (r *Repo) repoRelPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(r.RootDir, p)
		if err != nil {
			return "", fmt.Errorf("cannot make %q relative to %q: %w", p, r.RootDir, err)
		}
		return filepath.ToSlash(rel), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}

	abs := filepath.Join(cwd, p)
	rel, err := filepath.Rel(r.RootDir, abs)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}

	// If the relative path escapes the root, p is outside the repo; treat the
	// original p as already repo-relative.
	if len(rel) >= 2 && rel[:2] == ".." {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}

	return filepath.ToSlash(rel), nil
}
