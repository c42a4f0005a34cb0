package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/odvcencio/pygit/pkg/object"
)

// PygitDirName is the repository metadata directory created at the root.
const PygitDirName = ".pygit"

// Repo is an opened pygit repository. It is an explicit handle: every
// operation goes through a *Repo constructed from a resolved root path,
// never through ambient process state.
type Repo struct {
	RootDir  string        // working directory root
	PygitDir string        // .pygit/ directory
	Store    *object.Store // content-addressed object store
}

func newRepo(root string) *Repo {
	pygitDir := filepath.Join(root, PygitDirName)
	return &Repo{
		RootDir:  root,
		PygitDir: pygitDir,
		Store:    object.NewStore(pygitDir),
	}
}

// IsRepository reports whether path contains a .pygit/ directory.
func IsRepository(path string) bool {
	info, err := os.Stat(filepath.Join(path, PygitDirName))
	return err == nil && info.IsDir()
}

// Init creates a new pygit repository at path: objects/, refs/heads/, a HEAD
// pointing at the main branch, and a config file with the default identity.
// Initializing an existing repository is a no-op that returns the opened repo.
func Init(path string) (*Repo, error) {
	r := newRepo(path)
	if IsRepository(path) {
		return r, nil
	}

	dirs := []string{
		filepath.Join(r.PygitDir, "objects"),
		filepath.Join(r.PygitDir, "refs", "heads"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	headPath := filepath.Join(r.PygitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	if err := r.WriteConfig(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	return r, nil
}

// Open searches upward from path for a .pygit/ directory and opens the
// repository. Returns ErrNotARepository if none is found.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		if IsRepository(cur) {
			return newRepo(cur), nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root without finding .pygit/.
			return nil, fmt.Errorf("open %s: %w (or any parent up to /)", abs, ErrNotARepository)
		}
		cur = parent
	}
}
