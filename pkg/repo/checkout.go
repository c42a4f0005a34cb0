package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// Checkout switches HEAD to the named branch. The target must exist as a
// branch ref (ErrBranchNotFound otherwise).
//
// Only the HEAD pointer changes: working-tree files are left exactly as they
// were. Materializing the target tree on switch is intentionally out of
// scope for this system.
func (r *Repo) Checkout(name string) error {
	if _, err := os.Stat(r.branchPath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("checkout %q: %w", name, ErrBranchNotFound)
		}
		return fmt.Errorf("checkout %q: %w", name, err)
	}

	headPath := filepath.Join(r.PygitDir, "HEAD")
	content := "ref: " + headsPrefix + name + "\n"
	if err := os.WriteFile(headPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("checkout %q: update HEAD: %w", name, err)
	}
	return nil
}
