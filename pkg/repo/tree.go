package repo

import (
	"fmt"
	"path"
	"sort"

	"github.com/odvcencio/pygit/pkg/object"
)

// BuildTree converts the staged entries into a single flat tree object,
// writes it to the store, and returns its hash.
//
// Each entry's name is the last path segment only: directory structure is
// not preserved, so staged files from different directories that share a
// basename collide, and the entry whose full path sorts last wins. This is a
// known limitation of the flat tree model, not an accident.
func (r *Repo) BuildTree(s *Staging) (object.Hash, error) {
	// Collapse to basename, deterministically: later full path overwrites.
	paths := make([]string, 0, len(s.Entries))
	for p := range s.Entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	byName := make(map[string]object.TreeEntry, len(paths))
	for _, p := range paths {
		entry := s.Entries[p]
		name := path.Base(p)
		byName[name] = object.TreeEntry{
			Mode: entry.Mode,
			Name: name,
			Hash: entry.Hash,
			Kind: object.KindBlob,
		}
	}

	tr := &object.TreeObj{Entries: make([]object.TreeEntry, 0, len(byName))}
	for _, e := range byName {
		tr.Entries = append(tr.Entries, e)
	}
	sort.Slice(tr.Entries, func(i, j int) bool {
		return tr.Entries[i].Name < tr.Entries[j].Name
	})

	h, err := r.Store.WriteTree(tr)
	if err != nil {
		return "", fmt.Errorf("build tree: %w", err)
	}
	return h, nil
}
