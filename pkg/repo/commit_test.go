package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/pygit/pkg/object"
)

func TestCommitNothingStaged(t *testing.T) {
	r := tempRepo(t)
	_, err := r.Commit("empty")
	if !errors.Is(err, ErrNothingStaged) {
		t.Errorf("expected ErrNothingStaged, got %v", err)
	}
}

func TestCommitAdvancesBranchRef(t *testing.T) {
	r := tempRepo(t)
	stage(t, r, "a.txt", "hello")

	h, err := r.Commit("first")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	refData, err := os.ReadFile(filepath.Join(r.PygitDir, "refs", "heads", "main"))
	if err != nil {
		t.Fatalf("read main ref: %v", err)
	}
	if string(refData) != string(h)+"\n" {
		t.Errorf("ref content: got %q, want %q", refData, string(h)+"\n")
	}

	c, err := r.Store.ReadCommit(h)
	if err != nil {
		t.Fatalf("ReadCommit: %v", err)
	}
	if c.ParentHash != "" {
		t.Errorf("root commit parent: got %q, want empty", c.ParentHash)
	}
	if c.Message != "first" {
		t.Errorf("message: got %q", c.Message)
	}
	if c.Author == "" || c.Author != c.Committer {
		t.Errorf("identity: author %q, committer %q", c.Author, c.Committer)
	}

	// The commit's tree exists and holds the staged file.
	tr, err := r.Store.ReadTree(c.TreeHash)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	if len(tr.Entries) != 1 || tr.Entries[0].Name != "a.txt" {
		t.Errorf("tree entries: got %+v", tr.Entries)
	}
}

func TestCommitChainsParents(t *testing.T) {
	r := tempRepo(t)
	stage(t, r, "a.txt", "one")
	h1, err := r.Commit("first")
	if err != nil {
		t.Fatalf("Commit 1: %v", err)
	}

	stage(t, r, "a.txt", "two")
	h2, err := r.Commit("second")
	if err != nil {
		t.Fatalf("Commit 2: %v", err)
	}

	c2, err := r.Store.ReadCommit(h2)
	if err != nil {
		t.Fatalf("ReadCommit: %v", err)
	}
	if c2.ParentHash != h1 {
		t.Errorf("parent: got %s, want %s", c2.ParentHash, h1)
	}
}

func TestCommitDetachedHeadRewritesHead(t *testing.T) {
	r := tempRepo(t)
	stage(t, r, "a.txt", "one")
	h1, err := r.Commit("first")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// Detach HEAD onto the commit hash directly.
	headPath := filepath.Join(r.PygitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte(string(h1)+"\n"), 0o644); err != nil {
		t.Fatalf("detach HEAD: %v", err)
	}

	stage(t, r, "a.txt", "two")
	h2, err := r.Commit("second")
	if err != nil {
		t.Fatalf("Commit detached: %v", err)
	}

	head, err := os.ReadFile(headPath)
	if err != nil {
		t.Fatalf("read HEAD: %v", err)
	}
	if string(head) != string(h2)+"\n" {
		t.Errorf("detached HEAD: got %q, want %q", head, string(h2)+"\n")
	}

	// The branch ref must not have moved.
	mainHash, err := r.ReadBranch("main")
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	if mainHash != h1 {
		t.Errorf("main moved while detached: got %s, want %s", mainHash, h1)
	}
}

func TestLogNewestFirstWithLimit(t *testing.T) {
	r := tempRepo(t)

	var hashes []object.Hash
	for _, msg := range []string{"first", "second", "third"} {
		stage(t, r, "a.txt", msg)
		h, err := r.Commit(msg)
		if err != nil {
			t.Fatalf("Commit %q: %v", msg, err)
		}
		hashes = append(hashes, h)
	}

	entries, err := r.Log(10)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	for i, want := range []string{"third", "second", "first"} {
		if entries[i].Commit.Message != want {
			t.Errorf("entry %d: got %q, want %q", i, entries[i].Commit.Message, want)
		}
	}
	if entries[0].Hash != hashes[2] {
		t.Errorf("newest hash: got %s, want %s", entries[0].Hash, hashes[2])
	}

	limited, err := r.Log(1)
	if err != nil {
		t.Fatalf("Log(1): %v", err)
	}
	if len(limited) != 1 || limited[0].Commit.Message != "third" {
		t.Errorf("Log(1): got %d entries, first %q", len(limited), limited[0].Commit.Message)
	}
}

func TestLogEmptyRepo(t *testing.T) {
	r := tempRepo(t)
	entries, err := r.Log(10)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries: got %d, want 0", len(entries))
	}
}

func TestResolveHeadUnbornBranch(t *testing.T) {
	r := tempRepo(t)
	h, err := r.ResolveHead()
	if err != nil {
		t.Fatalf("ResolveHead: %v", err)
	}
	if h != "" {
		t.Errorf("unborn branch: got %q, want empty hash", h)
	}
}

func TestResolveHeadDetached(t *testing.T) {
	r := tempRepo(t)
	stage(t, r, "a.txt", "x")
	h1, err := r.Commit("first")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	headPath := filepath.Join(r.PygitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte(string(h1)+"\n"), 0o644); err != nil {
		t.Fatalf("detach HEAD: %v", err)
	}

	got, err := r.ResolveHead()
	if err != nil {
		t.Fatalf("ResolveHead: %v", err)
	}
	if got != h1 {
		t.Errorf("detached resolve: got %s, want %s", got, h1)
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "" {
		t.Errorf("detached CurrentBranch: got %q, want empty", branch)
	}
}
