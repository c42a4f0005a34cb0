package object

import (
	"strings"
	"testing"
)

func TestMarshalTreeSortedByName(t *testing.T) {
	tr := &TreeObj{Entries: []TreeEntry{
		{Mode: "644", Name: "zebra.txt", Hash: "1111111111111111111111111111111111111111", Kind: KindBlob},
		{Mode: "644", Name: "apple.txt", Hash: "2222222222222222222222222222222222222222", Kind: KindBlob},
	}}

	data := string(MarshalTree(tr))
	want := "644 apple.txt\x002222222222222222222222222222222222222222\n" +
		"644 zebra.txt\x001111111111111111111111111111111111111111\n"
	if data != want {
		t.Errorf("MarshalTree:\ngot  %q\nwant %q", data, want)
	}
}

func TestTreeRoundTrip(t *testing.T) {
	tr := &TreeObj{Entries: []TreeEntry{
		{Mode: "755", Name: "run.sh", Hash: "3333333333333333333333333333333333333333", Kind: KindBlob},
		{Mode: "644", Name: "a.txt", Hash: "4444444444444444444444444444444444444444", Kind: KindBlob},
	}}

	out, err := UnmarshalTree(MarshalTree(tr))
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(out.Entries))
	}
	// Round trip comes back name-sorted.
	if out.Entries[0].Name != "a.txt" || out.Entries[1].Name != "run.sh" {
		t.Errorf("names: got %q, %q", out.Entries[0].Name, out.Entries[1].Name)
	}
	if out.Entries[1].Mode != "755" {
		t.Errorf("mode: got %q, want 755", out.Entries[1].Mode)
	}
	if out.Entries[0].Kind != KindBlob {
		t.Errorf("kind: got %q, want blob", out.Entries[0].Kind)
	}
}

func TestUnmarshalTreeEmpty(t *testing.T) {
	tr, err := UnmarshalTree(nil)
	if err != nil {
		t.Fatalf("UnmarshalTree(nil): %v", err)
	}
	if len(tr.Entries) != 0 {
		t.Errorf("entries: got %d, want 0", len(tr.Entries))
	}
}

func TestUnmarshalTreeMalformed(t *testing.T) {
	if _, err := UnmarshalTree([]byte("no separators\n")); err == nil {
		t.Error("expected error for entry without NUL")
	}
}

func TestMarshalCommitFormat(t *testing.T) {
	c := &CommitObj{
		TreeHash:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		ParentHash: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Author:     "alice smith <alice@example.com>",
		Committer:  "alice smith <alice@example.com>",
		Timestamp:  1700000000,
		Message:    "add feature",
	}

	want := "tree aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
		"parent bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n" +
		"author alice smith <alice@example.com> 1700000000 +0000\n" +
		"committer alice smith <alice@example.com> 1700000000 +0000\n" +
		"\n" +
		"add feature\n"
	if got := string(MarshalCommit(c)); got != want {
		t.Errorf("MarshalCommit:\ngot  %q\nwant %q", got, want)
	}
}

func TestMarshalCommitOmitsParentForRoot(t *testing.T) {
	c := &CommitObj{
		TreeHash:  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Author:    "a <a@b>",
		Committer: "a <a@b>",
		Timestamp: 1,
		Message:   "root",
	}
	if strings.Contains(string(MarshalCommit(c)), "parent") {
		t.Error("root commit serialization must not contain a parent line")
	}
}

func TestCommitRoundTrip(t *testing.T) {
	c := &CommitObj{
		TreeHash:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		ParentHash: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Author:     "name with spaces <x@y.z>",
		Committer:  "name with spaces <x@y.z>",
		Timestamp:  1700000000,
		Message:    "multi\nline\nmessage",
	}

	out, err := UnmarshalCommit(MarshalCommit(c))
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if out.TreeHash != c.TreeHash {
		t.Errorf("tree: got %s", out.TreeHash)
	}
	if out.ParentHash != c.ParentHash {
		t.Errorf("parent: got %s", out.ParentHash)
	}
	if out.Author != c.Author {
		t.Errorf("author: got %q, want %q", out.Author, c.Author)
	}
	if out.Committer != c.Committer {
		t.Errorf("committer: got %q", out.Committer)
	}
	if out.Timestamp != c.Timestamp {
		t.Errorf("timestamp: got %d", out.Timestamp)
	}
	if out.Message != c.Message {
		t.Errorf("message: got %q, want %q", out.Message, c.Message)
	}
}

func TestCommitRoundTripNoParent(t *testing.T) {
	c := &CommitObj{
		TreeHash:  "cccccccccccccccccccccccccccccccccccccccc",
		Author:    "a <a@b>",
		Committer: "a <a@b>",
		Timestamp: 42,
		Message:   "root",
	}
	out, err := UnmarshalCommit(MarshalCommit(c))
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if out.ParentHash != "" {
		t.Errorf("parent: got %q, want empty", out.ParentHash)
	}
}

func TestUnmarshalCommitMissingSeparator(t *testing.T) {
	if _, err := UnmarshalCommit([]byte("tree abc\n")); err == nil {
		t.Error("expected error for commit without header/message separator")
	}
}
