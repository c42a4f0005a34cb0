package object

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Blob
// ---------------------------------------------------------------------------

// MarshalBlob serializes a Blob to raw bytes (identity).
func MarshalBlob(b *Blob) []byte {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out
}

// UnmarshalBlob deserializes raw bytes into a Blob.
func UnmarshalBlob(data []byte) (*Blob, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return &Blob{Data: out}, nil
}

// ---------------------------------------------------------------------------
// TreeObj
// ---------------------------------------------------------------------------

// MarshalTree serializes a TreeObj. Entries are sorted ascending by Name for
// deterministic output. Each entry is one record:
//
//	mode SP name NUL hash NL
func MarshalTree(tr *TreeObj) []byte {
	sorted := make([]TreeEntry, len(tr.Entries))
	copy(sorted, tr.Entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var buf bytes.Buffer
	for _, e := range sorted {
		fmt.Fprintf(&buf, "%s %s\x00%s\n", e.Mode, e.Name, string(e.Hash))
	}
	return buf.Bytes()
}

// UnmarshalTree parses a TreeObj from its serialized form. The serialized
// format carries no kind tag; every entry parses as a blob reference, which
// matches the flat trees the builder produces.
func UnmarshalTree(data []byte) (*TreeObj, error) {
	tr := &TreeObj{}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return tr, nil
	}
	for _, line := range strings.Split(text, "\n") {
		header, hash, ok := strings.Cut(line, "\x00")
		if !ok {
			return nil, fmt.Errorf("unmarshal tree: malformed entry %q", line)
		}
		mode, name, ok := strings.Cut(header, " ")
		if !ok || name == "" {
			return nil, fmt.Errorf("unmarshal tree: malformed entry header %q", header)
		}
		tr.Entries = append(tr.Entries, TreeEntry{
			Mode: mode,
			Name: name,
			Hash: Hash(hash),
			Kind: KindBlob,
		})
	}
	return tr, nil
}

// ---------------------------------------------------------------------------
// CommitObj
// ---------------------------------------------------------------------------

// MarshalCommit serializes a CommitObj:
//
//	tree H
//	parent H            (omitted when there is no parent)
//	author A <e> TS +0000
//	committer A <e> TS +0000
//
//	message
func MarshalCommit(c *CommitObj) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", string(c.TreeHash))
	if c.ParentHash != "" {
		fmt.Fprintf(&buf, "parent %s\n", string(c.ParentHash))
	}
	fmt.Fprintf(&buf, "author %s %d +0000\n", c.Author, c.Timestamp)
	fmt.Fprintf(&buf, "committer %s %d +0000\n", c.Committer, c.Timestamp)
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// UnmarshalCommit parses a CommitObj from its serialized form.
func UnmarshalCommit(data []byte) (*CommitObj, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("unmarshal commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := strings.TrimSpace(string(data[idx+2:]))

	c := &CommitObj{Message: message}
	for _, line := range strings.Split(header, "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal commit: malformed header line %q", line)
		}
		switch key {
		case "tree":
			c.TreeHash = Hash(val)
		case "parent":
			c.ParentHash = Hash(val)
		case "author":
			ident, ts, err := parseIdentLine(val)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: author: %w", err)
			}
			c.Author = ident
			c.Timestamp = ts
		case "committer":
			ident, _, err := parseIdentLine(val)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: committer: %w", err)
			}
			c.Committer = ident
		default:
			return nil, fmt.Errorf("unmarshal commit: unknown header key %q", key)
		}
	}
	return c, nil
}

// parseIdentLine splits "name <email> ts tz" from the right, since the
// identity part may itself contain spaces.
func parseIdentLine(val string) (string, int64, error) {
	tzIdx := strings.LastIndexByte(val, ' ')
	if tzIdx < 0 {
		return "", 0, fmt.Errorf("malformed identity line %q", val)
	}
	tsIdx := strings.LastIndexByte(val[:tzIdx], ' ')
	if tsIdx < 0 {
		return "", 0, fmt.Errorf("malformed identity line %q", val)
	}
	ts, err := strconv.ParseInt(val[tsIdx+1:tzIdx], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad timestamp in %q: %w", val, err)
	}
	return val[:tsIdx], ts, nil
}
