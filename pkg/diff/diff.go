// Package diff produces unified line diffs between two revisions of a file.
// The sequence-matching itself is delegated to go-difflib; this package only
// decides what to compare and how to label it.
package diff

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// IsBinary reports whether data should be skipped rather than diffed: any
// NUL byte or invalid UTF-8 marks the content as non-text.
func IsBinary(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}

// Unified returns a unified diff between before and after, labeled
// a/<path> and b/<path>. Identical inputs yield an empty string.
func Unified(path string, before, after []byte) (string, error) {
	if bytes.Equal(before, after) {
		return "", nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("diff %q: %w", path, err)
	}
	return text, nil
}
