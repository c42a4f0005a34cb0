package object

// Hash is a 40-character hex-encoded SHA-1 digest.
type Hash string

// Short returns the abbreviated form of the hash used in command output.
func (h Hash) Short() string {
	if len(h) > 7 {
		return string(h[:7])
	}
	return string(h)
}

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

// EntryKind distinguishes what a tree entry points at.
type EntryKind string

const (
	KindBlob EntryKind = "blob"
	KindTree EntryKind = "tree"
)

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

// TreeEntry is one entry in a tree object: a single path segment bound to
// the hash of the object it names.
type TreeEntry struct {
	Mode string // permission string, e.g. "644"
	Name string // single path segment, unique within the tree
	Hash Hash
	Kind EntryKind
}

// TreeObj holds a list of tree entries, sorted ascending by Name.
type TreeObj struct {
	Entries []TreeEntry
}

// CommitObj represents a commit pointing to a tree with metadata.
// ParentHash is empty for a root commit; merge commits are out of scope,
// so there is never more than one parent.
type CommitObj struct {
	TreeHash   Hash
	ParentHash Hash
	Author     string // "name <email>"
	Committer  string
	Timestamp  int64 // seconds since epoch
	Message    string
}
