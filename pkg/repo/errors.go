package repo

import (
	"errors"

	"github.com/odvcencio/pygit/pkg/object"
)

// Domain errors. Each operation raises the matching sentinel at the point of
// detection and lets it propagate unhandled to the command boundary; there is
// no local recovery anywhere in the core.
var (
	ErrNotARepository = errors.New("not a pygit repository")
	ErrFileNotFound   = errors.New("file does not exist")
	ErrNothingStaged  = errors.New("no changes added to commit")
	ErrNoCommits      = errors.New("no commits yet")
	ErrBranchExists   = errors.New("branch already exists")
	ErrBranchNotFound = errors.New("branch does not exist")
)

// domainErrors is the closed set the command boundary matches against.
var domainErrors = []error{
	ErrNotARepository,
	ErrFileNotFound,
	ErrNothingStaged,
	ErrNoCommits,
	ErrBranchExists,
	ErrBranchNotFound,
	object.ErrNotFound,
	object.ErrCorrupt,
}

// IsDomain reports whether err wraps one of the known domain errors, as
// opposed to an unanticipated failure.
func IsDomain(err error) bool {
	for _, de := range domainErrors {
		if errors.Is(err, de) {
			return true
		}
	}
	return false
}
