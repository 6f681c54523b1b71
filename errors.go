package ranktree

import (
	"errors"
	"fmt"
)

// ErrInvalidRewind is returned by [Tree.Rewind] when delta is not in
// the range [1, Version()].
var ErrInvalidRewind = errors.New("invalid rewind delta")

// staleWriteError is a fatal, programmer-error condition: a mutation tried
// to write into a node that was not allocated for the current version,
// which would corrupt an older, supposedly immutable version. It is never
// returned to a caller; it is always panicked.
type staleWriteError struct {
	nodeVersion, currentVersion int
}

func (e *staleWriteError) Error() string {
	return fmt.Sprintf("ranktree: write to node created at version %d while current version is %d", e.nodeVersion, e.currentVersion)
}
