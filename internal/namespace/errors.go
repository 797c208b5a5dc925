package namespace

import "errors"

var (
	// ErrExists signals a name collision within a single parent folder.
	ErrExists = errors.New("name already exists")

	// ErrNotFound signals a missing folder, file, or path segment.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPath signals a malformed path or one that does not start at
	// the declared root.
	ErrInvalidPath = errors.New("invalid path")
)
