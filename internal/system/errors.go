package system

import "errors"

var (
	// ErrFileSystemConflict means a target path collides with an existing entry
	// of the wrong kind, or a file's parent directory is missing.
	ErrFileSystemConflict = errors.New("filesystem conflict")

	// ErrIOFailure means the underlying storage rejected an operation
	// (permissions, space, invalid path).
	ErrIOFailure = errors.New("i/o failure")
)
