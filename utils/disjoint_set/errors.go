package disjoint_set

import "errors"

var (
	// ErrNotFound is returned when an element was never registered.
	ErrNotFound = errors.New("element not registered")

	// ErrInvalidHandle is returned for handles that were not produced by the
	// forest they are passed to.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrNotRoot is returned when an operation that needs a class root is
	// given a handle whose node has since been merged under another root.
	ErrNotRoot = errors.New("handle is not a class root")

	// ErrDuplicate is returned when an element is registered twice.
	ErrDuplicate = errors.New("element already registered")

	// ErrCorruptSnapshot is returned when a snapshot does not describe a
	// valid forest.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
