package partition

import "errors"

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("partitioner is closed")

	// ErrEmptyElement is returned for empty or whitespace-only elements.
	ErrEmptyElement = errors.New("element is empty")
)

// Metrics provides statistics about the partitioner's state
type Metrics struct {
	// Elements is the number of registered elements
	Elements int

	// Classes is the number of disjoint classes
	Classes int

	// LargestClass is the size of the biggest class, 0 when empty
	LargestClass int

	// Finds counts representative lookups, including those made by Union and Connected
	Finds int

	// Unions counts Union calls that passed validation
	Unions int

	// Merges counts Union calls that joined two distinct classes
	Merges int
}
