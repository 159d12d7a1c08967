package Sets

import (
	"errors"
	"fmt"
)

// DisjointSets partitions the elements 0..Len()-1 into groups.
type DisjointSets interface {
	// Find the representative of x's group.
	Find(x int) (int, error)
	// Union merges the groups of x and y. Returns false if they were already one group.
	Union(x, y int) (bool, error)
	// IsConnected reports whether x and y are in the same group.
	IsConnected(x, y int) (bool, error)
	// Count of groups.
	Count() int
	// Len is the number of elements.
	Len() int
}

var (
	// ErrInvalidSize is returned when constructing with a non-positive size.
	ErrInvalidSize = errors.New("Sets: size must be positive")
	// ErrOutOfRange is matched by every ElementOutOfRangeError.
	ErrOutOfRange = errors.New("Sets: element out of range")
)

// ElementOutOfRangeError reports an element outside of [0, Len).
type ElementOutOfRangeError struct {
	Element, Len int
}

func (e *ElementOutOfRangeError) Error() string {
	return fmt.Sprintf("Sets: element %d out of range [0, %d)", e.Element, e.Len)
}

func (e *ElementOutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
