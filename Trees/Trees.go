package Trees

import (
	"errors"
	"fmt"
)

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Duplicates are allowed; every occurrence counts towards Size and ranks.
type Tree[T any] interface {
	//Remove one occurrence of v from the Tree. Returning true if something was removed.
	Remove(v T) bool
	//Min element of the tree.
	Min() (T, bool)
	//Max element of the tree.
	Max() (T, bool)
	//KthSmallest finds the k-th smallest element, 1<=k<=Size().
	KthSmallest(k int) (T, bool)
	//KthLargest finds the k-th largest element, 1<=k<=Size().
	KthLargest(k int) (T, bool)
	//LowerBound returns the smallest element not less than v.
	LowerBound(v T) (T, bool)
	//UpperBound returns the greatest element not greater than v.
	UpperBound(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//InOrder calls f on every element in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(T) bool)
}

// ErrOutOfRange is matched by every IndexOutOfRangeError.
var ErrOutOfRange = errors.New("Trees: index out of range")

// IndexOutOfRangeError reports an index outside of [0, Size).
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Trees: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
