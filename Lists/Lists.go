package Lists

import (
	"errors"
	"fmt"
)

// List is the sequential container shared by LinkedList and DoublyLinkedList.
// Receivers that return a bool as the second value report whether the first
// value is defined; a false means the position doesn't exist and the value is
// the zero value of T.
type List[T any] interface {
	// AddFirst inserts v before the current head.
	AddFirst(v T)
	// AddLast inserts v after the current tail.
	AddLast(v T)
	// AddAt inserts v so that it ends up at index. 0<=index<=Size(), otherwise
	// an *IndexOutOfRangeError is returned and the list isn't modified.
	AddAt(index int, v T) error
	// AddAll appends vs in order.
	AddAll(vs ...T)
	RemoveHead() (T, bool)
	RemoveTail() (T, bool)
	RemoveAt(index int) (T, bool)
	GetHead() (T, bool)
	GetTail() (T, bool)
	GetAt(index int) (T, bool)
	IsEmpty() bool
	Size() int
	// ToSlice returns the values from head to tail in a new slice.
	ToSlice() []T
}

var (
	// ErrOutOfRange is matched by every IndexOutOfRangeError.
	ErrOutOfRange = errors.New("Lists: index out of range")
	// ErrSentinelRemoval is returned when removing the dummy head or tail of a list.
	ErrSentinelRemoval = errors.New("Lists: cannot remove the dummy head or tail")
	// ErrForeignNode is returned when a node is nil, detached, or owned by another list.
	ErrForeignNode = errors.New("Lists: node isn't linked into this list")
)

// IndexOutOfRangeError reports an index outside of [Low, High].
type IndexOutOfRangeError struct {
	Index, Low, High int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Lists: index %d out of range [%d, %d]", e.Index, e.Low, e.High)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
