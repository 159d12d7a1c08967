package Queues

// Queue is a FIFO container.
// Receivers that has a bool as the second return value report whether the
// first value is defined; on an empty queue it's (zero value, false).
type Queue[T any] interface {
	// Enqueue v at the back.
	Enqueue(v T)
	// Dequeue removes and returns the front.
	Dequeue() (T, bool)
	Front() (T, bool)
	Back() (T, bool)
	IsEmpty() bool
	Size() int
	// ToSlice returns the values from front to back in a new slice.
	ToSlice() []T
}
