package Queues

import "github.com/g-m-twostay/go-dsa/Lists"

// Deque is a double-ended queue over a doubly linked list. Push and Pop work
// on the back, PushLeft and PopLeft on the front. Every operation is O(1).
type Deque[T any] struct {
	l *Lists.DoublyLinkedList[T]
}

// NewDeque holding vs with vs[0] at the front.
func NewDeque[T any](vs ...T) *Deque[T] {
	return &Deque[T]{Lists.NewDoublyLinkedList(vs...)}
}

// Push v to the back.
func (u *Deque[T]) Push(v T) {
	u.l.AddLast(v)
}

// PushLeft pushes v to the front.
func (u *Deque[T]) PushLeft(v T) {
	u.l.AddFirst(v)
}

// Pop removes the back.
func (u *Deque[T]) Pop() (T, bool) {
	return u.l.RemoveTail()
}

// PopLeft removes the front.
func (u *Deque[T]) PopLeft() (T, bool) {
	return u.l.RemoveHead()
}

func (u *Deque[T]) Front() (T, bool) {
	return u.l.GetHead()
}

func (u *Deque[T]) Back() (T, bool) {
	return u.l.GetTail()
}

func (u *Deque[T]) IsEmpty() bool {
	return u.l.IsEmpty()
}

func (u *Deque[T]) Size() int {
	return u.l.Size()
}

// ToSlice from front to back.
func (u *Deque[T]) ToSlice() []T {
	return u.l.ToSlice()
}
