package Queues

import "github.com/g-m-twostay/go-dsa/Lists"

// LinkedQueue is a Queue over a singly linked list; both ends are O(1).
type LinkedQueue[T any] struct {
	l *Lists.LinkedList[T]
}

// NewLinkedQueue holding vs with vs[0] at the front.
func NewLinkedQueue[T any](vs ...T) *LinkedQueue[T] {
	return &LinkedQueue[T]{Lists.NewLinkedList(vs...)}
}

func (u *LinkedQueue[T]) Enqueue(v T) {
	u.l.AddLast(v)
}

func (u *LinkedQueue[T]) Dequeue() (T, bool) {
	return u.l.RemoveHead()
}

func (u *LinkedQueue[T]) Front() (T, bool) {
	return u.l.GetHead()
}

func (u *LinkedQueue[T]) Back() (T, bool) {
	return u.l.GetTail()
}

func (u *LinkedQueue[T]) IsEmpty() bool {
	return u.l.IsEmpty()
}

func (u *LinkedQueue[T]) Size() int {
	return u.l.Size()
}

func (u *LinkedQueue[T]) ToSlice() []T {
	return u.l.ToSlice()
}
