package Queues

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// PriorityQueue is a binary heap stored in level order. The comparator
// decides what goes first: cmp(a, b)<=0 means a may sit above b, so
// func(a, b int) int { return a - b } is a min heap.
// The zero value isn't usable, create it with NewPriorityQueue.
type PriorityQueue[T any] struct {
	vs  []T
	cmp func(a, b T) int
}

// NewPriorityQueue heapifies a copy of vs bottom-up.
// Time: O(len(vs))
func NewPriorityQueue[T any](cmp func(a, b T) int, vs ...T) *PriorityQueue[T] {
	u := &PriorityQueue[T]{append(make([]T, 0, len(vs)), vs...), cmp}
	for i := len(u.vs)/2 - 1; i >= 0; i-- {
		u.down(i)
	}
	return u
}

// NewOrderedPriorityQueue is a min heap under the natural order of T.
func NewOrderedPriorityQueue[T constraints.Ordered](vs ...T) *PriorityQueue[T] {
	return NewPriorityQueue(cmp.Compare[T], vs...)
}

func (u *PriorityQueue[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if u.cmp(u.vs[p], u.vs[i]) <= 0 {
			return
		}
		u.vs[p], u.vs[i] = u.vs[i], u.vs[p]
		i = p
	}
}

func (u *PriorityQueue[T]) down(i int) {
	for n := len(u.vs); ; {
		c := 2*i + 1
		if c >= n {
			return
		}
		if r := c + 1; r < n && u.cmp(u.vs[r], u.vs[c]) < 0 {
			c = r
		}
		if u.cmp(u.vs[i], u.vs[c]) <= 0 {
			return
		}
		u.vs[i], u.vs[c] = u.vs[c], u.vs[i]
		i = c
	}
}

// Add v to the heap.
// Time: O(log n)
func (u *PriorityQueue[T]) Add(v T) {
	u.vs = append(u.vs, v)
	u.up(len(u.vs) - 1)
}

// Remove the top of the heap.
// Time: O(log n)
func (u *PriorityQueue[T]) Remove() (v T, ok bool) {
	n := len(u.vs) - 1
	if n < 0 {
		return
	}
	v = u.vs[0]
	u.vs[0] = u.vs[n]
	u.vs[n] = *new(T)
	u.vs = u.vs[:n]
	u.down(0)
	return v, true
}

// Top returns the value Remove would return without removing it.
// Time: O(1)
func (u *PriorityQueue[T]) Top() (v T, ok bool) {
	if len(u.vs) == 0 {
		return
	}
	return u.vs[0], true
}

func (u *PriorityQueue[T]) IsEmpty() bool {
	return len(u.vs) == 0
}

func (u *PriorityQueue[T]) Size() int {
	return len(u.vs)
}

// Clear the heap, keeping the capacity.
func (u *PriorityQueue[T]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
}
