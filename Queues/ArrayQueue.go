package Queues

// ArrayQueue is a Queue backed by a circular slice that grows by half
// when full. Prefer it over LinkedQueue when allocations per element matter.
type ArrayQueue[T any] struct {
	sz, head, tail int
	content        []T
}

// NewArrayQueue with an initial capacity of initCap.
func NewArrayQueue[T any](initCap int) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, 1))}
}

func (u *ArrayQueue[T]) IsEmpty() bool {
	return u.sz == 0
}

// resize the backing slice to newLen>=sz, moving the values to the front.
func (u *ArrayQueue[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

// Shrink the backing slice to fit the current values.
// Time: O(n)
func (u *ArrayQueue[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

// Clear the queue. Capacity is kept.
// Time: O(cap)
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() int {
	return u.sz
}

// Cap of the backing slice.
func (u *ArrayQueue[T]) Cap() int {
	return len(u.content)
}

// Enqueue [Queue.Enqueue]
// Time: amortized O(1)
func (u *ArrayQueue[T]) Enqueue(v T) {
	if u.sz == len(u.content) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[u.tail] = v
	u.tail = (u.tail + 1) % len(u.content)
	u.sz++
}

// Dequeue [Queue.Dequeue]
// Time: O(1)
func (u *ArrayQueue[T]) Dequeue() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	v = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return v, true
}

func (u *ArrayQueue[T]) Front() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.content[u.head], true
}

func (u *ArrayQueue[T]) Back() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.content[(u.tail+len(u.content)-1)%len(u.content)], true
}

func (u *ArrayQueue[T]) ToSlice() []T {
	vs := make([]T, u.sz)
	for i := range u.sz {
		vs[i] = u.content[(u.head+i)%len(u.content)]
	}
	return vs
}
