package Lists

// A node in the LinkedList.
// The head of every LinkedList is a dummy node whose v is meaningless.
type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedList is a singly linked list with a dummy head and a tail pointer.
// Adding at either end is O(1); removing the tail is O(n) because the node
// before the tail has to be found from the head.
// The zero value isn't usable, create it with NewLinkedList.
type LinkedList[T any] struct {
	head *node[T] // dummy
	tail *node[T] // == head when empty
	sz   int
}

// NewLinkedList returns a list holding vs in order.
// Time: O(len(vs))
func NewLinkedList[T any](vs ...T) *LinkedList[T] {
	h := new(node[T])
	u := &LinkedList[T]{head: h, tail: h}
	u.AddAll(vs...)
	return u
}

// AddFirst [List.AddFirst]
// Time: O(1)
func (u *LinkedList[T]) AddFirst(v T) {
	n := &node[T]{v, u.head.nx}
	u.head.nx = n
	if u.tail == u.head {
		u.tail = n
	}
	u.sz++
}

// AddLast [List.AddLast]
// Time: O(1)
func (u *LinkedList[T]) AddLast(v T) {
	n := &node[T]{v: v}
	u.tail.nx = n
	u.tail = n
	u.sz++
}

// AddAt [List.AddAt]. Adding at Size() appends.
// Time: O(index)
func (u *LinkedList[T]) AddAt(index int, v T) error {
	if index < 0 || index > u.sz {
		return &IndexOutOfRangeError{index, 0, u.sz}
	}
	prev := u.nodeAt(index - 1)
	n := &node[T]{v, prev.nx}
	prev.nx = n
	if prev == u.tail {
		u.tail = n
	}
	u.sz++
	return nil
}

// AddAll [List.AddAll]
// Time: O(len(vs))
func (u *LinkedList[T]) AddAll(vs ...T) {
	t := u.tail
	for _, v := range vs {
		t.nx = &node[T]{v: v}
		t = t.nx
	}
	u.tail = t
	u.sz += len(vs)
}

// RemoveHead [List.RemoveHead]
// Time: O(1)
func (u *LinkedList[T]) RemoveHead() (T, bool) {
	return u.RemoveAt(0)
}

// RemoveTail [List.RemoveTail]
// Time: O(n)
func (u *LinkedList[T]) RemoveTail() (T, bool) {
	return u.RemoveAt(u.sz - 1)
}

// RemoveAt [List.RemoveAt]
// Time: O(index)
func (u *LinkedList[T]) RemoveAt(index int) (v T, ok bool) {
	if index < 0 || index >= u.sz {
		return
	}
	prev := u.nodeAt(index - 1)
	rm := prev.nx
	prev.nx = rm.nx
	if rm == u.tail {
		u.tail = prev
	}
	rm.nx = nil
	u.sz--
	return rm.v, true
}

// GetHead [List.GetHead]
// Time: O(1)
func (u *LinkedList[T]) GetHead() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.head.nx.v, true
}

// GetTail [List.GetTail]
// Time: O(1)
func (u *LinkedList[T]) GetTail() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.tail.v, true
}

// GetAt [List.GetAt]
// Time: O(index)
func (u *LinkedList[T]) GetAt(index int) (v T, ok bool) {
	if index < 0 || index >= u.sz {
		return
	}
	return u.nodeAt(index).v, true
}

// IsEmpty [List.IsEmpty]
func (u *LinkedList[T]) IsEmpty() bool {
	return u.sz == 0
}

// Size [List.Size]
func (u *LinkedList[T]) Size() int {
	return u.sz
}

// ToSlice [List.ToSlice]
// Time: O(n)
func (u *LinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, u.sz)
	for n := u.head.nx; n != nil; n = n.nx {
		vs = append(vs, n.v)
	}
	return vs
}

// Clone returns a new list with the same values. Values are copied, nodes
// aren't shared.
// Time: O(n)
func (u *LinkedList[T]) Clone() *LinkedList[T] {
	return NewLinkedList(u.ToSlice()...)
}

// nodeAt returns the node at index, -1 being the dummy head. The caller
// guarantees -1<=index<sz.
func (u *LinkedList[T]) nodeAt(index int) *node[T] {
	n := u.head
	for i := -1; i < index; i++ {
		n = n.nx
	}
	return n
}
