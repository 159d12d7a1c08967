package Lists

// DoublyLinkedListNode is a node of a DoublyLinkedList. The dummy head and
// tail have a nil prev and a nil next respectively; a detached node has both nil.
type DoublyLinkedListNode[T any] struct {
	Val        T
	prev, next *DoublyLinkedListNode[T]
	list       *DoublyLinkedList[T] // owner, nil once detached.
}

// Next node towards the tail, nil for the dummy tail.
func (n *DoublyLinkedListNode[T]) Next() *DoublyLinkedListNode[T] {
	return n.next
}

// Prev node towards the head, nil for the dummy head.
func (n *DoublyLinkedListNode[T]) Prev() *DoublyLinkedListNode[T] {
	return n.prev
}

// IsSentinel reports whether n is the dummy head or the dummy tail of a list.
func (n *DoublyLinkedListNode[T]) IsSentinel() bool {
	return (n.prev == nil) != (n.next == nil)
}

// DoublyLinkedList keeps a dummy head and a dummy tail, so every insertion and
// removal at either end is O(1), and positional operations walk from whichever
// end is closer.
// The zero value isn't usable, create it with NewDoublyLinkedList.
type DoublyLinkedList[T any] struct {
	head, tail *DoublyLinkedListNode[T] // dummies, never hold values.
	sz         int
}

// NewDoublyLinkedList returns a list holding vs in order.
// Time: O(len(vs))
func NewDoublyLinkedList[T any](vs ...T) *DoublyLinkedList[T] {
	h, t := new(DoublyLinkedListNode[T]), new(DoublyLinkedListNode[T])
	h.next, t.prev = t, h
	u := &DoublyLinkedList[T]{head: h, tail: t}
	h.list, t.list = u, u
	u.AddAll(vs...)
	return u
}

// link n between p and p.next.
func (u *DoublyLinkedList[T]) link(p, n *DoublyLinkedListNode[T]) {
	nx := p.next
	n.prev, n.next, n.list = p, nx, u
	p.next, nx.prev = n, n
	u.sz++
}

// unlink n, which must be a value node of u.
func (u *DoublyLinkedList[T]) unlink(n *DoublyLinkedListNode[T]) {
	n.prev.next, n.next.prev = n.next, n.prev
	n.prev, n.next, n.list = nil, nil, nil
	u.sz--
}

// AddFirst [List.AddFirst]
// Time: O(1)
func (u *DoublyLinkedList[T]) AddFirst(v T) {
	u.link(u.head, &DoublyLinkedListNode[T]{Val: v})
}

// AddLast [List.AddLast]
// Time: O(1)
func (u *DoublyLinkedList[T]) AddLast(v T) {
	u.link(u.tail.prev, &DoublyLinkedListNode[T]{Val: v})
}

// AddAt [List.AddAt]
// Time: O(min(index, n-index))
func (u *DoublyLinkedList[T]) AddAt(index int, v T) error {
	if index < 0 || index > u.sz {
		return &IndexOutOfRangeError{index, 0, u.sz}
	}
	u.link(u.nodeAt(index-1), &DoublyLinkedListNode[T]{Val: v})
	return nil
}

// AddAll [List.AddAll]
// Time: O(len(vs))
func (u *DoublyLinkedList[T]) AddAll(vs ...T) {
	for _, v := range vs {
		u.AddLast(v)
	}
}

// RemoveHead [List.RemoveHead]
// Time: O(1)
func (u *DoublyLinkedList[T]) RemoveHead() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	n := u.head.next
	u.unlink(n)
	return n.Val, true
}

// RemoveTail [List.RemoveTail]
// Time: O(1)
func (u *DoublyLinkedList[T]) RemoveTail() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	n := u.tail.prev
	u.unlink(n)
	return n.Val, true
}

// RemoveAt [List.RemoveAt]
// Time: O(min(index, n-index))
func (u *DoublyLinkedList[T]) RemoveAt(index int) (v T, ok bool) {
	if index < 0 || index >= u.sz {
		return
	}
	n := u.nodeAt(index)
	u.unlink(n)
	return n.Val, true
}

// RemoveNode unlinks n from the list. n must be a value node currently linked
// into this list. ErrForeignNode is returned for nil, a detached node, or a node
// of another list; ErrSentinelRemoval for the dummies. Neither list is changed on error.
// Time: O(1)
func (u *DoublyLinkedList[T]) RemoveNode(n *DoublyLinkedListNode[T]) error {
	if n == nil || n.list != u {
		return ErrForeignNode
	}
	if n == u.head || n == u.tail {
		return ErrSentinelRemoval
	}
	u.unlink(n)
	return nil
}

// NodeAt returns the node at index. -1 and Size() give the dummy head and
// tail; anything outside [-1, Size()] is an *IndexOutOfRangeError.
// Time: O(min(index, n-index))
func (u *DoublyLinkedList[T]) NodeAt(index int) (*DoublyLinkedListNode[T], error) {
	if index < -1 || index > u.sz {
		return nil, &IndexOutOfRangeError{index, -1, u.sz}
	}
	return u.nodeAt(index), nil
}

// GetHead [List.GetHead]
// Time: O(1)
func (u *DoublyLinkedList[T]) GetHead() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.head.next.Val, true
}

// GetTail [List.GetTail]
// Time: O(1)
func (u *DoublyLinkedList[T]) GetTail() (v T, ok bool) {
	if u.sz == 0 {
		return
	}
	return u.tail.prev.Val, true
}

// GetAt [List.GetAt]
// Time: O(min(index, n-index))
func (u *DoublyLinkedList[T]) GetAt(index int) (v T, ok bool) {
	if index < 0 || index >= u.sz {
		return
	}
	return u.nodeAt(index).Val, true
}

// IsEmpty [List.IsEmpty]
func (u *DoublyLinkedList[T]) IsEmpty() bool {
	return u.sz == 0
}

// Size [List.Size]
func (u *DoublyLinkedList[T]) Size() int {
	return u.sz
}

// ToSlice [List.ToSlice]
// Time: O(n)
func (u *DoublyLinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, u.sz)
	for n := u.head.next; n != u.tail; n = n.next {
		vs = append(vs, n.Val)
	}
	return vs
}

// Clone returns a new list with the same values.
// Time: O(n)
func (u *DoublyLinkedList[T]) Clone() *DoublyLinkedList[T] {
	return NewDoublyLinkedList(u.ToSlice()...)
}

// nodeAt walks from the closer end. -1<=index<=sz is guaranteed by the caller.
func (u *DoublyLinkedList[T]) nodeAt(index int) *DoublyLinkedListNode[T] {
	if index+1 <= u.sz-index {
		n := u.head
		for i := -1; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := u.tail
	for i := u.sz; i > index; i-- {
		n = n.prev
	}
	return n
}
