package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree that keeps the heights of the two subtrees
// of every node within 1 of each other. Every node also records the size of
// its subtree, which makes order statistics O(log n).
// Equal values are allowed, a new value equal to an existing one is
// inserted to its right.
// The zero value isn't usable, create it with NewAVLTree or NewOrderedAVLTree.
type AVLTree[T any] struct {
	root *AVLTreeNode[T]
	cmp  func(a, b T) int
}

// NewAVLTree ordered by cmp, which returns a negative number when a<b, 0 when
// a==b, and a positive number when a>b.
func NewAVLTree[T any](cmp func(a, b T) int) *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp}
}

// NewOrderedAVLTree in ascending order of T.
func NewOrderedAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return NewAVLTree(cmp.Compare[T])
}

// Root of the tree, nil when empty.
func (u *AVLTree[T]) Root() *AVLTreeNode[T] {
	return u.root
}

// Size returns the number of values, duplicates included.
// Time: O(1)
func (u *AVLTree[T]) Size() int {
	return u.root.Size()
}

// Height of the tree, 0 when empty.
// Time: O(1)
func (u *AVLTree[T]) Height() int {
	return u.root.Height()
}

// Clear the tree.
func (u *AVLTree[T]) Clear() {
	u.root = nil
}

// Find returns some node holding a value equal to v, nil if there's none.
// Time: O(log n)
func (u *AVLTree[T]) Find(v T) *AVLTreeNode[T] {
	return u.FindFrom(v, u.root)
}

// FindFrom is Find restricted to the subtree rooted at start.
// Time: O(log n)
func (u *AVLTree[T]) FindFrom(v T, start *AVLTreeNode[T]) *AVLTreeNode[T] {
	for cur := start; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(log n)
func (u *AVLTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Insert v and return the new root. v always gets inserted.
// Time: O(log n); Space: O(log n), recursive.
func (u *AVLTree[T]) Insert(v T) *AVLTreeNode[T] {
	u.insert(&u.root, v)
	return u.root
}

func (u *AVLTree[T]) insert(curPtr **AVLTreeNode[T], v T) {
	cur := *curPtr
	if cur == nil {
		*curPtr = &AVLTreeNode[T]{v: v, h: 1, sz: 1}
		return
	}
	if u.cmp(v, cur.v) < 0 {
		u.insert(&cur.l, v)
	} else {
		u.insert(&cur.r, v)
	}
	rebalance(curPtr)
}

// Remove one occurrence of v. Which one is unspecified when there're duplicates.
// Time: O(log n); Space: O(log n), recursive.
func (u *AVLTree[T]) Remove(v T) bool {
	return u.RemoveFrom(v, u.root)
}

// RemoveFrom removes the occurrence of v that FindFrom(v, start) returns,
// which lets the caller choose among duplicates. start must be nil or a node
// of this tree; a nil start searches from the root. The occurrence is unlinked
// from the whole tree, so the tree stays balanced.
// Time: O(log n) without duplicates.
func (u *AVLTree[T]) RemoveFrom(v T, start *AVLTreeNode[T]) bool {
	if start == nil {
		start = u.root
	}
	target := u.FindFrom(v, start)
	if target == nil {
		return false
	}
	return u.removeNode(&u.root, v, target)
}

// removeNode unlinks target, whose value equals v, from the subtree at
// *curPtr. A node with two children takes the value of its in-order
// successor, and the successor is removed from the right subtree instead.
func (u *AVLTree[T]) removeNode(curPtr **AVLTreeNode[T], v T, target *AVLTreeNode[T]) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	switch c := u.cmp(v, cur.v); {
	case c < 0:
		if !u.removeNode(&cur.l, v, target) {
			return false
		}
	case c > 0:
		if !u.removeNode(&cur.r, v, target) {
			return false
		}
	case cur != target: // rotations can put equal values on either side
		if !u.removeNode(&cur.l, v, target) && !u.removeNode(&cur.r, v, target) {
			return false
		}
	case cur.l == nil:
		*curPtr = cur.r
		return true
	case cur.r == nil:
		*curPtr = cur.l
		return true
	default:
		succ := cur.r
		for succ.l != nil {
			succ = succ.l
		}
		cur.v = succ.v
		u.removeNode(&cur.r, succ.v, succ)
	}
	rebalance(curPtr)
	return true
}

// KthSmallestNode returns the node holding the k-th smallest value, k starts
// from 1. nil if k<1 or k>Size().
// Time: O(log n)
func (u *AVLTree[T]) KthSmallestNode(k int) *AVLTreeNode[T] {
	if k < 1 || k > u.Size() {
		return nil
	}
	cur := u.root
	for {
		if ls := cur.l.Size(); k == ls+1 {
			return cur
		} else if k <= ls {
			cur = cur.l
		} else {
			k -= ls + 1
			cur = cur.r
		}
	}
}

// KthLargestNode is KthSmallestNode in descending order.
// Time: O(log n)
func (u *AVLTree[T]) KthLargestNode(k int) *AVLTreeNode[T] {
	if k < 1 || k > u.Size() {
		return nil
	}
	cur := u.root
	for {
		if rs := cur.r.Size(); k == rs+1 {
			return cur
		} else if k <= rs {
			cur = cur.r
		} else {
			k -= rs + 1
			cur = cur.l
		}
	}
}

// KthSmallest [Tree.KthSmallest]
func (u *AVLTree[T]) KthSmallest(k int) (T, bool) {
	return val(u.KthSmallestNode(k))
}

// KthLargest [Tree.KthLargest]
func (u *AVLTree[T]) KthLargest(k int) (T, bool) {
	return val(u.KthLargestNode(k))
}

// LowerBoundNode returns the leftmost node whose value isn't less than v,
// nil if every value is less than v.
// Time: O(log n)
func (u *AVLTree[T]) LowerBoundNode(v T) (best *AVLTreeNode[T]) {
	for cur := u.root; cur != nil; {
		if u.cmp(cur.v, v) >= 0 {
			best, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// UpperBoundNode returns the rightmost node whose value isn't greater than v,
// nil if every value is greater than v.
// Time: O(log n)
func (u *AVLTree[T]) UpperBoundNode(v T) (best *AVLTreeNode[T]) {
	for cur := u.root; cur != nil; {
		if u.cmp(cur.v, v) <= 0 {
			best, cur = cur, cur.r
		} else {
			cur = cur.l
		}
	}
	return
}

// LowerBound [Tree.LowerBound]
func (u *AVLTree[T]) LowerBound(v T) (T, bool) {
	return val(u.LowerBoundNode(v))
}

// UpperBound [Tree.UpperBound]
func (u *AVLTree[T]) UpperBound(v T) (T, bool) {
	return val(u.UpperBoundNode(v))
}

// Min [Tree.Min]
// Time: O(log n)
func (u *AVLTree[T]) Min() (T, bool) {
	return u.KthSmallest(1)
}

// Max [Tree.Max]
// Time: O(log n)
func (u *AVLTree[T]) Max() (T, bool) {
	return u.KthLargest(1)
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(log n)
func (u *AVLTree[T]) InOrder(f func(T) bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*AVLTreeNode[T])
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

// Values in ascending order.
// Time: O(n)
func (u *AVLTree[T]) Values() []T {
	vs := make([]T, 0, u.Size())
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func val[T any](n *AVLTreeNode[T]) (v T, ok bool) {
	if n == nil {
		return
	}
	return n.v, true
}
