package Trees

// AVLTreeNode is a node of an AVLTree. Every getter except Val is safe on a nil node,
// which has height 0 and size 0.
// A node's value may be overwritten when another node holding a value it
// borders is removed, so don't rely on node identity across a Remove.
type AVLTreeNode[T any] struct {
	v    T
	l, r *AVLTreeNode[T]
	h    int // 1 for a leaf
	sz   int // number of nodes in the subtree, 1 for a leaf
}

func (n *AVLTreeNode[T]) Val() T {
	return n.v
}

func (n *AVLTreeNode[T]) Left() *AVLTreeNode[T] {
	if n == nil {
		return nil
	}
	return n.l
}

func (n *AVLTreeNode[T]) Right() *AVLTreeNode[T] {
	if n == nil {
		return nil
	}
	return n.r
}

func (n *AVLTreeNode[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.h
}

func (n *AVLTreeNode[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.sz
}

// recompute h and sz from the children.
func (n *AVLTreeNode[T]) recompute() {
	n.h = 1 + max(n.l.Height(), n.r.Height())
	n.sz = 1 + n.l.Size() + n.r.Size()
}

func (n *AVLTreeNode[T]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.l.Height() - n.r.Height()
}

// rotateLeft performs a left rotation on n. n is passed by reference in order
// to modify its content. The lower node is recomputed first.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **AVLTreeNode[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.recompute()
	rc.recompute()
	*n = rc
}

// rotateRight performs a right rotation on n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **AVLTreeNode[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.recompute()
	lc.recompute()
	*n = lc
}

// rebalance recomputes *curPtr and restores the AVL property with at most
// two rotations, assuming both subtrees are AVL trees whose heights differ by
// at most 2.
// Time: O(1)
func rebalance[T any](curPtr **AVLTreeNode[T]) {
	cur := *curPtr
	cur.recompute()
	if b := cur.balanceFactor(); b > 1 {
		if cur.l.balanceFactor() < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	} else if b < -1 {
		if cur.r.balanceFactor() > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	}
}
