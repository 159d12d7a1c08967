package Sets

// UnionFind is a disjoint-set forest with path compression and union by rank.
type UnionFind struct {
	root  []int
	rank  []int // upper bound of the height of the tree under a root, starts at 1
	count int
}

// NewUnionFind with size singleton groups, ErrInvalidSize if size<=0.
// Time: O(size)
func NewUnionFind(size int) (*UnionFind, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	u := &UnionFind{make([]int, size), make([]int, size), size}
	for i := range u.root {
		u.root[i] = i
		u.rank[i] = 1
	}
	return u, nil
}

func (u *UnionFind) check(x int) error {
	if x < 0 || x >= len(u.root) {
		return &ElementOutOfRangeError{x, len(u.root)}
	}
	return nil
}

// find assumes x is valid.
// Time: amortized O(α(n))
func (u *UnionFind) find(x int) int {
	r := x
	for u.root[r] != r {
		r = u.root[r]
	}
	for x != r {
		x, u.root[x] = u.root[x], r
	}
	return r
}

// Find [DisjointSets.Find]. Out of range elements give an *ElementOutOfRangeError.
func (u *UnionFind) Find(x int) (int, error) {
	if err := u.check(x); err != nil {
		return -1, err
	}
	return u.find(x), nil
}

// Union [DisjointSets.Union]. The root of lower rank goes under the other
// one; on a tie, y's root goes under x's root.
// Nothing changes if either element is out of range.
func (u *UnionFind) Union(x, y int) (bool, error) {
	if err := u.check(x); err != nil {
		return false, err
	}
	if err := u.check(y); err != nil {
		return false, err
	}
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return false, nil
	}
	switch {
	case u.rank[rx] > u.rank[ry]:
		u.root[ry] = rx
	case u.rank[rx] < u.rank[ry]:
		u.root[rx] = ry
	default:
		u.root[ry] = rx
		u.rank[rx]++
	}
	u.count--
	return true, nil
}

// IsConnected [DisjointSets.IsConnected]
func (u *UnionFind) IsConnected(x, y int) (bool, error) {
	if err := u.check(x); err != nil {
		return false, err
	}
	if err := u.check(y); err != nil {
		return false, err
	}
	return u.find(x) == u.find(y), nil
}

// Count [DisjointSets.Count]
func (u *UnionFind) Count() int {
	return u.count
}

// Len [DisjointSets.Len]
func (u *UnionFind) Len() int {
	return len(u.root)
}
