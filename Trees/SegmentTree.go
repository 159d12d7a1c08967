package Trees

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is what a SegmentTree can aggregate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Aggregate is the associative operation a SegmentTree folds ranges with.
type Aggregate uint8

const (
	Sum Aggregate = iota
	Max
	Min
)

func (a Aggregate) String() string {
	switch a {
	case Sum:
		return "sum"
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return "unknown"
}

// SegmentTree answers range aggregate queries over a fixed length array with
// point updates. It's stored as a flat slice of 2n values: tree[n+i] is the
// i-th element and tree[i] for 1<=i<n combines tree[2i] and tree[2i+1].
// tree[0] is unused.
type SegmentTree[T Number] struct {
	tree []T
	n    int
	kind Aggregate
	id   T // identity of kind; the result of an empty fold
}

// NewSegmentTree over a copy of arr.
// Time: O(n)
func NewSegmentTree[T Number](arr []T, kind Aggregate) *SegmentTree[T] {
	u := &SegmentTree[T]{kind: kind, id: identity[T](kind)}
	u.Build(arr)
	return u
}

// identity returns the lowest value of T for Max and the highest for Min.
// Floats use the infinities. Sum, and any kind folded like Sum, gets 0.
func identity[T Number](kind Aggregate) T {
	var z T
	if kind != Max && kind != Min {
		return z
	}
	v := reflect.ValueOf(&z).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if kind == Max {
			v.SetFloat(math.Inf(-1))
		} else {
			v.SetFloat(math.Inf(1))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		shift := 64 - v.Type().Bits()
		if kind == Max {
			v.SetInt(math.MinInt64 >> shift)
		} else {
			v.SetInt(math.MaxInt64 >> shift)
		}
	default: // unsigned
		if kind == Min {
			v.SetUint(math.MaxUint64 >> (64 - v.Type().Bits()))
		}
	}
	return z
}

func (u *SegmentTree[T]) combine(a, b T) T {
	switch u.kind {
	case Max:
		return max(a, b)
	case Min:
		return min(a, b)
	default:
		return a + b
	}
}

// Build discards the current content and rebuilds over a copy of arr.
// Time: O(n)
func (u *SegmentTree[T]) Build(arr []T) {
	u.n = len(arr)
	u.tree = make([]T, 2*u.n)
	copy(u.tree[u.n:], arr)
	for i := u.n - 1; i > 0; i-- {
		u.tree[i] = u.combine(u.tree[2*i], u.tree[2*i+1])
	}
}

// Update sets the element at index to v. index outside [0, Len()) is an
// *IndexOutOfRangeError and nothing changes.
// Time: O(log n)
func (u *SegmentTree[T]) Update(index int, v T) error {
	if index < 0 || index >= u.n {
		return &IndexOutOfRangeError{index, u.n}
	}
	i := index + u.n
	u.tree[i] = v
	for i >>= 1; i > 0; i >>= 1 {
		u.tree[i] = u.combine(u.tree[2*i], u.tree[2*i+1])
	}
	return nil
}

// QueryRange aggregates the elements in [left, right]. Both bounds are
// clamped into [0, Len()-1], so QueryRange(-1, 1)==QueryRange(0, 1). An empty
// tree or left>right gives the identity of the aggregate: 0 for Sum, the
// lowest T for Max, the highest T for Min.
// Time: O(log n)
func (u *SegmentTree[T]) QueryRange(left, right int) T {
	res := u.id
	if u.n == 0 {
		return res
	}
	left, right = min(max(left, 0), u.n-1)+u.n, min(max(right, 0), u.n-1)+u.n
	for ; left <= right; left, right = left>>1, right>>1 {
		if left&1 == 1 {
			res = u.combine(res, u.tree[left])
			left++
		}
		if right&1 == 0 {
			res = u.combine(res, u.tree[right])
			right--
		}
	}
	return res
}

// Get the element at index.
// Time: O(1)
func (u *SegmentTree[T]) Get(index int) (v T, ok bool) {
	if index < 0 || index >= u.n {
		return
	}
	return u.tree[index+u.n], true
}

// Len is the number of elements.
func (u *SegmentTree[T]) Len() int {
	return u.n
}

// Kind of the aggregate.
func (u *SegmentTree[T]) Kind() Aggregate {
	return u.kind
}
