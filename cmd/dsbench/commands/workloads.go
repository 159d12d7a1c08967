package commands

import (
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-dsa/Lists"
	"github.com/g-m-twostay/go-dsa/Queues"
	"github.com/g-m-twostay/go-dsa/Sets"
	"github.com/g-m-twostay/go-dsa/Trees"
)

// quadraticLimit caps the size of workloads whose reference or library side
// is linear per operation.
const quadraticLimit = 1 << 12

// missing stands for an absent bound or an empty pop in recorded results.
const missing = -1

// Result of one implementation on one workload.
type Result struct {
	Workload string
	Impl     string
	Ops      int
	Elapsed  time.Duration
	// Checked is set on the go-dsa result when its output was compared with
	// the first reference; Passed is the outcome.
	Checked bool
	Passed  bool
}

// OpsPerSec is the throughput of the result.
func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Ops) / r.Elapsed.Seconds()
}

type workloadFunc func(cfg *Config) []Result

var workloads = map[string]workloadFunc{
	"avl":       runAVL,
	"heap":      runHeap,
	"deque":     runDeque,
	"list":      runList,
	"segment":   runSegment,
	"trie":      runTrie,
	"unionfind": runUnionFind,
}

// WorkloadNames returns the registered workloads in running order.
func WorkloadNames() []string {
	return []string{"avl", "heap", "deque", "list", "segment", "trie", "unionfind"}
}

func measure(workload, impl string, ops int, f func()) Result {
	start := time.Now()
	f()

	return Result{Workload: workload, Impl: impl, Ops: ops, Elapsed: time.Since(start)}
}

func (r *Result) check(cfg *Config, pass func() bool) {
	if cfg.Verify {
		r.Checked, r.Passed = true, pass()
	}
}

// runAVL inserts distinct values, runs lower bound queries and removes half
// of the values.
func runAVL(cfg *Config) []Result {
	const name = "avl"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Size
	vs := rg.Perm(2 * n)[:n]
	qs := make([]int, n)

	for i := range qs {
		qs[i] = rg.Intn(2*n+1) - 1
	}

	rm := vs[:n/2]
	ops := 2*n + len(rm)

	tree := Trees.NewOrderedAVLTree[int]()
	got := make([]int, 0, n)
	lib := measure(name, "go-dsa AVLTree", ops, func() {
		for _, v := range vs {
			tree.Insert(v)
		}

		for _, q := range qs {
			if v, ok := tree.LowerBound(q); ok {
				got = append(got, v)
			} else {
				got = append(got, missing)
			}
		}

		for _, v := range rm {
			tree.Remove(v)
		}
	})

	bt := btree.NewOrderedG[int](32)
	want := make([]int, 0, n)
	refBTree := measure(name, "google/btree", ops, func() {
		for _, v := range vs {
			bt.ReplaceOrInsert(v)
		}

		for _, q := range qs {
			lb := missing
			bt.AscendGreaterOrEqual(q, func(item int) bool {
				lb = item

				return false
			})
			want = append(want, lb)
		}

		for _, v := range rm {
			bt.Delete(v)
		}
	})

	lt := llrb.New()
	refLLRB := measure(name, "petar/GoLLRB", ops, func() {
		for _, v := range vs {
			lt.InsertNoReplace(llrb.Int(v))
		}

		for _, q := range qs {
			lt.AscendGreaterOrEqual(llrb.Int(q), func(llrb.Item) bool { return false })
		}

		for _, v := range rm {
			lt.Delete(llrb.Int(v))
		}
	})

	gt := avltree.NewWithIntComparator()
	refGods := measure(name, "gods avltree", ops, func() {
		for _, v := range vs {
			gt.Put(v, nil)
		}

		for _, q := range qs {
			gt.Ceiling(q)
		}

		for _, v := range rm {
			gt.Remove(v)
		}
	})

	lib.check(cfg, func() bool {
		rest := make([]int, 0, bt.Len())
		bt.Ascend(func(item int) bool {
			rest = append(rest, item)

			return true
		})

		return slices.Equal(got, want) && slices.Equal(tree.Values(), rest) &&
			tree.Size() == lt.Len() && tree.Size() == gt.Size()
	})

	return []Result{lib, refBTree, refLLRB, refGods}
}

// runHeap adds random values one by one, then drains the heap.
func runHeap(cfg *Config) []Result {
	const name = "heap"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Size
	vs := make([]int, n)

	for i := range vs {
		vs[i] = rg.Intn(n)
	}

	pq := Queues.NewOrderedPriorityQueue[int]()
	got := make([]int, 0, n)
	lib := measure(name, "go-dsa PriorityQueue", 2*n, func() {
		for _, v := range vs {
			pq.Add(v)
		}

		for v, ok := pq.Remove(); ok; v, ok = pq.Remove() {
			got = append(got, v)
		}
	})

	gq := priorityqueue.NewWith(utils.IntComparator)
	want := make([]int, 0, n)
	ref := measure(name, "gods priorityqueue", 2*n, func() {
		for _, v := range vs {
			gq.Enqueue(v)
		}

		for v, ok := gq.Dequeue(); ok; v, ok = gq.Dequeue() {
			want = append(want, v.(int))
		}
	})

	lib.check(cfg, func() bool { return slices.Equal(got, want) })

	return []Result{lib, ref}
}

// runDeque pushes and pops at both ends at random.
func runDeque(cfg *Config) []Result {
	const name = "deque"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Size
	kinds, vs := make([]int, n), make([]int, n)

	for i := range kinds {
		kinds[i], vs[i] = rg.Intn(6), rg.Int()
	}

	dq := Queues.NewDeque[int]()
	var got []int
	lib := measure(name, "go-dsa Deque", n, func() {
		for i, k := range kinds {
			switch k {
			case 0, 1:
				dq.Push(vs[i])
			case 2, 3:
				dq.PushLeft(vs[i])
			case 4:
				v, ok := dq.Pop()
				got = appendPopped(got, v, ok)
			case 5:
				v, ok := dq.PopLeft()
				got = appendPopped(got, v, ok)
			}
		}
	})

	dl := doublylinkedlist.New()
	var want []int
	ref := measure(name, "gods doublylinkedlist", n, func() {
		for i, k := range kinds {
			switch k {
			case 0, 1:
				dl.Append(vs[i])
			case 2, 3:
				dl.Prepend(vs[i])
			case 4, 5:
				idx := 0
				if k == 4 {
					idx = dl.Size() - 1
				}

				v, ok := dl.Get(idx)
				if ok {
					dl.Remove(idx)
					want = append(want, v.(int))
				} else {
					want = append(want, missing)
				}
			}
		}
	})

	lib.check(cfg, func() bool {
		return slices.Equal(got, want) && slices.Equal(dq.ToSlice(), toInts(dl.Values()))
	})

	return []Result{lib, ref}
}

func appendPopped(s []int, v int, ok bool) []int {
	if !ok {
		return append(s, missing)
	}

	return append(s, v)
}

func toInts(vs []interface{}) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.(int)
	}

	return out
}

// runList performs random positional inserts, reads and removes.
func runList(cfg *Config) []Result {
	const name = "list"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := min(cfg.Size, quadraticLimit)
	kinds, pos, vs := make([]int, n), make([]int, n), make([]int, n)

	for i := range kinds {
		kinds[i], pos[i], vs[i] = rg.Intn(4), rg.Int(), rg.Int()
	}

	list := Lists.NewDoublyLinkedList[int]()
	var got []int
	lib := measure(name, "go-dsa DoublyLinkedList", n, func() {
		for i, k := range kinds {
			switch sz := list.Size(); k {
			case 0, 1:
				_ = list.AddAt(pos[i]%(sz+1), vs[i])
			case 2:
				v, ok := list.GetAt(pos[i] % (sz + 1))
				got = appendPopped(got, v, ok)
			case 3:
				v, ok := list.RemoveAt(pos[i] % (sz + 1))
				got = appendPopped(got, v, ok)
			}
		}
	})

	al := arraylist.New()
	var want []int
	ref := measure(name, "gods arraylist", n, func() {
		for i, k := range kinds {
			switch sz := al.Size(); k {
			case 0, 1:
				al.Insert(pos[i]%(sz+1), vs[i])
			case 2, 3:
				idx := pos[i] % (sz + 1)
				v, ok := al.Get(idx)
				if !ok {
					want = append(want, missing)

					continue
				}

				want = append(want, v.(int))
				if k == 3 {
					al.Remove(idx)
				}
			}
		}
	})

	lib.check(cfg, func() bool {
		return slices.Equal(got, want) && slices.Equal(list.ToSlice(), toInts(al.Values()))
	})

	return []Result{lib, ref}
}

// runSegment interleaves point updates with range sums.
func runSegment(cfg *Config) []Result {
	const name = "segment"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Size
	q := min(n, quadraticLimit)
	arr := make([]int, n)

	for i := range arr {
		arr[i] = rg.Intn(1000)
	}

	type op struct {
		update bool
		a, b   int
	}

	ops := make([]op, q)
	for i := range ops {
		if rg.Intn(4) == 0 {
			ops[i] = op{true, rg.Intn(n), rg.Intn(1000)}
		} else {
			l := rg.Intn(n)
			ops[i] = op{false, l, l + rg.Intn(n-l)}
		}
	}

	got := make([]int, 0, q)
	lib := measure(name, "go-dsa SegmentTree", n+q, func() {
		st := Trees.NewSegmentTree(arr, Trees.Sum)
		for _, o := range ops {
			if o.update {
				_ = st.Update(o.a, o.b)
			} else {
				got = append(got, st.QueryRange(o.a, o.b))
			}
		}
	})

	want := make([]int, 0, q)
	ref := measure(name, "naive slice", n+q, func() {
		naive := slices.Clone(arr)
		for _, o := range ops {
			if o.update {
				naive[o.a] = o.b

				continue
			}

			sum := 0
			for _, v := range naive[o.a : o.b+1] {
				sum += v
			}

			want = append(want, sum)
		}
	})

	lib.check(cfg, func() bool { return slices.Equal(got, want) })

	return []Result{lib, ref}
}

// runTrie stores random words and looks up stored and unknown words.
func runTrie(cfg *Config) []Result {
	const name = "trie"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Size
	words, lookups := make([]string, n), make([]string, n)

	for i := range words {
		words[i] = strconv.FormatInt(rg.Int63n(1<<40), 36)
		lookups[i] = strconv.FormatInt(rg.Int63n(1<<40), 36)
		if rg.Intn(2) == 0 {
			lookups[i] = words[rg.Intn(i+1)]
		}
	}

	tr := Trees.NewTrie()
	got := make([]bool, 0, n)
	lib := measure(name, "go-dsa Trie", 2*n, func() {
		for _, w := range words {
			tr.Add(w)
		}

		for _, w := range lookups {
			got = append(got, tr.Has(w))
		}
	})

	hm := hashmap.New[string, struct{}]()
	want := make([]bool, 0, n)
	refHash := measure(name, "cornelk/hashmap", 2*n, func() {
		for _, w := range words {
			hm.Set(w, struct{}{})
		}

		for _, w := range lookups {
			_, ok := hm.Get(w)
			want = append(want, ok)
		}
	})

	hx := haxmap.New[string, struct{}]()
	refHax := measure(name, "alphadose/haxmap", 2*n, func() {
		for _, w := range words {
			hx.Set(w, struct{}{})
		}

		for _, w := range lookups {
			hx.Get(w)
		}
	})

	lib.check(cfg, func() bool {
		return slices.Equal(got, want) && len(tr.FindAll("", true)) == hm.Len()
	})

	return []Result{lib, refHash, refHax}
}

// runUnionFind merges random pairs and asks random connectivity questions.
func runUnionFind(cfg *Config) []Result {
	const name = "unionfind"

	rg := rand.New(rand.NewSource(cfg.Seed))
	n := min(cfg.Size, quadraticLimit)
	pairs := make([][2]int, 2*n)

	for i := range pairs {
		pairs[i] = [2]int{rg.Intn(n), rg.Intn(n)}
	}

	uf, _ := Sets.NewUnionFind(n)
	got := make([]bool, 0, n)
	lib := measure(name, "go-dsa UnionFind", 2*n, func() {
		for _, p := range pairs[:n] {
			_, _ = uf.Union(p[0], p[1])
		}

		for _, p := range pairs[n:] {
			c, _ := uf.IsConnected(p[0], p[1])
			got = append(got, c)
		}
	})

	label := make([]int, n)
	groups := n
	want := make([]bool, 0, n)
	ref := measure(name, "naive labels", 2*n, func() {
		for i := range label {
			label[i] = i
		}

		for _, p := range pairs[:n] {
			lx, ly := label[p[0]], label[p[1]]
			if lx == ly {
				continue
			}

			for i, l := range label {
				if l == ly {
					label[i] = lx
				}
			}
			groups--
		}

		for _, p := range pairs[n:] {
			want = append(want, label[p[0]] == label[p[1]])
		}
	})

	lib.check(cfg, func() bool { return slices.Equal(got, want) && uf.Count() == groups })

	return []Result{lib, ref}
}
