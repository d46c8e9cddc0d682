package structure

import (
	"math"
	"math/rand"
	"testing"
)

// checkBalanced walks the whole tree verifying the AVL invariant and
// the cached heights. Returns the subtree height.
func checkBalanced[K, T any](t *testing.T, n *treeNode[K, T]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	lh := checkBalanced(t, n.left)
	rh := checkBalanced(t, n.right)
	if bf := lh - rh; bf < -1 || bf > 1 {
		t.Fatalf("balance factor %d out of range", bf)
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		t.Fatalf("cached height %d, actual %d", n.height, h)
	}
	return h
}

func TestTreeBalancedAfterEveryInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		tree := NewTree[int, int](intCmp)
		for i, k := range rng.Perm(200) {
			tree.Insert(k, i)
			checkBalanced(t, tree.root)
		}
		if tree.Len() != 200 || tree.Keys() != 200 {
			t.Fatalf("len=%d keys=%d, want 200/200", tree.Len(), tree.Keys())
		}
	}
}

func TestTreeBalancedOnAdversarialInserts(t *testing.T) {
	// Ascending and descending order both force every rotation case.
	asc := NewTree[int, int](intCmp)
	desc := NewTree[int, int](intCmp)
	for i := 0; i < 500; i++ {
		asc.Insert(i, i)
		desc.Insert(500-i, i)
		checkBalanced(t, asc.root)
		checkBalanced(t, desc.root)
	}
}

func TestTreeHeightLogarithmic(t *testing.T) {
	tree := NewTree[int, int](intCmp)
	n := 1024
	for i := 0; i < n; i++ {
		tree.Insert(i, i)
	}
	bound := int(math.Ceil(1.45 * math.Log2(float64(n+1))))
	if tree.Height() > bound {
		t.Fatalf("height %d exceeds %d for n=%d", tree.Height(), bound, n)
	}
}

func TestTreeBuckets(t *testing.T) {
	tree := NewTree[string, int](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	tree.Insert("fr", 1)
	tree.Insert("de", 2)
	tree.Insert("fr", 3)
	tree.Insert("fr", 4)

	if tree.Keys() != 2 || tree.Len() != 4 {
		t.Fatalf("keys=%d len=%d, want 2/4", tree.Keys(), tree.Len())
	}
	got := tree.Find("fr")
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 4 {
		t.Fatalf("bucket %v, want [1 3 4] in insert order", got)
	}
	if missing := tree.Find("es"); missing != nil {
		t.Fatalf("absent key returned %v", missing)
	}
}

func TestTreeRangeMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := NewTree[int, int](intCmp)
	var keys []int
	for i := 0; i < 300; i++ {
		k := rng.Intn(100)
		tree.Insert(k, k)
		keys = append(keys, k)
	}

	for trial := 0; trial < 50; trial++ {
		lo := rng.Intn(100)
		hi := lo + rng.Intn(100-lo)

		got := tree.Range(lo, hi)
		var want []int
		for _, k := range keys {
			if k >= lo && k <= hi {
				want = append(want, k)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("range [%d,%d]: %d values, brute force %d", lo, hi, len(got), len(want))
		}
		for i := 1; i < len(got); i++ {
			if got[i-1] > got[i] {
				t.Fatalf("range results out of key order: %v", got)
			}
		}
	}
}

func TestTreeRangeEmptyInterval(t *testing.T) {
	tree := NewTree[int, int](intCmp)
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k, k)
	}
	if got := tree.Range(11, 19); got != nil {
		t.Fatalf("empty interval returned %v", got)
	}
}

func TestTreeInOrder(t *testing.T) {
	tree := NewTree[int, string](intCmp)
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k, "v")
	}
	var order []int
	for k := range tree.InOrder() {
		order = append(order, k)
	}
	want := []int{1, 3, 4, 5, 8}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("in-order %v, want %v", order, want)
		}
	}
}

func TestTreeLevels(t *testing.T) {
	tree := NewTree[int, string](intCmp)
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k, "v")
	}
	// No rotations happen for this sequence: 5 stays the root.
	var entries []LevelEntry[int]
	for e := range tree.Levels() {
		entries = append(entries, e)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	if entries[0].Key != 5 || entries[0].Depth != 0 {
		t.Fatalf("root entry %+v, want key 5 at depth 0", entries[0])
	}

	wantKeys := []int{5, 3, 8, 1, 4}
	wantDepth := []int{0, 1, 1, 2, 2}
	for i := range entries {
		if entries[i].Key != wantKeys[i] || entries[i].Depth != wantDepth[i] {
			t.Fatalf("entry %d = %+v, want key %d depth %d", i, entries[i], wantKeys[i], wantDepth[i])
		}
		if entries[i].BucketSize != 1 {
			t.Fatalf("bucket size %d, want 1", entries[i].BucketSize)
		}
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Depth < entries[i-1].Depth {
			t.Fatal("levels not grouped shallowest-first")
		}
	}
}

func TestTreeLevelsEmpty(t *testing.T) {
	tree := NewTree[int, string](intCmp)
	for range tree.Levels() {
		t.Fatal("empty tree yielded a level entry")
	}
}
