package structure

import "iter"

// Tree is an AVL tree keyed by an extracted field value. Keys are not
// unique: every node carries a bucket of all values sharing its exact
// key. Trees are built fresh per index rebuild; there is no delete.
type Tree[K, T any] struct {
	root    *treeNode[K, T]
	cmp     func(a, b K) int
	entries int
	keys    int
}

type treeNode[K, T any] struct {
	key    K
	bucket []T
	left   *treeNode[K, T]
	right  *treeNode[K, T]
	height int
}

// LevelEntry is one node as seen by a breadth-first dump.
type LevelEntry[K any] struct {
	Depth      int
	Key        K
	BucketSize int
}

func NewTree[K, T any](cmp func(a, b K) int) *Tree[K, T] {
	return &Tree[K, T]{cmp: cmp}
}

// Len returns the number of inserted values; Keys the number of
// distinct keys (tree nodes).
func (t *Tree[K, T]) Len() int  { return t.entries }
func (t *Tree[K, T]) Keys() int { return t.keys }

// Height is the root height: 0 for an empty tree, 1 for a single node.
func (t *Tree[K, T]) Height() int { return height(t.root) }

// Insert adds v under key. An existing key grows its bucket; a new key
// creates a node and rebalances on the way back up, so the balance
// factor stays within {-1, 0, 1} at every node.
func (t *Tree[K, T]) Insert(key K, v T) {
	t.root = t.insert(t.root, key, v)
	t.entries++
}

func (t *Tree[K, T]) insert(n *treeNode[K, T], key K, v T) *treeNode[K, T] {
	if n == nil {
		t.keys++
		return &treeNode[K, T]{key: key, bucket: []T{v}, height: 1}
	}

	c := t.cmp(key, n.key)
	if c == 0 {
		n.bucket = append(n.bucket, v)
		return n
	}
	if c < 0 {
		n.left = t.insert(n.left, key, v)
	} else {
		n.right = t.insert(n.right, key, v)
	}

	n.height = 1 + max(height(n.left), height(n.right))

	switch bf := balance(n); {
	case bf > 1 && t.cmp(key, n.left.key) < 0: // left-left
		return rotateRight(n)
	case bf > 1: // left-right
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1 && t.cmp(key, n.right.key) > 0: // right-right
		return rotateLeft(n)
	case bf < -1: // right-left
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

func height[K, T any](n *treeNode[K, T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance[K, T any](n *treeNode[K, T]) int {
	return height(n.left) - height(n.right)
}

func rotateRight[K, T any](y *treeNode[K, T]) *treeNode[K, T] {
	x := y.left
	y.left = x.right
	x.right = y
	y.height = 1 + max(height(y.left), height(y.right))
	x.height = 1 + max(height(x.left), height(x.right))
	return x
}

func rotateLeft[K, T any](x *treeNode[K, T]) *treeNode[K, T] {
	y := x.right
	x.right = y.left
	y.left = x
	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))
	return y
}

// Find returns the bucket for an exact key in O(log n). A missing key
// is an empty result, not an error.
func (t *Tree[K, T]) Find(key K) []T {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c == 0 {
			out := make([]T, len(n.bucket))
			copy(out, n.bucket)
			return out
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Range collects every value whose key lies in [lo, hi], in key order.
// Subtrees that cannot intersect the interval are pruned, so the cost
// is proportional to the answer plus the descent, not to n.
func (t *Tree[K, T]) Range(lo, hi K) []T {
	var out []T
	t.rangeNode(t.root, lo, hi, &out)
	return out
}

func (t *Tree[K, T]) rangeNode(n *treeNode[K, T], lo, hi K, out *[]T) {
	if n == nil {
		return
	}
	if t.cmp(n.key, lo) >= 0 {
		t.rangeNode(n.left, lo, hi, out)
	}
	if t.cmp(n.key, lo) >= 0 && t.cmp(n.key, hi) <= 0 {
		*out = append(*out, n.bucket...)
	}
	if t.cmp(n.key, hi) <= 0 {
		t.rangeNode(n.right, lo, hi, out)
	}
}

// InOrder iterates (key, bucket) pairs in ascending key order. The
// bucket is the tree's own slice; callers must not mutate it.
func (t *Tree[K, T]) InOrder() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		inorder(t.root, yield)
	}
}

func inorder[K, T any](n *treeNode[K, T], yield func(K, []T) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, yield) {
		return false
	}
	if !yield(n.key, n.bucket) {
		return false
	}
	return inorder(n.right, yield)
}

// Levels runs a breadth-first traversal and yields one (depth, key,
// bucket size) entry per node, shallowest first, using the package's
// own Queue for the frontier. The root comes first.
func (t *Tree[K, T]) Levels() iter.Seq[LevelEntry[K]] {
	return func(yield func(LevelEntry[K]) bool) {
		if t.root == nil {
			return
		}
		type frame struct {
			node  *treeNode[K, T]
			depth int
		}
		q := NewQueue[frame]()
		q.Enqueue(frame{node: t.root})
		for !q.IsEmpty() {
			f, err := q.Dequeue()
			if err != nil {
				return
			}
			entry := LevelEntry[K]{Depth: f.depth, Key: f.node.key, BucketSize: len(f.node.bucket)}
			if !yield(entry) {
				return
			}
			if f.node.left != nil {
				q.Enqueue(frame{node: f.node.left, depth: f.depth + 1})
			}
			if f.node.right != nil {
				q.Enqueue(frame{node: f.node.right, depth: f.depth + 1})
			}
		}
	}
}
