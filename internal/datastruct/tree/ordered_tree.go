package tree

import (
	"cmp"
	"iter"
)

// node holds a single key. Each node exclusively owns its children.
type node[K any] struct {
	key         K
	left, right *node[K]
}

// OrderedTree is an unbalanced binary search tree over keys of type K,
// ordered by a Comparator.
//
// Keys in a node's left subtree compare less than the node's key and keys
// in its right subtree compare greater. Equal keys are never stored twice.
//
// The tree is never rebalanced, so operations cost O(height). Inserting
// keys in sorted order degrades the tree into a list and every operation
// becomes linear. All operations are iterative, so a degenerate tree does
// not grow the call stack.
//
// An OrderedTree is not safe for concurrent use. Wrap it with NewLocked
// when it has to be shared between goroutines.
type OrderedTree[K any] struct {
	root *node[K]
	size int
	cmp  Comparator[K]
}

// New creates an empty tree ordered by c.
func New[K any](c Comparator[K]) *OrderedTree[K] {
	if c == nil {
		panic("tree: nil comparator")
	}

	return &OrderedTree[K]{cmp: c}
}

// NewOrdered creates an empty tree using the natural order of K.
func NewOrdered[K cmp.Ordered]() *OrderedTree[K] {
	return New(Ascending[K]())
}

// locate descends from the root and returns the link that either points at
// the node equal to key or is the nil slot where key belongs.
func (t *OrderedTree[K]) locate(key K) **node[K] {
	link := &t.root
	for *link != nil {
		switch OrderingOf(t.cmp(key, (*link).key)) {
		case Less:
			link = &(*link).left
		case Greater:
			link = &(*link).right
		default:
			return link
		}
	}

	return link
}

// Insert adds key to the tree. It returns false, leaving the tree
// untouched, if an equal key is already present.
func (t *OrderedTree[K]) Insert(key K) bool {
	link := t.locate(key)
	if *link != nil {
		return false
	}

	*link = &node[K]{key: key}
	t.size++
	return true
}

// Contains reports whether a key equal to key is stored in the tree.
func (t *OrderedTree[K]) Contains(key K) bool {
	return *t.locate(key) != nil
}

// Remove deletes the key equal to key and reports whether it was present.
//
// A node with two children takes the key of its in-order successor (the
// minimum of its right subtree) and the successor's node is unlinked
// instead. The successor never has a left child.
func (t *OrderedTree[K]) Remove(key K) bool {
	link := t.locate(key)
	target := *link
	if target == nil {
		return false
	}

	switch {
	case target.left == nil:
		*link = target.right
	case target.right == nil:
		*link = target.left
	default:
		succ := &target.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		target.key = (*succ).key
		*succ = (*succ).right
	}

	t.size--
	return true
}

// Snapshot returns the keys in ascending order as a new slice.
// It never returns nil.
func (t *OrderedTree[K]) Snapshot() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}

	return keys
}

// All returns an iterator over the keys in ascending order.
// The tree must not be modified while iterating.
func (t *OrderedTree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		var stack []*node[K]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key) {
				return
			}
			n = n.right
		}
	}
}

// Levels walks the tree in pre-order, calling visit with the depth of
// each node (the root is at depth 0).
func (t *OrderedTree[K]) Levels(visit func(depth int, key K)) {
	type frame struct {
		n     *node[K]
		depth int
	}

	if t.root == nil {
		return
	}

	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(f.depth, f.n.key)
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
	}
}

// Min returns the smallest key.
func (t *OrderedTree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key.
func (t *OrderedTree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *OrderedTree[K]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*node[K]{t.root}
	for len(level) > 0 {
		height++
		next := level[:0:0]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return height
}

// Clear drops every key.
func (t *OrderedTree[K]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *OrderedTree[K]) Empty() bool {
	return t.size == 0
}

func (t *OrderedTree[K]) Size() int {
	return t.size
}
