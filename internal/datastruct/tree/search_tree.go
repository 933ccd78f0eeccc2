package tree

import "iter"

// OrderedSet is the read/write surface shared by OrderedTree and Locked.
type OrderedSet[K any] interface {
	// Insert adds key unless an equal key is already present.
	// It reports whether the set changed.
	Insert(key K) bool
	// Contains reports whether a key comparing equal to key is present.
	Contains(key K) bool
	// Remove deletes the key comparing equal to key.
	// It reports whether a key was removed.
	Remove(key K) bool
	// Snapshot returns every key in ascending comparator order.
	Snapshot() []K
	// All yields keys in ascending comparator order.
	All() iter.Seq[K]
	// Levels walks the stored keys in pre-order together with their depth.
	Levels(visit func(depth int, key K))
	Empty() bool
	Size() int
	Height() int
}

var (
	_ OrderedSet[int] = (*OrderedTree[int])(nil)
	_ OrderedSet[int] = (*Locked[int])(nil)
)
