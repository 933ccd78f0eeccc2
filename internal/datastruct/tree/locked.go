package tree

import (
	"iter"
	"sync"
)

// Locked guards an OrderedTree with a read/write mutex.
// Mutations take the write lock; queries share the read lock.
type Locked[K any] struct {
	mu   sync.RWMutex
	tree *OrderedTree[K]
}

// NewLocked wraps t. The caller must stop using t directly.
func NewLocked[K any](t *OrderedTree[K]) *Locked[K] {
	return &Locked[K]{tree: t}
}

func (l *Locked[K]) Insert(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.tree.Insert(key)
}

func (l *Locked[K]) Remove(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.tree.Remove(key)
}

func (l *Locked[K]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tree.Clear()
}

func (l *Locked[K]) Contains(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Contains(key)
}

func (l *Locked[K]) Snapshot() []K {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Snapshot()
}

// All holds the read lock for the whole iteration. Calling a mutating
// method from inside the loop deadlocks.
func (l *Locked[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()

		for k := range l.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (l *Locked[K]) Levels(visit func(depth int, key K)) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	l.tree.Levels(visit)
}

func (l *Locked[K]) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Empty()
}

func (l *Locked[K]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Size()
}

func (l *Locked[K]) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.tree.Height()
}
