// Package btree implements an ordered, generic associative container
// backed by a B+ tree: fixed-capacity leaf and branch nodes, a
// doubly-linked chain threading every leaf in key order, and a
// split/merge mutation protocol that keeps every node within its
// occupancy bounds after every insert and remove.
package btree

import (
	"cmp"
	"fmt"
	"slices"

	"bplustree/pkg/alloc"
	"bplustree/pkg/layout"
)

// Map is an ordered key/value container. Its zero value is not usable;
// construct one with New, NewWithByteBudget, or NewWithOptions.
type Map[K cmp.Ordered, V any] struct {
	root         treeNode[K, V]
	leafCap      int
	branchCap    int
	leafLayout   layout.Leaf
	branchLayout layout.Branch
	alloc        *alloc.Allocator
	length       int
}

// New constructs an empty Map whose leaves and branches hold up to
// capacity keys each. It fails with ErrInvalidCapacity when capacity falls
// outside [layout.MinCapacity, layout.MaxCapacity].
func New[K cmp.Ordered, V any](capacity int) (*Map[K, V], error) {
	return NewWithOptions[K, V](capacity, alloc.Options{})
}

// NewWithOptions is New, additionally configuring the node allocator's
// byte budget and backend (heap-only or arena-backed; see pkg/alloc).
func NewWithOptions[K cmp.Ordered, V any](capacity int, opts alloc.Options) (*Map[K, V], error) {
	if capacity < layout.MinCapacity || capacity > layout.MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d must be in [%d, %d]", ErrInvalidCapacity, capacity, layout.MinCapacity, layout.MaxCapacity)
	}
	return &Map[K, V]{
		leafCap:      capacity,
		branchCap:    capacity,
		leafLayout:   layout.ComputeLeafForCapacity[K, V](uint16(capacity)),
		branchLayout: layout.ComputeBranchForCapacity[K](uint16(capacity)),
		alloc:        alloc.New(opts),
	}, nil
}

// NewWithByteBudget constructs an empty Map sized to the largest leaf and
// branch capacities that fit within byteBudget bytes per node, per the
// layout planner's packing rules.
func NewWithByteBudget[K cmp.Ordered, V any](byteBudget int) (*Map[K, V], error) {
	ll := layout.ComputeLeafForBudget[K, V](uintptr(byteBudget))
	bl := layout.ComputeBranchForBudget[K](uintptr(byteBudget))
	if ll.Capacity < layout.MinCapacity || bl.Capacity < layout.MinCapacity {
		return nil, fmt.Errorf("%w: byte budget %d too small for minimum capacity %d", ErrInvalidCapacity, byteBudget, layout.MinCapacity)
	}
	return &Map[K, V]{
		leafCap:      int(ll.Capacity),
		branchCap:    int(bl.Capacity),
		leafLayout:   ll,
		branchLayout: bl,
		alloc:        alloc.New(alloc.Options{}),
	}, nil
}

func (m *Map[K, V]) minLeafLen() int { return m.leafCap / 2 }

func (m *Map[K, V]) minBranchLen() int {
	if m.branchCap <= 2 {
		return 1
	}
	return m.branchCap / 2
}

func (m *Map[K, V]) allocLeaf() (*leafNode[K, V], error) {
	res, err := m.alloc.Allocate(int64(m.leafLayout.Bytes))
	if err != nil {
		return nil, err
	}
	return &leafNode[K, V]{
		keys:   make([]K, 0, m.leafCap),
		values: make([]V, 0, m.leafCap),
		res:    res,
	}, nil
}

func (m *Map[K, V]) allocBranch() (*branchNode[K, V], error) {
	res, err := m.alloc.Allocate(int64(m.branchLayout.Bytes))
	if err != nil {
		return nil, err
	}
	return &branchNode[K, V]{
		keys:     make([]K, 0, m.branchCap),
		children: make([]treeNode[K, V], 0, m.branchCap+1),
		res:      res,
	}, nil
}

func (m *Map[K, V]) freeLeaf(n *leafNode[K, V]) { m.alloc.Release(n.res) }

func (m *Map[K, V]) freeBranch(n *branchNode[K, V]) { m.alloc.Release(n.res) }

// Get returns the value stored under key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	leaf := m.leafForKey(key)
	if leaf == nil {
		return zero, false
	}
	idx, found := slices.BinarySearch(leaf.keys, key)
	if !found {
		return zero, false
	}
	return leaf.values[idx], true
}

// GetMut returns a pointer to the value stored under key, and whether it
// was present. The pointer aliases the tree's own storage and is
// invalidated by any subsequent mutation.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	leaf := m.leafForKey(key)
	if leaf == nil {
		return nil, false
	}
	idx, found := slices.BinarySearch(leaf.keys, key)
	if !found {
		return nil, false
	}
	return &leaf.values[idx], true
}

// GetItem is Get for callers who prefer an error over a bool when key is
// absent.
func (m *Map[K, V]) GetItem(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// RemoveItem is Remove for callers who prefer an error over a bool when
// key is absent.
func (m *Map[K, V]) RemoveItem(key K) (V, error) {
	v, ok := m.Remove(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of key/value pairs currently stored.
func (m *Map[K, V]) Len() int { return m.length }

// IsEmpty reports whether the tree holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.length == 0 }

// First returns the smallest key and its value, and whether the tree is
// non-empty.
func (m *Map[K, V]) First() (K, V, bool) {
	var zk K
	var zv V
	leaf := m.leftmostLeaf()
	if leaf == nil || len(leaf.keys) == 0 {
		return zk, zv, false
	}
	return leaf.keys[0], leaf.values[0], true
}

// Last returns the greatest key and its value, and whether the tree is
// non-empty.
func (m *Map[K, V]) Last() (K, V, bool) {
	var zk K
	var zv V
	leaf := m.rightmostLeaf()
	if leaf == nil || len(leaf.keys) == 0 {
		return zk, zv, false
	}
	n := len(leaf.keys)
	return leaf.keys[n-1], leaf.values[n-1], true
}

// Depth returns the number of levels from the root to a leaf, inclusive
// (0 for an empty tree, 1 for a single-leaf tree).
func (m *Map[K, V]) Depth() int {
	if m.root == nil {
		return 0
	}
	depth := 1
	cur := m.root
	for {
		b, ok := cur.(*branchNode[K, V])
		if !ok {
			return depth
		}
		depth++
		cur = b.children[0]
	}
}

// Clear releases every node in the tree and resets it to empty. Because
// Map's allocator tracks a byte budget rather than relying solely on the
// garbage collector, Clear (not simply discarding the Map) is how that
// budget accounting is returned.
func (m *Map[K, V]) Clear() {
	m.releaseSubtree(m.root)
	m.root = nil
	m.length = 0
}

func (m *Map[K, V]) releaseSubtree(n treeNode[K, V]) {
	switch t := n.(type) {
	case nil:
		return
	case *leafNode[K, V]:
		m.freeLeaf(t)
	case *branchNode[K, V]:
		for _, c := range t.children {
			m.releaseSubtree(c)
		}
		m.freeBranch(t)
	}
}

