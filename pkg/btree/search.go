// pkg/btree/search.go
package btree

import "slices"

// leafForKey descends from the root to the leaf that would hold key,
// binary-searching each branch's separator array along the way. It returns
// nil only when the tree is empty.
func (m *Map[K, V]) leafForKey(key K) *leafNode[K, V] {
	cur := m.root
	for cur != nil {
		switch n := cur.(type) {
		case *leafNode[K, V]:
			return n
		case *branchNode[K, V]:
			idx, found := slices.BinarySearch(n.keys, key)
			if found {
				idx++
			}
			cur = n.children[idx]
		}
	}
	return nil
}

// leftmostLeaf descends via the first child pointer at every branch.
func (m *Map[K, V]) leftmostLeaf() *leafNode[K, V] {
	cur := m.root
	for cur != nil {
		switch n := cur.(type) {
		case *leafNode[K, V]:
			return n
		case *branchNode[K, V]:
			cur = n.children[0]
		}
	}
	return nil
}

// rightmostLeaf descends via the last child pointer at every branch.
func (m *Map[K, V]) rightmostLeaf() *leafNode[K, V] {
	cur := m.root
	for cur != nil {
		switch n := cur.(type) {
		case *leafNode[K, V]:
			return n
		case *branchNode[K, V]:
			cur = n.children[len(n.children)-1]
		}
	}
	return nil
}
