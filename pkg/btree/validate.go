// pkg/btree/validate.go
package btree

import (
	"cmp"
	"fmt"
	"unsafe"

	set3 "github.com/TomTonic/Set3"
)

// validationState threads the running leaf-chain position and the
// running total item count through the recursive structural walk.
type validationState[K any, V any] struct {
	totalItems int
	prevLeaf   *leafNode[K, V]
	prevKey    *K
	visited    *set3.Set3[unsafe.Pointer]
}

// CheckInvariants walks the tree and verifies invariants 1-8: capacity
// bounds, key ordering, subtree ranges, minimum occupancy, and leaf-chain
// consistency. It is meant for tests and debug assertions, not hot paths.
func (m *Map[K, V]) CheckInvariants() error {
	if m.root == nil {
		return nil
	}
	state := &validationState[K, V]{visited: set3.Empty[unsafe.Pointer]()}
	if _, _, err := m.validateNode(m.root, nil, nil, true, state); err != nil {
		return err
	}
	if state.prevLeaf != nil && state.prevLeaf.forward != nil {
		return &CorruptedError{Msg: "tail leaf forward pointer should be nil"}
	}
	return nil
}

// Valid reports whether CheckInvariants finds no corruption.
func (m *Map[K, V]) Valid() bool {
	return m.CheckInvariants() == nil
}

func (m *Map[K, V]) validateNode(n treeNode[K, V], lower, upper *K, isRoot bool, state *validationState[K, V]) (*K, *K, error) {
	switch t := n.(type) {
	case *leafNode[K, V]:
		return m.validateLeaf(t, lower, upper, isRoot, state)
	case *branchNode[K, V]:
		return m.validateBranch(t, lower, upper, isRoot, state)
	}
	return nil, nil, &CorruptedError{Msg: "unknown node kind"}
}

func (m *Map[K, V]) validateLeaf(leaf *leafNode[K, V], lower, upper *K, isRoot bool, state *validationState[K, V]) (*K, *K, error) {
	ptr := unsafe.Pointer(leaf)
	if state.visited.Contains(ptr) {
		return nil, nil, &CorruptedError{Msg: "leaf visited more than once"}
	}
	state.visited.Add(ptr)

	n := len(leaf.keys)
	if n > m.leafCap {
		return nil, nil, &CorruptedError{Msg: fmt.Sprintf("leaf has %d keys but capacity is %d", n, m.leafCap)}
	}
	if n == 0 {
		if isRoot {
			return nil, nil, nil
		}
		return nil, nil, &CorruptedError{Msg: "non-root leaf is empty"}
	}
	if !isRoot && n < m.minLeafLen() {
		return nil, nil, &CorruptedError{Msg: fmt.Sprintf("leaf underfull: has %d keys, minimum is %d", n, m.minLeafLen())}
	}

	for i := 1; i < n; i++ {
		if cmp.Compare(leaf.keys[i-1], leaf.keys[i]) >= 0 {
			return nil, nil, &CorruptedError{Msg: "leaf keys not strictly increasing"}
		}
	}
	if lower != nil && cmp.Compare(leaf.keys[0], *lower) < 0 {
		return nil, nil, &CorruptedError{Msg: "leaf keys fall below lower bound"}
	}
	if upper != nil && cmp.Compare(leaf.keys[n-1], *upper) >= 0 {
		return nil, nil, &CorruptedError{Msg: "leaf keys exceed upper bound"}
	}

	if state.prevLeaf != nil {
		if state.prevLeaf.forward != leaf {
			return nil, nil, &CorruptedError{Msg: "leaf forward pointer mismatch"}
		}
		if leaf.backward != state.prevLeaf {
			return nil, nil, &CorruptedError{Msg: "leaf backward pointer mismatch"}
		}
	} else if leaf.backward != nil {
		return nil, nil, &CorruptedError{Msg: "first leaf backward pointer should be nil"}
	}
	state.prevLeaf = leaf

	if state.prevKey != nil && cmp.Compare(leaf.keys[0], *state.prevKey) <= 0 {
		return nil, nil, &CorruptedError{Msg: "leaf keys not globally increasing"}
	}
	last := leaf.keys[n-1]
	state.prevKey = &last
	state.totalItems += n

	first := leaf.keys[0]
	return &first, &last, nil
}

func (m *Map[K, V]) validateBranch(b *branchNode[K, V], lower, upper *K, isRoot bool, state *validationState[K, V]) (*K, *K, error) {
	ptr := unsafe.Pointer(b)
	if state.visited.Contains(ptr) {
		return nil, nil, &CorruptedError{Msg: "branch visited more than once"}
	}
	state.visited.Add(ptr)

	n := len(b.keys)
	if n > m.branchCap {
		return nil, nil, &CorruptedError{Msg: fmt.Sprintf("branch has %d keys but capacity is %d", n, m.branchCap)}
	}
	if n == 0 && !isRoot {
		return nil, nil, &CorruptedError{Msg: "non-root branch has no keys"}
	}
	if !isRoot && n < m.minBranchLen() {
		return nil, nil, &CorruptedError{Msg: fmt.Sprintf("branch underfull: has %d keys, minimum is %d", n, m.minBranchLen())}
	}
	if len(b.children) != n+1 {
		return nil, nil, &CorruptedError{Msg: "branch child count does not match key count"}
	}

	for i := 1; i < n; i++ {
		if cmp.Compare(b.keys[i-1], b.keys[i]) >= 0 {
			return nil, nil, &CorruptedError{Msg: "branch keys not strictly increasing"}
		}
	}
	if lower != nil && n > 0 && cmp.Compare(b.keys[0], *lower) < 0 {
		return nil, nil, &CorruptedError{Msg: "branch keys fall below lower bound"}
	}
	if upper != nil && n > 0 && cmp.Compare(b.keys[n-1], *upper) >= 0 {
		return nil, nil, &CorruptedError{Msg: "branch keys exceed upper bound"}
	}

	var subtreeMin, subtreeMax *K
	for i := 0; i <= n; i++ {
		childLower, childUpper := lower, upper
		if i > 0 {
			childLower = &b.keys[i-1]
		}
		if i < n {
			childUpper = &b.keys[i]
		}
		childMin, childMax, err := m.validateNode(b.children[i], childLower, childUpper, false, state)
		if err != nil {
			return nil, nil, err
		}
		if childMin != nil {
			if subtreeMin == nil {
				subtreeMin = childMin
			}
			subtreeMax = childMax
		}
	}
	return subtreeMin, subtreeMax, nil
}
