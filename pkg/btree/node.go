// pkg/btree/node.go
package btree

import "bplustree/pkg/alloc"

// kind distinguishes a leafNode from a branchNode without a type switch at
// every call site; both node types implement treeNode so a branch's
// children slice can hold either uniformly.
type kind uint8

const (
	leafKind kind = iota
	branchKind
)

// treeNode is satisfied by *leafNode[K, V] and *branchNode[K, V]. Keeping
// the two node shapes as distinct Go types, unified by this interface,
// lets a branch's children slice hold either one without unsafe casts.
type treeNode[K any, V any] interface {
	nodeKind() kind
}

// leafNode holds len(keys) == len(values) key/value pairs in ascending key
// order, plus the links that thread every leaf into the doubly-linked
// chain used for ordered iteration. res tracks the byte-budget reservation
// charged against the owning Map's allocator; it is released exactly once,
// by freeLeaf.
type leafNode[K any, V any] struct {
	keys     []K
	values   []V
	forward  *leafNode[K, V]
	backward *leafNode[K, V]
	res      *alloc.Reservation
}

func (n *leafNode[K, V]) nodeKind() kind { return leafKind }

// branchNode holds len(keys) separator keys and len(keys)+1 children. For
// every i, all keys reachable under children[i] are < keys[i], and all keys
// under children[i+1] are >= keys[i].
type branchNode[K any, V any] struct {
	keys     []K
	children []treeNode[K, V]
	res      *alloc.Reservation
}

func (n *branchNode[K, V]) nodeKind() kind { return branchKind }
