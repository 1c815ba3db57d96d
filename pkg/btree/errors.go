// pkg/btree/errors.go
package btree

import "errors"

var (
	// ErrInvalidCapacity is returned at construction when the requested
	// node capacity falls outside [layout.MinCapacity, layout.MaxCapacity].
	ErrInvalidCapacity = errors.New("btree: invalid capacity")

	// ErrKeyNotFound is returned by the explicit _item forms (GetItem,
	// RemoveItem) when the key is absent; the plain forms signal absence
	// with a bool instead.
	ErrKeyNotFound = errors.New("btree: key not found")
)

// CorruptedError is produced only by CheckInvariants; it is never returned
// from a normal mutating or query operation, which are expected to
// preserve every structural invariant by construction.
type CorruptedError struct {
	// Msg names the specific invariant that failed and, where useful,
	// where in the tree it failed.
	Msg string
}

func (e *CorruptedError) Error() string {
	return "btree: corrupted tree: " + e.Msg
}
