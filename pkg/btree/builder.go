// pkg/btree/builder.go
package btree

import (
	"fmt"
	"strconv"

	"bplustree/pkg/layout"
)

// ParseCapacity parses a user-visible capacity string, such as a CLI flag
// or config value, and validates it against the layout planner's bounds.
// It performs no allocation; callers still construct the Map itself via
// New or NewWithOptions.
func ParseCapacity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCapacity, s)
	}
	if n < layout.MinCapacity || n > layout.MaxCapacity {
		return 0, fmt.Errorf("%w: %d must be in [%d, %d]", ErrInvalidCapacity, n, layout.MinCapacity, layout.MaxCapacity)
	}
	return n, nil
}
