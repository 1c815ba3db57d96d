// pkg/alloc/errors.go
package alloc

import "errors"

// ErrAllocationFailed is returned when a node allocation cannot be
// satisfied, either because it would exceed the configured Budget or
// because the underlying arena backend refused the request.
var ErrAllocationFailed = errors.New("alloc: allocation failed")
