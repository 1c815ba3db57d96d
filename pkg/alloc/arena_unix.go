//go:build unix || darwin || linux || freebsd || openbsd || netbsd

// pkg/alloc/arena_unix.go
package alloc

import (
	"golang.org/x/sys/unix"
)

// mapAnonymous reserves size bytes of anonymous, zero-filled memory outside
// the Go heap via an anonymous mmap. There is no file backing it, so there
// is no fd, no Truncate, and no Msync — just a raw, non-persistent block
// the process owns until unmapArena releases it.
func mapAnonymous(size int) ([]byte, error) {
	if size <= 0 {
		size = 1
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// unmapArena releases memory obtained from mapAnonymous.
func unmapArena(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}
