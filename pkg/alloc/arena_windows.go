//go:build windows

// pkg/alloc/arena_windows.go
package alloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapAnonymous reserves and commits size bytes of anonymous memory via
// VirtualAlloc. With no file to back the region, MEM_COMMIT|MEM_RESERVE is
// the direct anonymous-memory analogue to a file mapping and needs no
// handle bookkeeping.
func mapAnonymous(size int) ([]byte, error) {
	if size <= 0 {
		size = 1
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// unmapArena releases memory obtained from mapAnonymous.
func unmapArena(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}
