package alloc

import "testing"

func TestAllocatorHeapReserveAndRelease(t *testing.T) {
	a := New(Options{ByteLimit: 1024})

	r, err := a.Allocate(256)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if a.Used() != 256 {
		t.Fatalf("Used() = %d, want 256", a.Used())
	}

	a.Release(r)
	if a.Used() != 0 {
		t.Fatalf("Used() after release = %d, want 0", a.Used())
	}
}

func TestAllocatorRefusesOverBudget(t *testing.T) {
	a := New(Options{ByteLimit: 100})

	r1, err := a.Allocate(80)
	if err != nil {
		t.Fatalf("Allocate(80): %v", err)
	}

	_, err = a.Allocate(40)
	if err == nil {
		t.Fatal("expected AllocationError when exceeding budget")
	}
	var allocErr *AllocationError
	if !asAllocationError(err, &allocErr) {
		t.Fatalf("error %v is not *AllocationError", err)
	}
	if allocErr.Requested != 40 || allocErr.Limit != 100 || allocErr.Used != 80 {
		t.Fatalf("unexpected AllocationError fields: %+v", allocErr)
	}

	a.Release(r1)
	if a.Used() != 0 {
		t.Fatalf("Used() after release = %d, want 0", a.Used())
	}
}

func TestAllocatorReleaseNilIsNoOp(t *testing.T) {
	a := New(Options{ByteLimit: 100})
	a.Release(nil)
	if a.Used() != 0 {
		t.Fatalf("Used() = %d, want 0", a.Used())
	}
}

func TestAllocatorDefaultLimit(t *testing.T) {
	a := New(Options{})
	if a.Limit() != DefaultByteLimit {
		t.Fatalf("Limit() = %d, want %d", a.Limit(), DefaultByteLimit)
	}
}

func asAllocationError(err error, target **AllocationError) bool {
	ae, ok := err.(*AllocationError)
	if !ok {
		return false
	}
	*target = ae
	return true
}
