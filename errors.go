package cow

import "errors"

var (
	// ErrAllocationFailed is returned when a resource could not be
	// obtained, either at construction or while detaching a shared
	// resource. The operation that failed has no side effect.
	ErrAllocationFailed = errors.New("cow: allocation failed")

	// ErrNilCapability is returned by New when the allocator or the
	// deleter is nil.
	ErrNilCapability = errors.New("cow: nil allocator or deleter")
)

// Messages of the panics raised on broken invariants. They indicate a
// bug in the caller, never an expected runtime condition.
const (
	errResourceFreed   = "cow: resource already freed"
	errEmptyHandle     = "cow: use of an empty handle"
	errStrongUnderflow = "cow: strong reference count underflow"
	errWeakUnderflow   = "cow: weak reference count underflow"
	errFreedTwice      = "cow: resource freed twice"
)
