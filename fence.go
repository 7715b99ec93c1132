package cow

import "sync/atomic"

// The fences below are built from a sequentially consistent
// read-modify-write on a goroutine-private word. Every architecture Go
// supports lowers it to a full barrier (LOCK XADD on x86, LDADDAL on
// arm64, a sync pair on the others) and the word is never shared, so the
// fence costs one locked instruction and never contends a cache line.
//
// Go exposes no weaker barrier than that, so AcquireFence and
// ReleaseFence are the conservative superset of the order they name.

// AcquireFence prevents memory operations issued after the call from
// being performed before operations issued before it.
//
//go:nosplit
func AcquireFence() {
	var w uint32
	atomic.AddUint32(&w, 1)
}

// ReleaseFence prevents memory operations issued before the call from
// being performed after operations issued after it.
//
//go:nosplit
func ReleaseFence() {
	var w uint32
	atomic.AddUint32(&w, 1)
}

// FullFence is both an acquire and a release fence and a point in the
// single total order of sequentially consistent operations.
//
//go:nosplit
func FullFence() {
	var w uint32
	atomic.AddUint32(&w, 1)
}

// Fence applies the barrier selected by order: none for Relaxed, an
// acquire fence for Consume and Acquire, a release fence for Release and
// a full fence for AcqRel and SeqCst. Unknown orders get a full fence.
//
//go:nosplit
func Fence(order MemoryOrder) {
	switch order {
	case Relaxed:
	case Consume, Acquire:
		AcquireFence()
	case Release:
		ReleaseFence()
	default:
		FullFence()
	}
}
