package cow

import (
	"sync/atomic"
	"unsafe"
)

// controlBlock is the bookkeeping shared by every handle of one resource.
//
// The resource is freed exactly once, by the caller whose decrement takes
// the strong count from 1 to 0. The strong owners together hold one weak
// reference, dropped right after that free, so the weak count reaches 0
// only once both counts are 0 and the deleter has returned. The caller
// that takes it to 0 destroys the block.
type controlBlock[T any] struct {
	//lint:ignore U1000 prevents false sharing
	pad [(CacheLineSize - unsafe.Sizeof(struct {
		strong    AtomicWord[int64]
		weak      AtomicWord[int64]
		locked    AtomicFlag
		freed     AtomicFlag
		destroyed AtomicFlag
		resource  unsafe.Pointer
		alloc     Allocator[struct{}]
		deleter   Deleter[struct{}]
		copy      func()
	}{})%CacheLineSize) % CacheLineSize]byte

	strong    AtomicWord[int64]
	weak      AtomicWord[int64]
	locked    AtomicFlag // guards detach
	freed     AtomicFlag
	destroyed AtomicFlag
	resource  atomic.Pointer[T]
	alloc     Allocator[T]
	deleter   Deleter[T]
	copy      func(dst, src *T)
}

func newControlBlock[T any](resource *T, cfg *Config[T]) *controlBlock[T] {
	cb := &controlBlock[T]{
		alloc:   cfg.allocator,
		deleter: cfg.deleter,
		copy:    copierOf(cfg.copier),
	}
	cb.resource.Store(resource)
	// unpublished, no other goroutine can observe it yet
	cb.strong.StoreOrder(1, Relaxed)
	cb.weak.StoreOrder(1, Relaxed)
	return cb
}

// config returns the capabilities a block split off this one inherits.
func (cb *controlBlock[T]) config() *Config[T] {
	return &Config[T]{allocator: cb.alloc, deleter: cb.deleter, copier: cb.copy}
}

func (cb *controlBlock[T]) increaseStrong() {
	if cb.strong.FetchAndAddOrder(1, AcqRel) <= 0 {
		panic(errResourceFreed)
	}
}

// tryIncreaseStrong takes a strong reference only while one still
// exists, so a freed resource can never be revived.
func (cb *controlBlock[T]) tryIncreaseStrong() bool {
	n := cb.strong.LoadOrder(Acquire)
	for n > 0 {
		if cb.strong.CompareAndExchange(&n, n+1) {
			return true
		}
	}
	return false
}

// decreaseStrong drops one strong reference and reports whether it was
// the last one, in which case the resource has been freed.
func (cb *controlBlock[T]) decreaseStrong() bool {
	prev := cb.strong.FetchAndAddOrder(-1, AcqRel)
	if prev > 1 {
		return false
	}
	if prev < 1 {
		panic(errStrongUnderflow)
	}
	// Only the decrement that observed 1 gets here. It happens after
	// every other owner's decrement, hence after all of their writes.
	if cb.freed.TestAndSetOrder(AcqRel) {
		panic(errFreedTwice)
	}
	if r := cb.resource.Swap(nil); r != nil {
		cb.deleter.Delete(r)
	}
	cb.decreaseWeak()
	return true
}

func (cb *controlBlock[T]) increaseWeak() {
	cb.weak.FetchAndAddOrder(1, AcqRel)
}

// decreaseWeak drops one weak reference and reports whether it was the
// last one, in which case the block has been destroyed.
func (cb *controlBlock[T]) decreaseWeak() bool {
	prev := cb.weak.FetchAndAddOrder(-1, AcqRel)
	if prev > 1 {
		return false
	}
	if prev < 1 {
		panic(errWeakUnderflow)
	}
	cb.destroy()
	return true
}

// destroy drops the capabilities of a block nothing references anymore.
func (cb *controlBlock[T]) destroy() {
	cb.destroyed.TestAndSetOrder(AcqRel)
	cb.alloc, cb.deleter, cb.copy = nil, nil, nil
}

func (cb *controlBlock[T]) strongCount() int64 {
	return cb.strong.LoadOrder(Acquire)
}

// weakCount returns the number of Weak references. It is exact only
// while the caller holds a strong reference.
func (cb *controlBlock[T]) weakCount() int64 {
	return cb.weak.LoadOrder(Acquire) - 1
}

func (cb *controlBlock[T]) getResource() *T {
	if cb.freed.IsSetOrder(Acquire) {
		panic(errResourceFreed)
	}
	return cb.resource.Load()
}

func (cb *controlBlock[T]) allocate() (*T, error) {
	return allocate(cb.alloc)
}

// lock acquires the detach lock.
// A test-and-test-and-set spinlock: contended waiters spin on a plain
// load and back off with PAUSE before retrying the exchange.
func (cb *controlBlock[T]) lock() {
	if cb.tryLock() {
		return
	}
	cb.slowLock()
}

func (cb *controlBlock[T]) slowLock() {
	spins := 0
	for !cb.tryLock() {
		delay(&spins)
	}
}

func (cb *controlBlock[T]) tryLock() bool {
	return !cb.locked.IsSetOrder(Relaxed) && !cb.locked.TestAndSetOrder(Acquire)
}

func (cb *controlBlock[T]) unlock() {
	cb.locked.ClearOrder(Release)
}
