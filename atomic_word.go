package cow

import "sync/atomic"

// AtomicWord holds one 4- or 8-byte integer and exposes ordered atomic
// operations on it. The zero value holds 0 and is ready to use.
//
// Every read or write of the stored value goes through one of the methods
// below; each method performs exactly one indivisible sync/atomic
// instruction and the MemoryOrder argument only chooses the fences placed
// around it. Methods without an Order suffix use SeqCst.
//
// An AtomicWord must not be copied after first use.
type AtomicWord[T Word] struct {
	_ noCopy
	// 64-bit alignment on 32-bit platforms
	_ [0]atomic.Uint64
	v T
}

// NewAtomicWord returns an AtomicWord holding v.
func NewAtomicWord[T Word](v T) *AtomicWord[T] {
	a := &AtomicWord[T]{}
	wordStore(&a.v, v)
	return a
}

// Load returns the current value.
func (a *AtomicWord[T]) Load() T {
	return a.LoadOrder(SeqCst)
}

// LoadOrder returns the current value. Relaxed places no fence, Consume
// and Acquire place an acquire fence after the read, and every other
// order is treated as SeqCst: a full fence before and after the read.
func (a *AtomicWord[T]) LoadOrder(order MemoryOrder) T {
	switch order {
	case Relaxed:
		return wordLoad(&a.v)
	case Consume, Acquire:
		v := wordLoad(&a.v)
		AcquireFence()
		return v
	default:
		FullFence()
		v := wordLoad(&a.v)
		FullFence()
		return v
	}
}

// Store writes val.
func (a *AtomicWord[T]) Store(val T) {
	a.StoreOrder(val, SeqCst)
}

// StoreOrder writes val. Relaxed places no fence, Release places a
// release fence before the write, and every other order is treated as
// SeqCst: a full fence before and after the write.
func (a *AtomicWord[T]) StoreOrder(val T, order MemoryOrder) {
	switch order {
	case Relaxed:
		wordStore(&a.v, val)
	case Release:
		ReleaseFence()
		wordStore(&a.v, val)
	default:
		FullFence()
		wordStore(&a.v, val)
		FullFence()
	}
}

// Exchange stores val and returns the previous value.
func (a *AtomicWord[T]) Exchange(val T) T {
	return a.ExchangeOrder(val, SeqCst)
}

// ExchangeOrder stores val and returns the previous value as one
// indivisible swap. Every order but Relaxed is fenced on both sides.
func (a *AtomicWord[T]) ExchangeOrder(val T, order MemoryOrder) T {
	if order == Relaxed {
		return wordSwap(&a.v, val)
	}
	rmwFence(order)
	old := wordSwap(&a.v, val)
	rmwFence(order)
	return old
}

// CompareAndExchange stores desired if the current value equals
// *expected and reports true. Otherwise it leaves the value unchanged,
// writes the observed value to *expected and reports false.
//
// It never fails spuriously: a failed hardware compare whose observed
// value still equals *expected is retried.
func (a *AtomicWord[T]) CompareAndExchange(expected *T, desired T) bool {
	for {
		if wordCAS(&a.v, *expected, desired) {
			return true
		}
		if cur := wordLoad(&a.v); cur != *expected {
			*expected = cur
			return false
		}
	}
}

// CompareAndExchangeWeak is CompareAndExchange. Go offers no
// compare-and-swap that may fail spuriously, so both forms are strong.
func (a *AtomicWord[T]) CompareAndExchangeWeak(expected *T, desired T) bool {
	return a.CompareAndExchange(expected, desired)
}

// CompareAndSwap stores new if the current value equals old and reports
// whether it did.
func (a *AtomicWord[T]) CompareAndSwap(old, new T) bool {
	return wordCAS(&a.v, old, new)
}

// FetchAndAdd adds delta and returns the value held before the addition.
func (a *AtomicWord[T]) FetchAndAdd(delta T) T {
	return a.FetchAndAddOrder(delta, SeqCst)
}

// FetchAndAddOrder adds delta and returns the value held before the
// addition. Every order but Relaxed is fenced on both sides.
func (a *AtomicWord[T]) FetchAndAddOrder(delta T, order MemoryOrder) T {
	if order == Relaxed {
		return wordAdd(&a.v, delta) - delta
	}
	rmwFence(order)
	n := wordAdd(&a.v, delta)
	rmwFence(order)
	return n - delta
}

// AddAndFetch adds delta and returns the resulting value.
func (a *AtomicWord[T]) AddAndFetch(delta T) T {
	return a.FetchAndAdd(delta) + delta
}

// FetchAndSub subtracts delta and returns the value held before.
func (a *AtomicWord[T]) FetchAndSub(delta T) T {
	return a.FetchAndAdd(-delta)
}

// FetchAndIncrement adds one and returns the value held before.
func (a *AtomicWord[T]) FetchAndIncrement() T {
	return a.FetchAndAdd(1)
}

// FetchAndDecrement subtracts one and returns the value held before.
func (a *AtomicWord[T]) FetchAndDecrement() T {
	return a.FetchAndAdd(^T(0))
}

// Increment adds one.
func (a *AtomicWord[T]) Increment() {
	a.FetchAndAdd(1)
}

// Decrement subtracts one.
func (a *AtomicWord[T]) Decrement() {
	a.FetchAndAdd(^T(0))
}

// Add adds delta.
func (a *AtomicWord[T]) Add(delta T) {
	a.FetchAndAdd(delta)
}

// Subtract subtracts delta.
func (a *AtomicWord[T]) Subtract(delta T) {
	a.FetchAndAdd(-delta)
}

// rmwFence is the fence placed on each side of a read-modify-write.
// Acquire, Release and AcqRel all need an acq_rel fence, which in Go is
// the same full barrier SeqCst uses.
//
//go:nosplit
func rmwFence(order MemoryOrder) {
	if order == SeqCst {
		FullFence()
	} else {
		Fence(AcqRel)
	}
}
