package cow

// AtomicFlag is a test-and-set boolean. The zero value is clear.
type AtomicFlag struct {
	w AtomicWord[uint32]
}

// TestAndSet sets the flag and reports whether it was already set.
func (f *AtomicFlag) TestAndSet() bool {
	return f.TestAndSetOrder(SeqCst)
}

// TestAndSetOrder sets the flag with one atomic exchange and reports
// whether it was already set.
func (f *AtomicFlag) TestAndSetOrder(order MemoryOrder) bool {
	return f.w.ExchangeOrder(1, order) != 0
}

// Clear resets the flag.
func (f *AtomicFlag) Clear() {
	f.w.Store(0)
}

// ClearOrder resets the flag with the given store order.
func (f *AtomicFlag) ClearOrder(order MemoryOrder) {
	f.w.StoreOrder(0, order)
}

// IsSet reports whether the flag is set.
func (f *AtomicFlag) IsSet() bool {
	return f.w.Load() != 0
}

// IsSetOrder reports whether the flag is set using the given load order.
func (f *AtomicFlag) IsSetOrder(order MemoryOrder) bool {
	return f.w.LoadOrder(order) != 0
}
