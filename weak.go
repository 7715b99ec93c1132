package cow

// Weak references a resource without keeping it alive. It can be turned
// back into a Cow for as long as some strong reference still exists.
//
// A Weak must not be copied after first use.
type Weak[T any] struct {
	_  noCopy
	cb *controlBlock[T]
}

// Upgrade returns a new strong handle, or false once the resource has
// been freed.
func (w *Weak[T]) Upgrade() (*Cow[T], bool) {
	cb := w.cb
	if cb == nil || !cb.tryIncreaseStrong() {
		return nil, false
	}
	return &Cow[T]{cb: cb}, true
}

// Expired reports whether the resource has been freed.
func (w *Weak[T]) Expired() bool {
	return w.cb == nil || w.cb.strongCount() == 0
}

// Release drops the weak reference. Releasing twice does nothing.
func (w *Weak[T]) Release() {
	cb := w.cb
	if cb == nil {
		return
	}
	w.cb = nil
	cb.decreaseWeak()
}
