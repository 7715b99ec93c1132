package cow

import "fmt"

// Cow is a copy-on-write shared pointer to a value of type T.
//
// Handles made with Clone share one resource and one reference count.
// Reading never copies. Writing through a handle whose resource is shared
// first gives that handle a private copy, so a write is never seen through
// any other handle.
//
// Go has no copy constructors or destructors, so the lifecycle of a handle
// is explicit:
//
//	Clone       copy construction
//	Assign      copy assignment
//	Move        move construction
//	MoveAssign  move assignment
//	Release     destruction
//
// Goroutines share a resource by each holding their own Clone; those
// clones may be read, written and released concurrently. A single handle
// may be read and cloned from several goroutines, but must not be used
// while another goroutine writes, moves, assigns or releases it.
//
// A Cow must not be copied after first use.
type Cow[T any] struct {
	_  noCopy
	cb *controlBlock[T]
}

// New returns a handle that owns resource. alloc produces the private
// copies made on write and deleter releases each resource once its last
// reference is gone.
//
// A nil resource is reported as ErrAllocationFailed and a nil capability
// as ErrNilCapability.
func New[T any](
	resource *T,
	alloc Allocator[T],
	deleter Deleter[T],
	options ...func(*Config[T]),
) (*Cow[T], error) {
	if resource == nil {
		return nil, fmt.Errorf("%w: nil resource", ErrAllocationFailed)
	}
	if alloc == nil || deleter == nil {
		return nil, ErrNilCapability
	}
	cfg := newConfig(options)
	cfg.allocator, cfg.deleter = alloc, deleter
	return &Cow[T]{cb: newControlBlock(resource, cfg)}, nil
}

// Make returns a handle owning a fresh resource that holds v. The
// resource comes from the configured allocator (new(T) by default), so
// Make fails only when a custom allocator does.
//
// Parameters:
//   - WithAllocator option for the allocator
//   - WithDeleter option for the deleter
//   - WithCopier option for the detach copy
func Make[T any](v T, options ...func(*Config[T])) (*Cow[T], error) {
	cfg := newConfig(options)
	p, err := allocate(cfg.allocator)
	if err != nil {
		return nil, err
	}
	*p = v
	return &Cow[T]{cb: newControlBlock(p, cfg)}, nil
}

// Valid reports whether the handle references a resource. Moved-from and
// released handles are empty.
func (c *Cow[T]) Valid() bool {
	return c.cb != nil
}

// Clone returns a new handle sharing the resource. Cloning an empty
// handle panics.
func (c *Cow[T]) Clone() *Cow[T] {
	cb := c.block()
	cb.increaseStrong()
	return &Cow[T]{cb: cb}
}

// Assign makes c share src's resource, releasing the one c held. Assigning
// a handle to itself, or to a handle of the same resource, changes
// nothing.
func (c *Cow[T]) Assign(src *Cow[T]) {
	if c == src {
		return
	}
	cb := src.block()
	if c.cb == cb {
		return
	}
	cb.increaseStrong()
	old := c.cb
	c.cb = cb
	if old != nil {
		old.decreaseStrong()
	}
}

// Move returns a handle that takes over c's reference. c is left empty
// and the reference count is unchanged.
func (c *Cow[T]) Move() *Cow[T] {
	cb := c.block()
	c.cb = nil
	return &Cow[T]{cb: cb}
}

// MoveAssign takes over src's reference, releasing the one c held. src
// is left empty.
func (c *Cow[T]) MoveAssign(src *Cow[T]) {
	if c == src {
		return
	}
	cb := src.block()
	src.cb = nil
	old := c.cb
	c.cb = cb
	if old != nil {
		old.decreaseStrong()
	}
}

// Release drops the handle's reference and leaves it empty. The resource
// is freed when the last reference goes. Releasing an empty handle does
// nothing.
func (c *Cow[T]) Release() {
	cb := c.cb
	if cb == nil {
		return
	}
	c.cb = nil
	cb.decreaseStrong()
}

// Read returns the resource without copying it. The value may be shared
// with other handles and must not be modified through the returned
// pointer.
func (c *Cow[T]) Read() *T {
	return c.block().getResource()
}

// Load returns a copy of the value.
func (c *Cow[T]) Load() T {
	return *c.Read()
}

// Write returns the resource for modification, first replacing a shared
// resource with a private copy. The pointer stays private until c is
// shared again by Clone, Assign or a Weak upgrade.
//
// If the copy cannot be allocated, Write returns the allocator's error
// wrapped in ErrAllocationFailed and c still shares the old resource.
func (c *Cow[T]) Write() (*T, error) {
	cb := c.block()
	if cb.strongCount() == 1 {
		return cb.getResource(), nil
	}
	if err := c.detach(cb); err != nil {
		return nil, err
	}
	return c.cb.getResource(), nil
}

// Update calls fn with the resource prepared as by Write.
func (c *Cow[T]) Update(fn func(v *T)) error {
	p, err := c.Write()
	if err != nil {
		return err
	}
	fn(p)
	return nil
}

// Detach gives c a private copy of the resource if it is shared.
func (c *Cow[T]) Detach() error {
	cb := c.block()
	if cb.strongCount() == 1 {
		return nil
	}
	return c.detach(cb)
}

// detach moves c from the shared block cb to a new block holding a copy.
//
// The whole split runs under cb's lock: the copy, the new block and the
// decrement of cb. A writer that waited for the lock re-checks the count
// and keeps cb when it has become the only owner, so concurrent writers
// on a pair of handles produce exactly one copy. The old value is only
// read while the lock is held and this handle still counts as an owner,
// so no other handle can be writing it.
func (c *Cow[T]) detach(cb *controlBlock[T]) error {
	cb.lock()
	defer cb.unlock()
	if cb.strongCount() == 1 {
		return nil
	}
	p, err := cb.allocate()
	if err != nil {
		return err
	}
	cb.copy(p, cb.getResource())
	c.cb = newControlBlock(p, cb.config())
	cb.decreaseStrong()
	return nil
}

// IsUnique reports whether c is the only strong reference to its
// resource at the time of the call.
func (c *Cow[T]) IsUnique() bool {
	return c.cb != nil && c.cb.strongCount() == 1
}

// UseCount returns the number of handles sharing the resource, or 0 for
// an empty handle.
func (c *Cow[T]) UseCount() int {
	if c.cb == nil {
		return 0
	}
	return int(c.cb.strongCount())
}

// WeakCount returns the number of live weak references to the resource,
// or 0 for an empty handle.
func (c *Cow[T]) WeakCount() int {
	if c.cb == nil {
		return 0
	}
	return int(c.cb.weakCount())
}

// Downgrade returns a weak reference to the resource.
func (c *Cow[T]) Downgrade() *Weak[T] {
	cb := c.block()
	cb.increaseWeak()
	return &Weak[T]{cb: cb}
}

// String implement the formatting output interface fmt.Stringer
func (c *Cow[T]) String() string {
	if c.cb == nil {
		return "Cow[]"
	}
	return "Cow[" + fmt.Sprint(*c.Read()) + "]"
}

//go:nosplit
func (c *Cow[T]) block() *controlBlock[T] {
	cb := c.cb
	if cb == nil {
		panic(errEmptyHandle)
	}
	return cb
}
