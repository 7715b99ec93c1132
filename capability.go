package cow

import "fmt"

// Allocator produces a fresh resource instance. A nil pointer returned
// with a nil error is treated as an allocation failure as well.
type Allocator[T any] interface {
	Allocate() (*T, error)
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc[T any] func() (*T, error)

// Allocate calls f.
func (f AllocatorFunc[T]) Allocate() (*T, error) {
	return f()
}

// Deleter releases a resource instance. A control block calls it exactly
// once per resource, when the last strong reference goes away.
type Deleter[T any] interface {
	Delete(p *T)
}

// DeleterFunc adapts a function to the Deleter interface.
type DeleterFunc[T any] func(p *T)

// Delete calls f.
func (f DeleterFunc[T]) Delete(p *T) {
	f(p)
}

// Copier is implemented by *T when detaching a shared resource needs
// more than a shallow assignment, e.g. to duplicate slices or maps.
type Copier[T any] interface {
	CopyFrom(src *T)
}

func defaultAllocator[T any]() Allocator[T] {
	return AllocatorFunc[T](func() (*T, error) {
		return new(T), nil
	})
}

// defaultDeleter zeroes the value so a stale pointer reads as empty.
func defaultDeleter[T any]() Deleter[T] {
	return DeleterFunc[T](func(p *T) {
		var zero T
		*p = zero
	})
}

// copierOf picks how dst receives src on detach: an explicit function
// first, then a CopyFrom method on *T, then plain assignment.
func copierOf[T any](fn func(dst, src *T)) func(dst, src *T) {
	if fn != nil {
		return fn
	}
	if _, ok := any((*T)(nil)).(Copier[T]); ok {
		return func(dst, src *T) {
			any(dst).(Copier[T]).CopyFrom(src)
		}
	}
	return func(dst, src *T) {
		*dst = *src
	}
}

func allocate[T any](a Allocator[T]) (*T, error) {
	p, err := a.Allocate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if p == nil {
		return nil, ErrAllocationFailed
	}
	return p, nil
}
