package cow

// Config defines the capabilities a Cow is built with.
type Config[T any] struct {
	allocator Allocator[T]
	deleter   Deleter[T]
	copier    func(dst, src *T)
}

func newConfig[T any](options []func(*Config[T])) *Config[T] {
	c := &Config[T]{
		allocator: defaultAllocator[T](),
		deleter:   defaultDeleter[T](),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// WithAllocator sets the allocator used for the initial resource of Make
// and for every copy made on detach. The default allocator is new(T).
func WithAllocator[T any](a Allocator[T]) func(*Config[T]) {
	return func(c *Config[T]) {
		if a != nil {
			c.allocator = a
		}
	}
}

// WithDeleter sets the function that releases a resource once its last
// strong reference is gone. The default deleter zeroes the value.
func WithDeleter[T any](d Deleter[T]) func(*Config[T]) {
	return func(c *Config[T]) {
		if d != nil {
			c.deleter = d
		}
	}
}

// WithCopier sets how a detached copy receives the shared value. It takes
// precedence over a CopyFrom method on *T; without either, the value is
// assigned.
func WithCopier[T any](fn func(dst, src *T)) func(*Config[T]) {
	return func(c *Config[T]) {
		c.copier = fn
	}
}
