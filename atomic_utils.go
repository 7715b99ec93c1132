package cow

import (
	"sync/atomic"
	"unsafe"
)

// Word is the set of fixed-width integer types an AtomicWord can hold.
// Every member is 4 or 8 bytes wide; floats and narrower integers are
// rejected when the AtomicWord is instantiated.
type Word interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// The helpers below forward to the 32- or 64-bit sync/atomic primitive
// matching the width of T. unsafe.Sizeof(T(0)) is a constant for each
// instantiated shape, so the compiler keeps a single branch.

//go:nosplit
func wordLoad[T Word](addr *T) T {
	if unsafe.Sizeof(T(0)) == unsafe.Sizeof(uint32(0)) {
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	}
	return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
}

//go:nosplit
func wordStore[T Word](addr *T, val T) {
	if unsafe.Sizeof(T(0)) == unsafe.Sizeof(uint32(0)) {
		atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), uint32(val))
	} else {
		atomic.StoreUint64((*uint64)(unsafe.Pointer(addr)), uint64(val))
	}
}

//go:nosplit
func wordSwap[T Word](addr *T, val T) T {
	if unsafe.Sizeof(T(0)) == unsafe.Sizeof(uint32(0)) {
		return T(atomic.SwapUint32((*uint32)(unsafe.Pointer(addr)), uint32(val)))
	}
	return T(atomic.SwapUint64((*uint64)(unsafe.Pointer(addr)), uint64(val)))
}

//go:nosplit
func wordCAS[T Word](addr *T, old, new T) bool {
	if unsafe.Sizeof(T(0)) == unsafe.Sizeof(uint32(0)) {
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(addr)), uint32(old), uint32(new))
	}
	return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), uint64(old), uint64(new))
}

// wordAdd adds delta and returns the new value. Negative deltas of signed
// types wrap through the unsigned conversion, as two's complement does.
//
//go:nosplit
func wordAdd[T Word](addr *T, delta T) T {
	if unsafe.Sizeof(T(0)) == unsafe.Sizeof(uint32(0)) {
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), uint32(delta)))
	}
	return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), uint64(delta)))
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
//lint:ignore U1000 used by go vet copylocks
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
