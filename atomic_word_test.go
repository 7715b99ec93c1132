package cow

import (
	"math"
	"runtime"
	"sync"
	"testing"
	"unsafe"

	uatomic "go.uber.org/atomic"
)

var allOrders = []MemoryOrder{Relaxed, Consume, Acquire, Release, AcqRel, SeqCst}

func TestAtomicWord_Int32Sequence(t *testing.T) {
	var a AtomicWord[int32]

	a.Increment()
	if v := a.Load(); v != 1 {
		t.Fatalf("after Increment: got %d, want 1", v)
	}
	if old := a.FetchAndAdd(5); old != 1 {
		t.Fatalf("FetchAndAdd returned %d, want 1", old)
	}
	if v := a.Load(); v != 6 {
		t.Fatalf("after FetchAndAdd: got %d, want 6", v)
	}

	expected := int32(6)
	if !a.CompareAndExchange(&expected, 10) {
		t.Fatal("CompareAndExchange(6, 10) failed")
	}
	if v := a.Load(); v != 10 {
		t.Fatalf("after CompareAndExchange: got %d, want 10", v)
	}

	expected = 6
	if a.CompareAndExchange(&expected, 10) {
		t.Fatal("CompareAndExchange with stale expected succeeded")
	}
	if expected != 10 {
		t.Fatalf("expected not updated: got %d, want 10", expected)
	}
	if v := a.Load(); v != 10 {
		t.Fatalf("value changed by failed CompareAndExchange: %d", v)
	}
}

func TestAtomicWord_Widths(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		testWordValues(t, []int32{math.MinInt32, -1, 0, 1, math.MaxInt32})
	})
	t.Run("uint32", func(t *testing.T) {
		testWordValues(t, []uint32{0, 1, 1 << 31, math.MaxUint32})
	})
	t.Run("int64", func(t *testing.T) {
		testWordValues(t, []int64{math.MinInt64, -1, 0, 1, math.MaxInt64})
	})
	t.Run("uint64", func(t *testing.T) {
		testWordValues(t, []uint64{0, 1, 1 << 63, math.MaxUint64})
	})
	t.Run("int", func(t *testing.T) {
		testWordValues(t, []int{math.MinInt, -1, 0, 1, math.MaxInt})
	})
	t.Run("uintptr", func(t *testing.T) {
		testWordValues(t, []uintptr{0, 1, ^uintptr(0)})
	})
	t.Run("named", func(t *testing.T) {
		type state uint32
		testWordValues(t, []state{0, 3, 0xdeadbeef})
	})
}

func testWordValues[T Word](t *testing.T, values []T) {
	t.Helper()
	for _, order := range allOrders {
		var a AtomicWord[T]
		for _, v := range values {
			a.StoreOrder(v, order)
			if got := a.LoadOrder(order); got != v {
				t.Errorf("%v: Store/Load got %v, want %v", order, got, v)
			}
			prev := a.ExchangeOrder(v+1, order)
			if prev != v {
				t.Errorf("%v: Exchange returned %v, want %v", order, prev, v)
			}
			if got := a.FetchAndAddOrder(^T(0), order); got != v+1 {
				t.Errorf("%v: FetchAndAdd returned %v, want %v", order, got, v+1)
			}
			if got := a.LoadOrder(order); got != v {
				t.Errorf("%v: after FetchAndAdd(-1) got %v, want %v", order, got, v)
			}
		}
	}
}

func TestAtomicWord_Wraparound(t *testing.T) {
	var u AtomicWord[uint32]
	u.Decrement()
	if v := u.Load(); v != math.MaxUint32 {
		t.Fatalf("uint32 0-1: got %d", v)
	}
	u.Increment()
	if v := u.Load(); v != 0 {
		t.Fatalf("uint32 max+1: got %d", v)
	}

	i := NewAtomicWord[int64](math.MaxInt64)
	if old := i.FetchAndIncrement(); old != math.MaxInt64 {
		t.Fatalf("FetchAndIncrement returned %d", old)
	}
	if v := i.Load(); v != math.MinInt64 {
		t.Fatalf("int64 max+1: got %d", v)
	}
}

func TestAtomicWord_ConvenienceOps(t *testing.T) {
	a := NewAtomicWord[uint64](100)
	a.Add(20)
	a.Subtract(30)
	if v := a.Load(); v != 90 {
		t.Fatalf("Add/Subtract: got %d, want 90", v)
	}
	if old := a.FetchAndSub(10); old != 90 {
		t.Fatalf("FetchAndSub returned %d, want 90", old)
	}
	if old := a.FetchAndDecrement(); old != 80 {
		t.Fatalf("FetchAndDecrement returned %d, want 80", old)
	}
	if v := a.AddAndFetch(21); v != 100 {
		t.Fatalf("AddAndFetch returned %d, want 100", v)
	}
	if !a.CompareAndSwap(100, 1) || a.CompareAndSwap(100, 2) {
		t.Fatal("CompareAndSwap")
	}
	if v := a.Exchange(7); v != 1 {
		t.Fatalf("Exchange returned %d, want 1", v)
	}
	expected := uint64(7)
	if !a.CompareAndExchangeWeak(&expected, 8) || a.Load() != 8 {
		t.Fatal("CompareAndExchangeWeak")
	}
}

func TestAtomicWord_Alignment(t *testing.T) {
	var s struct {
		b byte
		w AtomicWord[uint64]
	}
	s.b = 1
	if p := uintptr(unsafe.Pointer(&s.w.v)); p%8 != 0 {
		t.Fatalf("64-bit word misaligned at %#x", p)
	}
}

func TestAtomicWord_ConcurrentAdd(t *testing.T) {
	const goroutines = 16
	const ops = 10000

	var a AtomicWord[int64]
	var oracle uatomic.Int64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := range goroutines {
		go func(id int) {
			defer wg.Done()
			order := allOrders[id%len(allOrders)]
			for i := range ops {
				delta := int64(i%7) - 3
				a.FetchAndAddOrder(delta, order)
				oracle.Add(delta)
				if i%64 == 0 {
					runtime.Gosched()
				}
			}
		}(g)
	}
	wg.Wait()

	if got, want := a.Load(), oracle.Load(); got != want {
		t.Fatalf("sum mismatch: got %d, want %d", got, want)
	}
}

func TestAtomicWord_ConcurrentCompareAndExchange(t *testing.T) {
	const goroutines = 8
	const ops = 5000

	var a AtomicWord[uint32]
	var failures uatomic.Int64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range ops {
				cur := a.LoadOrder(Relaxed)
				for !a.CompareAndExchange(&cur, cur+1) {
					failures.Inc()
				}
			}
		}()
	}
	wg.Wait()

	if got := a.Load(); got != goroutines*ops {
		t.Fatalf("got %d, want %d (failed attempts %d)", got, goroutines*ops, failures.Load())
	}
}

func TestAtomicWord_ReleaseAcquirePublication(t *testing.T) {
	rounds := 1000
	if raceEnabled {
		rounds /= 10
	}

	for range rounds {
		var ready AtomicWord[uint32]
		var data [4]int
		done := make(chan struct{})

		go func() {
			defer close(done)
			for ready.LoadOrder(Acquire) == 0 {
				Pause()
			}
			for i := range data {
				if data[i] != i+1 {
					t.Errorf("data[%d] = %d after acquire", i, data[i])
					return
				}
			}
		}()

		for i := range data {
			data[i] = i + 1
		}
		ready.StoreOrder(1, Release)
		<-done
	}
}
