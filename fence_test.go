package cow

import "testing"

func TestMemoryOrder_String(t *testing.T) {
	want := map[MemoryOrder]string{
		Relaxed:         "relaxed",
		Consume:         "consume",
		Acquire:         "acquire",
		Release:         "release",
		AcqRel:          "acq_rel",
		SeqCst:          "seq_cst",
		MemoryOrder(42): "MemoryOrder(42)",
	}
	for o, s := range want {
		if got := o.String(); got != s {
			t.Errorf("%d: got %q, want %q", uint8(o), got, s)
		}
	}
}

func TestFence_AllOrders(t *testing.T) {
	for _, o := range allOrders {
		Fence(o)
	}
	Fence(MemoryOrder(200))
	AcquireFence()
	ReleaseFence()
	FullFence()
}

func TestPause_Unbounded(t *testing.T) {
	for range 100000 {
		Pause()
	}
}

func TestDelay_ResetsAfterYield(t *testing.T) {
	spins := 0
	for range 1000 {
		delay(&spins)
		if spins < 0 {
			t.Fatalf("negative spin count %d", spins)
		}
	}
}
