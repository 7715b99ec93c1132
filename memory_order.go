package cow

import "strconv"

// MemoryOrder selects the fences placed around an atomic operation.
//
// Every operation on an AtomicWord is performed with a single indivisible
// sync/atomic instruction; the order only decides which of AcquireFence,
// ReleaseFence or FullFence surround it.
type MemoryOrder uint8

const (
	// Relaxed guarantees atomicity only.
	Relaxed MemoryOrder = iota
	// Consume is treated as Acquire.
	Consume
	// Acquire forbids later memory operations from moving before it.
	Acquire
	// Release forbids earlier memory operations from moving after it.
	Release
	// AcqRel combines Acquire and Release.
	AcqRel
	// SeqCst adds a single total order over all SeqCst operations.
	SeqCst
)

var memoryOrderNames = [...]string{
	Relaxed: "relaxed",
	Consume: "consume",
	Acquire: "acquire",
	Release: "release",
	AcqRel:  "acq_rel",
	SeqCst:  "seq_cst",
}

// String implements fmt.Stringer.
func (o MemoryOrder) String() string {
	if int(o) < len(memoryOrderNames) {
		return memoryOrderNames[o]
	}
	return "MemoryOrder(" + strconv.Itoa(int(o)) + ")"
}

