package cow

import (
	"runtime"
	_ "unsafe" // for go:linkname
)

// Pause is a CPU relax hint for busy-wait loops. It executes a short
// burst of PAUSE (or the architecture's yield instruction) without
// entering the scheduler and has no memory-ordering effect.
//
//go:nosplit
func Pause() {
	runtime_doSpin()
}

// delay backs off one step in a spin loop. It spins while the runtime
// considers spinning profitable and yields the processor otherwise.
func delay(spins *int) {
	if //goland:noinspection ALL
	enableSpin && runtime_canSpin(*spins) {
		runtime_doSpin()
		*spins++
	} else {
		runtime.Gosched()
		*spins = 0
	}
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//go:nosplit
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//go:nosplit
func runtime_doSpin()
