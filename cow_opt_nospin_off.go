//go:build !cow_opt_nospin

package cow

// enableSpin lets contended spin-locks call runtime_doSpin, which issues
// the CPU's PAUSE instruction, before yielding the processor.
const enableSpin = true
