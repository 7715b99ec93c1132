//go:build cow_opt_nospin

package cow

// enableSpin is false: contended spin-locks yield the processor on every
// failed attempt.
const enableSpin = false
