//go:build race

package cow

// raceEnabled reports whether the race detector is compiled in. Stress
// tests shrink their round counts under it.
const raceEnabled = true
