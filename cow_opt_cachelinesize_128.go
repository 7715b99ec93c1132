//go:build cow_opt_cachelinesize_128

package cow

// CacheLineSize is fixed at build time by the cow_opt_cachelinesize_128 tag.
const CacheLineSize = 128
