//go:build cow_opt_cachelinesize_32

package cow

// CacheLineSize is fixed at build time by the cow_opt_cachelinesize_32 tag.
const CacheLineSize = 32
