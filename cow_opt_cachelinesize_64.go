//go:build cow_opt_cachelinesize_64

package cow

// CacheLineSize is fixed at build time by the cow_opt_cachelinesize_64 tag.
const CacheLineSize = 64
