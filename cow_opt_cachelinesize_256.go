//go:build cow_opt_cachelinesize_256

package cow

// CacheLineSize is fixed at build time by the cow_opt_cachelinesize_256 tag.
const CacheLineSize = 256
