package incremental

// Stats is a snapshot of a Compiler's cache effectiveness.
type Stats struct {
	CachedNodes int
	CacheHits   int
	CacheMisses int
	HitRate     float64
}
