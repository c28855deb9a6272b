package morphism

// defaultCapacity matches the original implementation's default
// preallocation for the node vector (ArenaContext::new); it is a
// throughput hint, not a limit.
const defaultCapacity = 100_000

// ArenaOption configures an Arena at construction time.
type ArenaOption func(*arenaConfig)

type arenaConfig struct {
	capacity int
}

// WithCapacity preallocates room for n nodes, avoiding repeated slice
// growth for callers that know their program size up front.
func WithCapacity(n int) ArenaOption {
	return func(c *arenaConfig) { c.capacity = n }
}

func resolveConfig(opts []ArenaOption) arenaConfig {
	cfg := arenaConfig{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
