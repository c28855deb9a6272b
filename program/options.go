package program

const defaultCapacity = 1024

// ArenaOption configures an Arena at construction time.
type ArenaOption func(*arenaConfig)

type arenaConfig struct {
	nodeCapacity  int
	valueCapacity int
}

// WithCapacity preallocates room for nodeCapacity nodes and valueCapacity
// values, mirroring ProgramArena::with_capacity's two independent hints.
func WithCapacity(nodeCapacity, valueCapacity int) ArenaOption {
	return func(c *arenaConfig) {
		c.nodeCapacity = nodeCapacity
		c.valueCapacity = valueCapacity
	}
}

func resolveConfig(opts []ArenaOption) arenaConfig {
	cfg := arenaConfig{nodeCapacity: defaultCapacity, valueCapacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
