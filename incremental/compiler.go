package incremental

import (
	"github.com/hirobumii/catseq/compiler"
	"github.com/hirobumii/catseq/morphism"
)

// Compiler caches compiled subtree event lists keyed by morphism.Handle.
//
// A nil cache map means the Compiler is disabled: Compile then delegates
// straight to compiler.Compile and never touches cache bookkeeping. This
// keeps Disable a true zero-cost mode switch rather than a flag checked on
// every node.
type Compiler struct {
	cache       map[morphism.Handle][]compiler.Event
	cacheHits   int
	cacheMisses int
}

// New returns a Compiler with caching enabled.
func New() *Compiler {
	return &Compiler{cache: make(map[morphism.Handle][]compiler.Event)}
}

// IsEnabled reports whether this Compiler is currently caching.
func (c *Compiler) IsEnabled() bool { return c.cache != nil }

// Enable turns caching on, starting from an empty cache. A no-op if
// already enabled.
func (c *Compiler) Enable() {
	if c.cache == nil {
		c.cache = make(map[morphism.Handle][]compiler.Event)
	}
}

// Disable turns caching off and discards any cached entries and counters.
func (c *Compiler) Disable() {
	c.cache = nil
	c.cacheHits = 0
	c.cacheMisses = 0
}

// Clear drops all cached entries and resets hit/miss counters without
// changing the enabled/disabled mode.
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache = make(map[morphism.Handle][]compiler.Event)
	}
	c.cacheHits = 0
	c.cacheMisses = 0
}

// Stats reports this Compiler's cache effectiveness so far.
func (c *Compiler) Stats() Stats {
	total := c.cacheHits + c.cacheMisses
	var hitRate float64
	if total > 0 {
		hitRate = float64(c.cacheHits) / float64(total)
	}
	return Stats{
		CachedNodes: len(c.cache),
		CacheHits:   c.cacheHits,
		CacheMisses: c.cacheMisses,
		HitRate:     hitRate,
	}
}

// Compile returns root's event list in absolute time, reusing cached
// subtree results where possible. If the Compiler is disabled, this is
// exactly compiler.Compile(arena, root).
func (c *Compiler) Compile(arena *morphism.Arena, root morphism.Handle) []compiler.Event {
	if c.cache == nil {
		return compiler.Compile(arena, root)
	}
	local := c.compileNode(arena, root)
	return append([]compiler.Event(nil), local...)
}

// compileNode returns node's event list relative to its own t=0, populating
// the cache on a miss. The returned slice is cache-owned and must not be
// mutated by callers — Compile copies it before handing it out, and
// Sequential/Parallel only ever read from it.
func (c *Compiler) compileNode(arena *morphism.Arena, node morphism.Handle) []compiler.Event {
	if cached, ok := c.cache[node]; ok {
		c.cacheHits++
		return cached
	}
	c.cacheMisses++

	view := arena.Node(node)
	var events []compiler.Event
	switch view.Kind {
	case morphism.KindAtomic:
		events = []compiler.Event{{
			Time:      0,
			ChannelID: view.ChannelID,
			Opcode:    view.Payload.Opcode,
			Data:      view.Payload.Data,
		}}

	case morphism.KindSequential:
		lhsEvents := c.compileNode(arena, view.LHS)
		rhsEvents := c.compileNode(arena, view.RHS)
		lhsDuration := arena.Duration(view.LHS)

		events = make([]compiler.Event, 0, len(lhsEvents)+len(rhsEvents))
		events = append(events, lhsEvents...)
		for _, e := range rhsEvents {
			events = append(events, compiler.Event{
				Time:      e.Time + lhsDuration,
				ChannelID: e.ChannelID,
				Opcode:    e.Opcode,
				Data:      e.Data,
			})
		}
		// Sequential guarantees order: every lhs event < lhsDuration <=
		// every shifted rhs event, so no re-sort is needed.

	case morphism.KindParallel:
		lhsEvents := c.compileNode(arena, view.LHS)
		rhsEvents := c.compileNode(arena, view.RHS)
		events = mergeSortedEvents(lhsEvents, rhsEvents)
	}

	c.cache[node] = events
	return events
}
