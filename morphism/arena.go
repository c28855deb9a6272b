package morphism

import "fmt"

// Arena is append-only storage for a single morphism composition DAG.
// Nodes are addressed by Handle, a dense index assigned in creation order;
// because every combinator only ever references already-created handles,
// the storage is trivially a topologically-ordered DAG and cycles cannot
// be constructed.
//
// Arena is not safe for concurrent use — see the package doc.
type Arena struct {
	nodes []nodeData
}

// NewArena returns an empty Arena ready to accept Atomic nodes.
func NewArena(opts ...ArenaOption) *Arena {
	cfg := resolveConfig(opts)
	return &Arena{nodes: make([]nodeData, 0, cfg.capacity)}
}

// Len reports the number of nodes currently stored.
func (a *Arena) Len() int { return len(a.nodes) }

// Clear drops every node, resetting the Arena to empty. Handles obtained
// before Clear become dangling and must not be used again; the Arena does
// not detect or reject stale handles after a Clear beyond the ordinary
// out-of-range check.
func (a *Arena) Clear() { a.nodes = a.nodes[:0] }

func (a *Arena) get(h Handle) *nodeData {
	if int(h) >= len(a.nodes) {
		panic(fmt.Sprintf("morphism: handle %d out of range (arena has %d nodes)", h, len(a.nodes)))
	}
	return &a.nodes[h]
}

// Atomic interns a single timed, per-channel operation and returns its
// handle. The call always succeeds; data is moved into the returned node
// by slice-header copy — the caller must not mutate it afterwards.
func (a *Arena) Atomic(channelID ChannelID, duration Time, opcode uint16, data []byte) Handle {
	n := nodeData{
		kind:      KindAtomic,
		channelID: channelID,
		payload:   Payload{Opcode: opcode, Data: data},
		duration:  duration,
	}
	n.chanBuf[0] = channelID

	id := Handle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return id
}

// Sequential composes lhs then rhs: duration adds, and the channel sets
// union (deduplicated, since the same channel may appear on both sides of
// a serial composition). Always succeeds.
func (a *Arena) Sequential(lhs, rhs Handle) Handle {
	lhsData := a.get(lhs)
	rhsData := a.get(rhs)

	duration := lhsData.duration + rhsData.duration
	channels := mergeDedup(a.channelSlice(lhs, lhsData), a.channelSlice(rhs, rhsData))

	n := nodeData{
		kind:     KindSequential,
		lhs:      lhs,
		rhs:      rhs,
		duration: duration,
		channels: channels,
	}
	id := Handle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return id
}

// Parallel composes lhs and rhs to run concurrently. It first runs a
// two-pointer scan over the (already sorted) child channel lists; any
// shared channel aborts with ErrChannelConflict and leaves the Arena
// unchanged. On success, duration is the max of the two children and the
// channel set is a plain sorted merge — no dedup pass, since disjointness
// was just proven.
func (a *Arena) Parallel(lhs, rhs Handle) (Handle, error) {
	lhsData := a.get(lhs)
	rhsData := a.get(rhs)

	lhsChans := a.channelSlice(lhs, lhsData)
	rhsChans := a.channelSlice(rhs, rhsData)
	if hasIntersection(lhsChans, rhsChans) {
		return 0, ErrChannelConflict
	}

	duration := lhsData.duration
	if rhsData.duration > duration {
		duration = rhsData.duration
	}
	channels := mergeDisjoint(lhsChans, rhsChans)

	n := nodeData{
		kind:     KindParallel,
		lhs:      lhs,
		rhs:      rhs,
		duration: duration,
		channels: channels,
	}
	id := Handle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return id, nil
}

// channelSlice returns the precomputed channel list for h, reading the
// inline single-element buffer for Atomic nodes instead of allocating.
func (a *Arena) channelSlice(h Handle, d *nodeData) []ChannelID {
	if d.kind == KindAtomic {
		return d.chanBuf[:1]
	}
	return d.channels
}
