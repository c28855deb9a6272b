package morphism

// Node returns a read-only snapshot of the node at h. It panics if h is
// out of range for this Arena — an out-of-range handle is a programmer
// error (the core assumes every handle it is given was returned by this
// same Arena), not a recoverable condition.
func (a *Arena) Node(h Handle) NodeView {
	d := a.get(h)
	return NodeView{
		Kind:      d.kind,
		Duration:  d.duration,
		Channels:  a.channelSlice(h, d),
		ChannelID: d.channelID,
		Payload:   d.payload,
		LHS:       d.lhs,
		RHS:       d.rhs,
	}
}

// Duration returns the precomputed total duration of the subtree rooted
// at h, in O(1).
func (a *Arena) Duration(h Handle) Time {
	return a.get(h).duration
}

// Channels returns the precomputed, sorted, deduplicated channel set of
// the subtree rooted at h, in O(1). The returned slice is shared storage
// and must not be mutated by the caller.
func (a *Arena) Channels(h Handle) []ChannelID {
	d := a.get(h)
	return a.channelSlice(h, d)
}
