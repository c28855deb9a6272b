package compiler

import "github.com/hirobumii/catseq/morphism"

// Event is one compiled, time-stamped operation on a single channel.
//
// Data is shared storage copied out of the originating morphism.Payload —
// callers must treat it as read-only, matching the same-slice-shared,
// GC-managed lifetime convention documented on morphism.Payload.
type Event struct {
	Time      morphism.Time
	ChannelID morphism.ChannelID
	Opcode    uint16
	Data      []byte
}
