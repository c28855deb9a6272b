package compiler

import "github.com/hirobumii/catseq/morphism"

// CompileByBoard compiles root and groups the resulting events by board,
// assuming the convention (shared with morphism.ChannelID's doc comment)
// that the high 16 bits of a ChannelID encode the board id.
func CompileByBoard(arena *morphism.Arena, root morphism.Handle) map[uint16][]Event {
	events := Compile(arena, root)

	grouped := make(map[uint16][]Event)
	for _, e := range events {
		boardID := uint16(e.ChannelID >> 16)
		grouped[boardID] = append(grouped[boardID], e)
	}
	return grouped
}
