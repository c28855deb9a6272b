package incremental

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirobumii/catseq/compiler"
)

func TestMergeSortedEvents_EmptyA(t *testing.T) {
	b := []compiler.Event{{Time: 0, ChannelID: 0, Opcode: 0x01, Data: []byte{1}}}
	got := mergeSortedEvents(nil, b)
	assert.Equal(t, b, got)
}

func TestMergeSortedEvents_EmptyB(t *testing.T) {
	a := []compiler.Event{{Time: 0, ChannelID: 0, Opcode: 0x01, Data: []byte{1}}}
	got := mergeSortedEvents(a, nil)
	assert.Equal(t, a, got)
}

func TestMergeSortedEvents_BlockCopyAPrecedesB(t *testing.T) {
	a := []compiler.Event{
		{Time: 0, ChannelID: 0, Opcode: 0x01, Data: []byte{1}},
		{Time: 10, ChannelID: 0, Opcode: 0x01, Data: []byte{2}},
	}
	b := []compiler.Event{
		{Time: 20, ChannelID: 1, Opcode: 0x01, Data: []byte{3}},
		{Time: 30, ChannelID: 1, Opcode: 0x01, Data: []byte{4}},
	}

	got := mergeSortedEvents(a, b)
	assert.Len(t, got, 4)
	assert.Equal(t, []uint64{0, 10, 20, 30}, timesOf(got))
}

func TestMergeSortedEvents_BlockCopyBPrecedesA(t *testing.T) {
	a := []compiler.Event{{Time: 20, ChannelID: 0, Opcode: 0, Data: nil}}
	b := []compiler.Event{{Time: 0, ChannelID: 1, Opcode: 0, Data: nil}}

	got := mergeSortedEvents(a, b)
	assert.Equal(t, []uint64{0, 20}, timesOf(got))
}

func TestMergeSortedEvents_Interleaved(t *testing.T) {
	a := []compiler.Event{
		{Time: 0, ChannelID: 0},
		{Time: 50, ChannelID: 0},
	}
	b := []compiler.Event{
		{Time: 10, ChannelID: 1},
		{Time: 40, ChannelID: 1},
	}

	got := mergeSortedEvents(a, b)
	assert.Equal(t, []uint64{0, 10, 40, 50}, timesOf(got))
}

func timesOf(events []compiler.Event) []uint64 {
	out := make([]uint64, len(events))
	for i, e := range events {
		out[i] = uint64(e.Time)
	}
	return out
}
