package morphism_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirobumii/catseq/morphism"
)

// These exercise mergeDedup/mergeDisjoint/hasIntersection indirectly through
// the Channels() view of composed nodes, since the helpers themselves are
// package-private.

func TestChannels_SequentialDedupesSharedChannel(t *testing.T) {
	a := morphism.NewArena()
	n1 := a.Atomic(5, 1, 0, nil)
	n2 := a.Atomic(5, 1, 0, nil)
	seq := a.Sequential(n1, n2)

	got := a.Channels(seq)
	want := []morphism.ChannelID{5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Channels() mismatch (-want +got):\n%s", diff)
	}
}

func TestChannels_SequentialMergesDistinctChannelsSorted(t *testing.T) {
	a := morphism.NewArena()
	n1 := a.Atomic(7, 1, 0, nil)
	n2 := a.Atomic(2, 1, 0, nil)
	seq := a.Sequential(n1, n2)

	assert.Equal(t, []morphism.ChannelID{2, 7}, a.Channels(seq))
}

func TestChannels_ParallelMergesWithoutDedup(t *testing.T) {
	a := morphism.NewArena()
	n1 := a.Atomic(3, 1, 0, nil)
	n2 := a.Atomic(9, 1, 0, nil)
	par, err := a.Parallel(n1, n2)
	require.NoError(t, err)

	assert.Equal(t, []morphism.ChannelID{3, 9}, a.Channels(par))
}

func TestChannels_NestedCompositionStaysSorted(t *testing.T) {
	a := morphism.NewArena()
	n1 := a.Atomic(4, 1, 0, nil)
	n2 := a.Atomic(1, 1, 0, nil)
	n3 := a.Atomic(6, 1, 0, nil)

	inner, err := a.Parallel(n1, n2)
	require.NoError(t, err)
	outer := a.Sequential(inner, n3)

	assert.Equal(t, []morphism.ChannelID{1, 4, 6}, a.Channels(outer))
}
