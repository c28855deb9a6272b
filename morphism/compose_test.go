package morphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirobumii/catseq/morphism"
)

func TestComposeSequence_Empty(t *testing.T) {
	a := morphism.NewArena()
	_, ok := a.ComposeSequence(nil)
	assert.False(t, ok)
}

func TestComposeSequence_Single(t *testing.T) {
	a := morphism.NewArena()
	h := a.Atomic(0, 42, 0, nil)

	got, ok := a.ComposeSequence([]morphism.Handle{h})
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestComposeSequence_BalancedDepth(t *testing.T) {
	// 8 atomics folded pairwise should never exceed depth ceil(log2(8))+1 = 4,
	// unlike a left-to-right reduce which would build depth 8.
	a := morphism.NewArena()
	handles := make([]morphism.Handle, 8)
	for i := range handles {
		handles[i] = a.Atomic(morphism.ChannelID(i), 1, 0, nil)
	}

	root, ok := a.ComposeSequence(handles)
	require.True(t, ok)
	assert.Equal(t, morphism.Time(8), a.Duration(root))
	assert.LessOrEqual(t, a.MaxDepth(root), 4)
}

func TestComposeSequence_OddTail(t *testing.T) {
	a := morphism.NewArena()
	handles := make([]morphism.Handle, 5)
	for i := range handles {
		handles[i] = a.Atomic(0, 1, 0, nil)
	}

	root, ok := a.ComposeSequence(handles)
	require.True(t, ok)
	assert.Equal(t, morphism.Time(5), a.Duration(root))
	assert.Equal(t, 5, a.LeafCount(root))
}

func TestComposeParallel_Disjoint(t *testing.T) {
	a := morphism.NewArena()
	handles := make([]morphism.Handle, 4)
	for i := range handles {
		handles[i] = a.Atomic(morphism.ChannelID(i), morphism.Time(10*(i+1)), 0, nil)
	}

	root, ok, err := a.ComposeParallel(handles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, morphism.Time(40), a.Duration(root))
	assert.Equal(t, []morphism.ChannelID{0, 1, 2, 3}, a.Channels(root))
}

func TestComposeParallel_ConflictPropagates(t *testing.T) {
	a := morphism.NewArena()
	handles := []morphism.Handle{
		a.Atomic(0, 1, 0, nil),
		a.Atomic(1, 1, 0, nil),
		a.Atomic(0, 1, 0, nil), // conflicts with the first
	}

	_, ok, err := a.ComposeParallel(handles)
	assert.False(t, ok)
	require.ErrorIs(t, err, morphism.ErrChannelConflict)
}

func TestComposeParallel_Empty(t *testing.T) {
	a := morphism.NewArena()
	_, ok, err := a.ComposeParallel(nil)
	assert.False(t, ok)
	assert.NoError(t, err)
}
