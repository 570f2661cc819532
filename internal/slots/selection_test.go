package slots

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_ToggleAddRemove(t *testing.T) {
	var sel Selection

	require.NoError(t, sel.Toggle(16))
	require.NoError(t, sel.Toggle(17))
	assert.Equal(t, []int{16, 17}, sel.Hours())

	// Removing an endpoint keeps the run contiguous.
	require.NoError(t, sel.Toggle(17))
	assert.Equal(t, []int{16}, sel.Hours())

	require.NoError(t, sel.Toggle(16))
	assert.True(t, sel.IsEmpty())
}

// Scenario: 16:00, 17:00, then 19:00 skipping 18:00. The third toggle is
// rejected and the prior selection survives.
func TestSelection_RejectsGap(t *testing.T) {
	var sel Selection

	require.NoError(t, sel.Toggle(16))
	require.NoError(t, sel.Toggle(17))

	err := sel.Toggle(19)
	assert.ErrorIs(t, err, ErrNonContiguousSelection)
	assert.Equal(t, []int{16, 17}, sel.Hours())
}

func TestSelection_RejectsMiddleRemoval(t *testing.T) {
	var sel Selection
	for _, h := range []int{10, 11, 12} {
		require.NoError(t, sel.Toggle(h))
	}

	// Removing the middle hour would split the run.
	err := sel.Toggle(11)
	assert.ErrorIs(t, err, ErrNonContiguousSelection)
	assert.Equal(t, []int{10, 11, 12}, sel.Hours())
}

func TestSelection_ExtendsBothDirections(t *testing.T) {
	var sel Selection
	require.NoError(t, sel.Toggle(12))
	require.NoError(t, sel.Toggle(11))
	require.NoError(t, sel.Toggle(13))
	assert.Equal(t, []int{11, 12, 13}, sel.Hours())
	assert.Equal(t, 11, sel.StartHour())
	assert.Equal(t, 3, sel.Len())
}

func TestNewSelection(t *testing.T) {
	sel, err := NewSelection([]int{18, 16, 17})
	require.NoError(t, err)
	assert.Equal(t, []int{16, 17, 18}, sel.Hours())

	_, err = NewSelection([]int{16, 18})
	assert.ErrorIs(t, err, ErrNonContiguousSelection)

	// A duplicated hour is not one-apart after sorting.
	_, err = NewSelection([]int{16, 16, 17})
	assert.ErrorIs(t, err, ErrNonContiguousSelection)
}

// No sequence of toggles can leave the tracker with a gap or a duplicate:
// after every call, accepted or rejected, the set is a strict ascending run.
func TestSelection_InvariantUnderRandomToggles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		var sel Selection
		for i := 0; i < 200; i++ {
			hour := DefaultOpenHour + rng.Intn(DefaultCloseHour-DefaultOpenHour+1)
			_ = sel.Toggle(hour)

			hours := sel.Hours()
			require.True(t, sort.IntsAreSorted(hours))
			for j := 1; j < len(hours); j++ {
				require.Equal(t, hours[j-1]+1, hours[j],
					"trial %d step %d produced a gap or duplicate: %v", trial, i, hours)
			}
		}
	}
}
