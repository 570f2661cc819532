package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DefaultWindow(t *testing.T) {
	candidates := Generate(DefaultOpenHour, DefaultCloseHour)
	require.Len(t, candidates, 18) // 6 AM through 11 PM inclusive

	assert.Equal(t, 6, candidates[0].Hour)
	assert.Equal(t, "6:00 AM", candidates[0].Label)
	assert.Equal(t, 23, candidates[len(candidates)-1].Hour)
	assert.Equal(t, "11:00 PM", candidates[len(candidates)-1].Label)
}

func TestGenerate_ConsecutiveAscending(t *testing.T) {
	candidates := Generate(DefaultOpenHour, DefaultCloseHour)
	for i := 1; i < len(candidates); i++ {
		assert.Equal(t, candidates[i-1].Hour+1, candidates[i].Hour,
			"slots must differ by exactly one hour")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(8, 20)
	second := Generate(8, 20)
	assert.Equal(t, first, second)
}

func TestGenerate_ClampsBounds(t *testing.T) {
	candidates := Generate(-3, 30)
	require.NotEmpty(t, candidates)
	assert.Equal(t, 0, candidates[0].Hour)
	assert.Equal(t, 23, candidates[len(candidates)-1].Hour)
}

func TestLabel(t *testing.T) {
	cases := map[int]string{
		0:  "12:00 AM",
		6:  "6:00 AM",
		11: "11:00 AM",
		12: "12:00 PM",
		13: "1:00 PM",
		18: "6:00 PM",
		23: "11:00 PM",
	}
	for hour, want := range cases {
		assert.Equal(t, want, Label(hour), "hour %d", hour)
	}
}

func TestSlotTime_CombinesDateAndHour(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 14, 17, 45, 12, 0, loc) // clock time ignored

	ts := SlotTime(date, 9, loc)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, loc), ts)
}

func TestSlotTime_UsesVenueZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, kolkata)
	ts := SlotTime(date, 18, kolkata)

	assert.Equal(t, 18, ts.In(kolkata).Hour())
	// 6 PM IST is 12:30 UTC; the instant must be unambiguous.
	assert.Equal(t, time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC), ts.UTC())
}
