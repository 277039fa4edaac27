package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

func TestRepackContiguous(t *testing.T) {
	// durations 90/30/60, dragged into this order
	ordered := []model.TimeSlot{
		slot("c", 630, 720), // 90 min
		slot("b", 600, 630), // 30 min
		slot("a", 540, 600), // 60 min
	}

	out := Repack(ordered)
	require.Len(t, out, 3)

	assert.Equal(t, 0, out[0].Start)
	assert.Equal(t, 90, out[0].End)
	assert.Equal(t, 90, out[1].Start)
	assert.Equal(t, 120, out[1].End)
	assert.Equal(t, 120, out[2].Start)
	assert.Equal(t, 180, out[2].End)

	// durations survive the repack
	assert.Equal(t, 90, out[0].Duration())
	assert.Equal(t, 30, out[1].Duration())
	assert.Equal(t, 60, out[2].Duration())

	// input untouched
	assert.Equal(t, 630, ordered[0].Start)
}

func TestRepackMinimumDurationFloor(t *testing.T) {
	out := Repack([]model.TimeSlot{
		slot("a", 100, 105), // 5 min, below the floor
		slot("b", 200, 260),
	})

	assert.Equal(t, 0, out[0].Start)
	assert.Equal(t, MinRepackDuration, out[0].End)
	assert.Equal(t, MinRepackDuration, out[1].Start)
	assert.Equal(t, MinRepackDuration+60, out[1].End)
}

func TestRepackEndOfDayClamp(t *testing.T) {
	out := Repack([]model.TimeSlot{
		slot("a", 0, 1410),  // 23.5 hours
		slot("b", 540, 600), // 60 min, no longer fits after a
	})

	assert.Equal(t, 0, out[0].Start)
	assert.Equal(t, 1410, out[0].End)

	// clamped backward so it still fits inside the day; this overlaps the
	// previous slot, which save-time validation rejects
	assert.Equal(t, MinutesPerDay-60, out[1].Start)
	assert.Equal(t, MinutesPerDay, out[1].End)
	errs := ValidateSequence(out)
	require.NotEmpty(t, errs)
	assert.ErrorIs(t, errs[0], ErrOverlap)
}

func TestRepackContiguityProperty(t *testing.T) {
	ordered := []model.TimeSlot{
		slot("a", 540, 600),
		slot("b", 610, 640),
		slot("c", 700, 790),
		slot("d", 800, 815),
	}

	out := Repack(ordered)
	for k := 1; k < len(out); k++ {
		require.Equal(t, out[k-1].End, out[k].Start,
			"slot %d must start where slot %d ends", k, k-1)
	}
	assert.Empty(t, ValidateSequence(out))
}

func TestRepackEmpty(t *testing.T) {
	assert.Empty(t, Repack(nil))
}
