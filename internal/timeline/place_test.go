package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

func TestPlaceNewSlot(t *testing.T) {
	tests := []struct {
		name      string
		existing  []model.TimeSlot
		wantStart int
		wantEnd   int
	}{
		{
			"empty day gets the default morning window",
			nil,
			540, 600, // 09:00-10:00
		},
		{
			"appends after the latest slot",
			[]model.TimeSlot{slot("a", 540, 600)},
			600, 660,
		},
		{
			"appends after the latest slot regardless of input order",
			[]model.TimeSlot{
				slot("b", 720, 780),
				slot("a", 540, 600),
			},
			780, 840,
		},
		{
			"latest slot ending exactly at 22:00 still appends",
			[]model.TimeSlot{slot("a", 1260, 1320)},
			1320, 1380,
		},
		{
			"late-running day wraps to midnight",
			[]model.TimeSlot{slot("a", 1350, 1410)}, // 22:30-23:30
			0, 60,
		},
		{
			"no interior gap search, even when one exists",
			[]model.TimeSlot{
				slot("a", 0, 60),
				slot("b", 1330, 1390), // huge gap between a and b is ignored
			},
			0, 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PlaceNewSlot(tt.existing)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
