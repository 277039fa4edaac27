package timeline

import (
	"sort"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

const (
	// DefaultSlotDuration is the length in minutes given to a newly placed slot.
	DefaultSlotDuration = 60
	// defaultStart is where the first slot of an empty day lands (09:00).
	defaultStart = 540
	// latestAutoEnd is the latest a placed slot may end before placement
	// wraps to the start of the day (23:00).
	latestAutoEnd = 1380
)

// PlaceNewSlot computes the start/end for a slot being added to the working
// list. An empty day gets [09:00,10:00). Otherwise the slot is appended
// after the latest existing slot, unless that would run past 23:00, in
// which case placement wraps to [00:00,01:00).
//
// Placement never searches for interior gaps between existing slots; the
// workflow is append-mostly and a wrapped slot can be dragged into position.
func PlaceNewSlot(existing []model.TimeSlot) (start, end int) {
	if len(existing) == 0 {
		return defaultStart, defaultStart + DefaultSlotDuration
	}

	sorted := make([]model.TimeSlot, len(existing))
	copy(sorted, existing)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	lastEnd := sorted[len(sorted)-1].End
	if lastEnd+DefaultSlotDuration <= latestAutoEnd {
		return lastEnd, lastEnd + DefaultSlotDuration
	}
	return 0, DefaultSlotDuration
}
