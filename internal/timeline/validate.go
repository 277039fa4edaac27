package timeline

import (
	"fmt"
	"sort"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

// RangeValid reports whether the slot spans a strictly positive interval.
// Zero-length slots are invalid.
func RangeValid(s model.TimeSlot) bool {
	return s.Start < s.End
}

// Overlaps reports whether two [start,end) intervals intersect. Touching
// boundaries are not an overlap: a slot ending at minute 600 does not
// conflict with one starting at minute 600.
func Overlaps(a, b model.TimeSlot) bool {
	return a.Start < b.End && b.Start < a.End
}

// FindConflict returns the first sibling (in start order, excluding the
// candidate itself by id) whose interval intersects the candidate, or nil.
func FindConflict(candidate model.TimeSlot, siblings []model.TimeSlot) *model.TimeSlot {
	sorted := make([]model.TimeSlot, len(siblings))
	copy(sorted, siblings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i := range sorted {
		if sorted[i].ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, sorted[i]) {
			return &sorted[i]
		}
	}
	return nil
}

// ValidateSequence checks a slot list against the save-time invariants and
// returns the first violation of each category: the sequence must not be
// empty, every slot needs content, every slot needs a valid range, and no
// pair of slots may overlap. Overlaps are detected with a single
// adjacent-pair scan over the start-sorted list.
func ValidateSequence(slots []model.TimeSlot) []error {
	var errs []error

	if len(slots) == 0 {
		return []error{ErrEmptySequence}
	}

	for _, s := range slots {
		if s.ContentID == 0 {
			errs = append(errs, fmt.Errorf("%w: slot %s", ErrMissingContent, s.ID))
			break
		}
	}

	for _, s := range slots {
		if !RangeValid(s) {
			errs = append(errs, fmt.Errorf("%w: slot %s", ErrInvalidRange, s.ID))
			break
		}
	}

	sorted := make([]model.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for i := 1; i < len(sorted); i++ {
		if Overlaps(sorted[i-1], sorted[i]) {
			errs = append(errs, fmt.Errorf("%w: slots %s and %s", ErrOverlap, sorted[i-1].ID, sorted[i].ID))
			break
		}
	}

	return errs
}
