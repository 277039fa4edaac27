package timeline

import "github.com/Lumen-Media-LLC/dayline/internal/model"

// MinRepackDuration is the floor applied to slot durations during a repack.
// Manual edits have no such floor; the two policies are intentionally
// distinct.
const MinRepackDuration = 15

// Repack recomputes contiguous start/end times for slots in the order given
// (post drag-and-drop). Each slot keeps its original duration, never shrunk
// below MinRepackDuration; each slot starts where the previous one ended.
// When the running cursor would push a slot past the end of the day, the
// slot is pulled backward so it still fits. That clamp can reintroduce an
// overlap with the preceding slot; repack is a best-effort repair and the
// no-overlap invariant is enforced by ValidateSequence at save time.
//
// Repack always succeeds and returns a new list; the input is not mutated.
func Repack(ordered []model.TimeSlot) []model.TimeSlot {
	out := make([]model.TimeSlot, len(ordered))
	copy(out, ordered)

	t := 0
	for i := range out {
		duration := out[i].Duration()
		if duration < MinRepackDuration {
			duration = MinRepackDuration
		}
		if t+duration > MinutesPerDay {
			t = MinutesPerDay - duration
			if t < 0 {
				t = 0
			}
		}
		out[i].Start = t
		out[i].End = t + duration
		t += duration
	}
	return out
}
