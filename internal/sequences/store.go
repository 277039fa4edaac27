// internal/sequences/store.go
package sequences

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

// DayKeyLayout is the time layout for calendar-day keys (yyyy-MM-dd).
const DayKeyLayout = "2006-01-02"

// Store maps calendar-day keys to at most one DaySequence each. Assigning a
// template to many days writes an independent copy per day so that any day
// can later be edited without mutating its siblings.
type Store interface {
	// Get returns the sequence stored for dayKey, or nil if the day is empty.
	Get(ctx context.Context, dayKey string) (*model.DaySequence, error)

	// Assign writes one copy of template under every day key, overwriting
	// any existing sequence for those days unconditionally.
	Assign(ctx context.Context, dayKeys []string, template model.DaySequence) error

	// Delete clears the sequence for dayKey. Clearing an empty day is a no-op.
	Delete(ctx context.Context, dayKey string) error
}

// copyForDay derives the per-day sequence written by Assign: the id is the
// shared template id suffixed with the day key, and every slot is cloned by
// value under a fresh identity so the copy is owned by its day alone.
func copyForDay(template model.DaySequence, dayKey string) model.DaySequence {
	slots := make([]model.TimeSlot, len(template.Slots))
	copy(slots, template.Slots)
	for i := range slots {
		slots[i].ID = uuid.NewString()
	}
	return model.DaySequence{
		ID:    template.ID + "-" + dayKey,
		Name:  template.Name,
		Slots: slots,
	}
}
