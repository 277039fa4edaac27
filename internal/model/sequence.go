package model

// ContentType tags which catalog a slot's content reference points into.
type ContentType string

const (
	ContentMedia       ContentType = "media"
	ContentComposition ContentType = "composition"
)

// TimeSlot is one [start,end) interval of a day assigned to one piece of content.
// Start and End are minutes since midnight; slots sharing a boundary do not overlap.
type TimeSlot struct {
	ID          string      `json:"id"`
	Start       int         `json:"start"`
	End         int         `json:"end"`
	ContentType ContentType `json:"content_type"`
	ContentID   int         `json:"content_id"`
	ContentName string      `json:"content_name"`
}

// Duration returns the slot length in minutes.
func (s TimeSlot) Duration() int {
	return s.End - s.Start
}

// DaySequence is a named, ordered content timeline for one calendar day.
// Slots are kept sorted by Start; a sequence owns its slots exclusively,
// they are never shared by reference across sequences.
type DaySequence struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Slots []TimeSlot `json:"slots"`
}

// CloneSlots returns a by-value copy of the sequence's slot list.
func (d DaySequence) CloneSlots() []TimeSlot {
	out := make([]TimeSlot, len(d.Slots))
	copy(out, d.Slots)
	return out
}
