package timeline

import "errors"

// Timeline errors. All of these are recoverable validation failures surfaced
// to the operator; none are fatal to the hosting process.
var (
	ErrBadClockFormat    = errors.New("malformed clock time, want HH:MM")
	ErrMinutesOutOfRange = errors.New("minutes outside the day")
	ErrInvalidRange      = errors.New("slot start must be before slot end")
	ErrOverlap           = errors.New("slot overlaps another slot")
	ErrEmptySequence     = errors.New("sequence has no slots")
	ErrMissingContent    = errors.New("slot has no content assigned")
	ErrNoSelection       = errors.New("no days selected")
	ErrNotEditing        = errors.New("no sequence is being edited")
	ErrSlotOpen          = errors.New("a slot is open for editing")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrBadDayKey         = errors.New("malformed day key, want yyyy-MM-dd")
)
