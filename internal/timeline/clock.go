package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the exclusive upper bound for a minute-of-day value.
const MinutesPerDay = 1440

// ToMinutes parses a canonical "HH:MM" clock string into minutes since
// midnight. All timeline arithmetic goes through minutes; lexicographic
// comparison of zero-padded clock strings happens to order correctly but
// durations and gap math must never be done on strings.
func ToMinutes(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadClockFormat, text)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClockFormat, text)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClockFormat, text)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClockFormat, text)
	}
	return hours*60 + minutes, nil
}

// ToText formats minutes since midnight as a zero-padded "HH:MM" string.
func ToText(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutOfRange, minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// ToBoundaryText formats an interval boundary. Identical to ToText except
// that the exclusive end-of-day boundary (minute 1440) renders as "24:00",
// which a repacked slot filling the day can legitimately carry as its end.
func ToBoundaryText(minutes int) (string, error) {
	if minutes == MinutesPerDay {
		return "24:00", nil
	}
	return ToText(minutes)
}
