package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr error
	}{
		{"00:00", 0, nil},
		{"09:00", 540, nil},
		{"23:59", 1439, nil},
		{"12:30", 750, nil},
		{"24:00", 0, ErrBadClockFormat},
		{"09:60", 0, ErrBadClockFormat},
		{"9:00", 0, ErrBadClockFormat},
		{"09:5", 0, ErrBadClockFormat},
		{"0900", 0, ErrBadClockFormat},
		{"ab:cd", 0, ErrBadClockFormat},
		{"-1:00", 0, ErrBadClockFormat},
		{"", 0, ErrBadClockFormat},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ToMinutes(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToText(t *testing.T) {
	got, err := ToText(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", got)

	got, err = ToText(1439)
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)

	_, err = ToText(-1)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
	_, err = ToText(1440)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestToBoundaryText(t *testing.T) {
	got, err := ToBoundaryText(MinutesPerDay)
	require.NoError(t, err)
	assert.Equal(t, "24:00", got)

	got, err = ToBoundaryText(600)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got)

	_, err = ToBoundaryText(1441)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

// conversion must be a bijection on the whole valid range
func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		text, err := ToText(m)
		require.NoError(t, err)
		back, err := ToMinutes(text)
		require.NoError(t, err)
		require.Equal(t, m, back, "round trip broke at %d (%s)", m, text)
	}

	for h := 0; h < 24; h++ {
		for min := 0; min < 60; min += 7 {
			text := fmt.Sprintf("%02d:%02d", h, min)
			parsed, err := ToMinutes(text)
			require.NoError(t, err)
			back, err := ToText(parsed)
			require.NoError(t, err)
			require.Equal(t, text, back)
		}
	}
}
