package timeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

func slot(id string, start, end int) model.TimeSlot {
	return model.TimeSlot{ID: id, Start: start, End: end, ContentType: model.ContentMedia, ContentID: 1, ContentName: "clip"}
}

func TestRangeValid(t *testing.T) {
	assert.True(t, RangeValid(slot("a", 540, 600)))
	assert.False(t, RangeValid(slot("a", 600, 600)), "zero-length slot is invalid")
	assert.False(t, RangeValid(slot("a", 600, 540)))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b model.TimeSlot
		want bool
	}{
		{"disjoint", slot("a", 540, 600), slot("b", 660, 720), false},
		{"touching boundaries do not overlap", slot("a", 540, 600), slot("b", 600, 660), false},
		{"partial overlap", slot("a", 540, 600), slot("b", 570, 630), true},
		{"containment", slot("a", 540, 720), slot("b", 570, 630), true},
		{"identical", slot("a", 540, 600), slot("b", 540, 600), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	siblings := []model.TimeSlot{
		slot("b", 600, 660),
		slot("a", 540, 600),
		slot("c", 660, 720),
	}

	// candidate matched by id is skipped, so re-validating a slot against
	// the full list does not conflict with itself
	assert.Nil(t, FindConflict(slot("a", 540, 600), siblings))

	// moving "a" half an hour later collides with "b"
	conflict := FindConflict(slot("a", 570, 630), siblings)
	require.NotNil(t, conflict)
	assert.Equal(t, "b", conflict.ID)

	// first conflicting sibling in start order wins
	conflict = FindConflict(slot("x", 550, 700), siblings)
	require.NotNil(t, conflict)
	assert.Equal(t, "a", conflict.ID)

	assert.Nil(t, FindConflict(slot("x", 720, 780), siblings))
}

func TestValidateSequence(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		errs := ValidateSequence(nil)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrEmptySequence)
	})

	t.Run("valid sequence", func(t *testing.T) {
		errs := ValidateSequence([]model.TimeSlot{
			slot("a", 540, 600),
			slot("b", 600, 660),
		})
		assert.Empty(t, errs)
	})

	t.Run("missing content", func(t *testing.T) {
		s := slot("a", 540, 600)
		s.ContentID = 0
		errs := ValidateSequence([]model.TimeSlot{s})
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrMissingContent)
	})

	t.Run("invalid range", func(t *testing.T) {
		errs := ValidateSequence([]model.TimeSlot{slot("a", 600, 540)})
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrInvalidRange)
	})

	t.Run("overlap found regardless of input order", func(t *testing.T) {
		errs := ValidateSequence([]model.TimeSlot{
			slot("c", 660, 720),
			slot("a", 540, 630),
			slot("b", 600, 660),
		})
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrOverlap)
	})

	t.Run("one violation per category", func(t *testing.T) {
		bad := slot("a", 600, 540)
		bad.ContentID = 0
		errs := ValidateSequence([]model.TimeSlot{
			bad,
			slot("b", 500, 560),
			slot("c", 530, 590),
		})

		joined := errors.Join(errs...)
		assert.ErrorIs(t, joined, ErrMissingContent)
		assert.ErrorIs(t, joined, ErrInvalidRange)
		assert.ErrorIs(t, joined, ErrOverlap)
		assert.Len(t, errs, 3, "exactly one violation per category")
	})
}
