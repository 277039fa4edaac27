package sequences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

func testTemplate() model.DaySequence {
	return model.DaySequence{
		ID:   "tpl-1",
		Name: "Lobby Weekday",
		Slots: []model.TimeSlot{
			{ID: "s1", Start: 540, End: 600, ContentType: model.ContentMedia, ContentID: 1, ContentName: "Morning Loop"},
			{ID: "s2", Start: 600, End: 660, ContentType: model.ContentComposition, ContentID: 2, ContentName: "Menu Board"},
		},
	}
}

func TestMemoryStoreGetMissingDay(t *testing.T) {
	store := NewMemoryStore()
	seq, err := store.Get(context.Background(), "2024-03-15")
	require.NoError(t, err)
	assert.Nil(t, seq)
}

func TestAssignFansOut(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	days := []string{"2024-03-15", "2024-03-16", "2024-03-17"}

	require.NoError(t, store.Assign(ctx, days, testTemplate()))

	seen := map[string]bool{}
	for _, day := range days {
		seq, err := store.Get(ctx, day)
		require.NoError(t, err)
		require.NotNil(t, seq)

		// per-day id derives from the shared template id and the day key
		assert.Equal(t, "tpl-1-"+day, seq.ID)
		assert.False(t, seen[seq.ID], "sequence ids must be distinct per day")
		seen[seq.ID] = true

		// slot content and ordering are structurally equal to the template
		require.Len(t, seq.Slots, 2)
		assert.Equal(t, 540, seq.Slots[0].Start)
		assert.Equal(t, "Morning Loop", seq.Slots[0].ContentName)
		assert.Equal(t, 600, seq.Slots[1].Start)
		assert.Equal(t, "Menu Board", seq.Slots[1].ContentName)
	}
}

func TestAssignedCopiesAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Assign(ctx, []string{"2024-03-15", "2024-03-16"}, testTemplate()))

	// slot identities are fresh per day, never shared by reference
	seq15, err := store.Get(ctx, "2024-03-15")
	require.NoError(t, err)
	seq16, err := store.Get(ctx, "2024-03-16")
	require.NoError(t, err)
	assert.NotEqual(t, seq15.Slots[0].ID, seq16.Slots[0].ID)

	// editing the 2024-03-16 copy must not change the 2024-03-15 copy
	edited := *seq16
	edited.ID = "edited"
	edited.Slots[0].Start = 0
	edited.Slots[0].End = 120
	require.NoError(t, store.Assign(ctx, []string{"2024-03-16"}, edited))

	fresh15, err := store.Get(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 540, fresh15.Slots[0].Start)

	fresh16, err := store.Get(ctx, "2024-03-16")
	require.NoError(t, err)
	assert.Equal(t, 0, fresh16.Slots[0].Start)
}

func TestGetReturnsACopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Assign(ctx, []string{"2024-03-15"}, testTemplate()))

	seq, err := store.Get(ctx, "2024-03-15")
	require.NoError(t, err)
	seq.Slots[0].Start = 999

	again, err := store.Get(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 540, again.Slots[0].Start, "stored slots must not be reachable through Get results")
}

func TestAssignOverwritesUnconditionally(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Assign(ctx, []string{"2024-03-15"}, testTemplate()))

	replacement := model.DaySequence{
		ID:   "tpl-2",
		Name: "Special Event",
		Slots: []model.TimeSlot{
			{ID: "s9", Start: 0, End: 1439, ContentType: model.ContentMedia, ContentID: 7, ContentName: "All Day"},
		},
	}
	require.NoError(t, store.Assign(ctx, []string{"2024-03-15"}, replacement))

	seq, err := store.Get(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "tpl-2-2024-03-15", seq.ID)
	require.Len(t, seq.Slots, 1)
	assert.Equal(t, "All Day", seq.Slots[0].ContentName)
}

func TestDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Assign(ctx, []string{"2024-03-15"}, testTemplate()))
	require.NoError(t, store.Delete(ctx, "2024-03-15"))

	seq, err := store.Get(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Nil(t, seq)

	// deleting an empty day is a no-op
	require.NoError(t, store.Delete(ctx, "2024-03-15"))
}
