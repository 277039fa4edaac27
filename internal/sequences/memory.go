package sequences

import (
	"context"
	"sync"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

// MemoryStore keeps sequences in a process-local map. Used by tests and as
// the fallback when no Redis address is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[string]model.DaySequence
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[string]model.DaySequence)}
}

func (m *MemoryStore) Get(_ context.Context, dayKey string) (*model.DaySequence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seq, ok := m.days[dayKey]
	if !ok {
		return nil, nil
	}
	// hand out a copy so callers cannot reach into the stored slots
	out := seq
	out.Slots = seq.CloneSlots()
	return &out, nil
}

func (m *MemoryStore) Assign(_ context.Context, dayKeys []string, template model.DaySequence) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, day := range dayKeys {
		m.days[day] = copyForDay(template, day)
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, dayKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.days, dayKey)
	return nil
}
