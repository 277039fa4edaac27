package timeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
	"github.com/Lumen-Media-LLC/dayline/internal/sequences"
)

// State is the editing lifecycle of a session.
type State int

const (
	// StateIdle means no sequence is being edited.
	StateIdle State = iota
	// StateEditing means a working slot list is in memory.
	StateEditing
	// StateSlotEditing means one slot is open for content/time edit, nested
	// within Editing. Save is not accepted until the slot edit resolves.
	StateSlotEditing
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSlotEditing:
		return "slot_editing"
	default:
		return "idle"
	}
}

// EventKind names a session state transition.
type EventKind string

const (
	EventSelectionChanged EventKind = "selection_changed"
	EventEditingStarted   EventKind = "editing_started"
	EventSlotOpened       EventKind = "slot_opened"
	EventSlotsChanged     EventKind = "slots_changed"
	EventSaved            EventKind = "saved"
	EventCancelled        EventKind = "cancelled"
)

// Event is a discrete, named state-transition notification. Any presentation
// layer can subscribe; the session does not know how events are rendered.
type Event struct {
	Kind   EventKind
	State  State
	SlotID string
	Days   []string
}

// CatalogResolver resolves a content reference to its display name. Supplied
// by the external media/composition catalog.
type CatalogResolver interface {
	ResolveContentName(ctx context.Context, contentType model.ContentType, contentID int) (string, error)
}

// Publisher announces a freshly assigned day sequence to downstream
// consumers (player devices, calendar views).
type Publisher interface {
	SequenceAssigned(ctx context.Context, dayKey string, seq model.DaySequence)
}

// SlotEdit carries the operator's pending changes to the open slot.
type SlotEdit struct {
	Start       int
	End         int
	ContentType model.ContentType
	ContentID   int
}

// Session drives one operator's timeline edit: day selection, the working
// slot list, the nested slot edit, drag reordering and the final save.
// It is the only component in the scheduler with mutable state; one session
// edits one sequence at a time, single-writer by construction.
type Session struct {
	store     sequences.Store
	catalog   CatalogResolver
	publisher Publisher

	state       State
	selection   map[string]struct{}
	lastClicked string

	working       []model.TimeSlot
	workingName   string
	editingSlotID string

	dragging   bool
	dragSlotID string

	handlers []func(Event)
}

func NewSession(store sequences.Store, catalog CatalogResolver, publisher Publisher) *Session {
	return &Session{
		store:     store,
		catalog:   catalog,
		publisher: publisher,
		state:     StateIdle,
		selection: make(map[string]struct{}),
	}
}

// Subscribe registers a handler for state-transition events.
func (s *Session) Subscribe(fn func(Event)) {
	s.handlers = append(s.handlers, fn)
}

func (s *Session) emit(kind EventKind, slotID string, days []string) {
	ev := Event{Kind: kind, State: s.state, SlotID: slotID, Days: days}
	for _, fn := range s.handlers {
		fn(ev)
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Slots returns a copy of the working slot list.
func (s *Session) Slots() []model.TimeSlot {
	out := make([]model.TimeSlot, len(s.working))
	copy(out, s.working)
	return out
}

// EditingSlot returns the slot currently open for editing, if any.
func (s *Session) EditingSlot() (model.TimeSlot, bool) {
	if s.state != StateSlotEditing {
		return model.TimeSlot{}, false
	}
	idx := s.slotIndex(s.editingSlotID)
	if idx < 0 {
		return model.TimeSlot{}, false
	}
	return s.working[idx], true
}

// Selection returns the selected day keys in ascending order.
func (s *Session) Selection() []string {
	out := make([]string, 0, len(s.selection))
	for day := range s.selection {
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}

// ToggleDay adds the day to the selection, or removes it if already
// selected. Covers both the plain click and the ctrl/cmd-click gesture.
func (s *Session) ToggleDay(dayKey string) error {
	if _, err := time.Parse(sequences.DayKeyLayout, dayKey); err != nil {
		return fmt.Errorf("%w: %q", ErrBadDayKey, dayKey)
	}
	if _, ok := s.selection[dayKey]; ok {
		delete(s.selection, dayKey)
	} else {
		s.selection[dayKey] = struct{}{}
	}
	s.lastClicked = dayKey
	s.emit(EventSelectionChanged, "", s.Selection())
	return nil
}

// SelectRange adds every day between the last clicked day and dayKey
// inclusive (shift-click). Without a prior click it behaves like ToggleDay.
func (s *Session) SelectRange(dayKey string) error {
	to, err := time.Parse(sequences.DayKeyLayout, dayKey)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDayKey, dayKey)
	}
	if s.lastClicked == "" {
		return s.ToggleDay(dayKey)
	}
	from, err := time.Parse(sequences.DayKeyLayout, s.lastClicked)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDayKey, s.lastClicked)
	}

	if to.Before(from) {
		from, to = to, from
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		s.selection[d.Format(sequences.DayKeyLayout)] = struct{}{}
	}
	s.lastClicked = dayKey
	s.emit(EventSelectionChanged, "", s.Selection())
	return nil
}

// Begin enters Editing. If any selected day already has a stored sequence,
// the first such day's slots seed the working list (edit-in-place);
// otherwise the working list starts empty.
func (s *Session) Begin(ctx context.Context) error {
	if len(s.selection) == 0 {
		return ErrNoSelection
	}

	s.working = nil
	s.workingName = ""
	for _, day := range s.Selection() {
		seq, err := s.store.Get(ctx, day)
		if err != nil {
			return err
		}
		if seq != nil {
			s.working = seq.CloneSlots()
			s.workingName = seq.Name
			break
		}
	}

	s.sortWorking()
	s.state = StateEditing
	s.emit(EventEditingStarted, "", s.Selection())
	return nil
}

// AddSlot places a new slot after the latest existing one, inserts it into
// the working list and opens it for editing so the operator can assign
// content immediately.
func (s *Session) AddSlot() (model.TimeSlot, error) {
	if s.state != StateEditing {
		return model.TimeSlot{}, ErrNotEditing
	}

	start, end := PlaceNewSlot(s.working)
	slot := model.TimeSlot{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
	}
	s.working = append(s.working, slot)
	s.sortWorking()

	s.state = StateSlotEditing
	s.editingSlotID = slot.ID
	s.emit(EventSlotOpened, slot.ID, nil)
	return slot, nil
}

// OpenSlot reopens an existing slot for editing.
func (s *Session) OpenSlot(slotID string) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if s.slotIndex(slotID) < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}
	s.state = StateSlotEditing
	s.editingSlotID = slotID
	s.emit(EventSlotOpened, slotID, nil)
	return nil
}

// UpdateSlot applies the pending edit to the open slot. The edit is gated on
// a valid range and on not colliding with any sibling slot; on failure the
// working list is untouched and the slot stays open. On success the slot is
// replaced in place, its content name resolved through the catalog, and the
// session returns to Editing.
func (s *Session) UpdateSlot(ctx context.Context, edit SlotEdit) error {
	if s.state != StateSlotEditing {
		return ErrNotEditing
	}
	idx := s.slotIndex(s.editingSlotID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, s.editingSlotID)
	}

	candidate := s.working[idx]
	candidate.Start = edit.Start
	candidate.End = edit.End
	candidate.ContentType = edit.ContentType
	candidate.ContentID = edit.ContentID

	if !RangeValid(candidate) {
		return fmt.Errorf("%w: slot %s", ErrInvalidRange, candidate.ID)
	}
	if conflict := FindConflict(candidate, s.working); conflict != nil {
		return fmt.Errorf("%w: slot %s collides with %s", ErrOverlap, candidate.ID, conflict.ID)
	}

	if edit.ContentID != 0 {
		name, err := s.catalog.ResolveContentName(ctx, edit.ContentType, edit.ContentID)
		if err != nil {
			return err
		}
		candidate.ContentName = name
	} else {
		// clearing the content reference also drops the cached display name
		candidate.ContentName = ""
	}

	s.working[idx] = candidate
	s.sortWorking()
	s.state = StateEditing
	s.editingSlotID = ""
	s.emit(EventSlotsChanged, candidate.ID, nil)
	return nil
}

// CancelSlotEdit abandons the open slot edit and returns to Editing. The
// slot keeps whatever values it had; an unassigned slot is caught by
// validation at save time.
func (s *Session) CancelSlotEdit() {
	if s.state != StateSlotEditing {
		return
	}
	s.state = StateEditing
	s.editingSlotID = ""
	s.emit(EventSlotsChanged, "", nil)
}

// DeleteSlot removes a slot by id. Deleting the slot that is open for
// editing closes the nested edit.
func (s *Session) DeleteSlot(slotID string) error {
	if s.state != StateEditing && s.state != StateSlotEditing {
		return ErrNotEditing
	}
	idx := s.slotIndex(slotID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}

	s.working = append(s.working[:idx], s.working[idx+1:]...)
	if s.editingSlotID == slotID {
		s.state = StateEditing
		s.editingSlotID = ""
	}
	s.emit(EventSlotsChanged, slotID, nil)
	return nil
}

// BeginDrag captures the dragged slot id. Nothing changes until EndDrag.
func (s *Session) BeginDrag(slotID string) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if s.slotIndex(slotID) < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}
	s.dragging = true
	s.dragSlotID = slotID
	return nil
}

// EndDrag takes the final slot ordering from the drag layer and replaces the
// working list with the repacked result. No validation gate here; the repack
// is a best-effort repair and save-time validation is the commit gate.
func (s *Session) EndDrag(order []string) error {
	if !s.dragging {
		return ErrNotEditing
	}
	s.dragging = false
	s.dragSlotID = ""

	if len(order) != len(s.working) {
		return fmt.Errorf("%w: reorder lists %d slots, working list has %d", ErrSlotNotFound, len(order), len(s.working))
	}
	// the order must be an exact permutation of the working list: every id
	// present, none repeated
	seen := make(map[string]struct{}, len(order))
	reordered := make([]model.TimeSlot, 0, len(order))
	for _, id := range order {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: slot %s listed twice in reorder", ErrSlotNotFound, id)
		}
		seen[id] = struct{}{}
		idx := s.slotIndex(id)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrSlotNotFound, id)
		}
		reordered = append(reordered, s.working[idx])
	}

	s.working = Repack(reordered)
	s.emit(EventSlotsChanged, "", nil)
	return nil
}

// CancelDrag aborts an in-flight drag, leaving the working list unchanged.
func (s *Session) CancelDrag() {
	s.dragging = false
	s.dragSlotID = ""
}

// Save validates the working sequence, fans it out to every selected day and
// returns the session to Idle. An empty name falls back to the loaded
// sequence's name, then to a generated one. Validation failures are returned
// joined so the caller can match any category with errors.Is; the working
// list and selection survive a failed save.
func (s *Session) Save(ctx context.Context, name string) ([]string, error) {
	if s.state == StateSlotEditing {
		return nil, ErrSlotOpen
	}
	if s.state != StateEditing {
		return nil, ErrNotEditing
	}
	if len(s.selection) == 0 {
		return nil, ErrNoSelection
	}
	if errs := ValidateSequence(s.working); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	days := s.Selection()
	if name == "" {
		name = s.workingName
	}
	if name == "" {
		name = "Sequence " + days[0]
	}
	template := model.DaySequence{
		ID:    uuid.NewString(),
		Name:  name,
		Slots: s.Slots(),
	}

	if err := s.store.Assign(ctx, days, template); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		for _, day := range days {
			s.publisher.SequenceAssigned(ctx, day, template)
		}
	}
	log.Info().Str("sequence", template.ID).Strs("days", days).Msg("sequence assigned")

	s.reset()
	s.emit(EventSaved, "", days)
	return days, nil
}

// Cancel discards all in-memory changes unconditionally and returns to Idle
// without touching the store.
func (s *Session) Cancel() {
	s.reset()
	s.emit(EventCancelled, "", nil)
}

func (s *Session) reset() {
	s.state = StateIdle
	s.working = nil
	s.workingName = ""
	s.editingSlotID = ""
	s.dragging = false
	s.dragSlotID = ""
	s.selection = make(map[string]struct{})
	s.lastClicked = ""
}

func (s *Session) sortWorking() {
	sort.Slice(s.working, func(i, j int) bool { return s.working[i].Start < s.working[j].Start })
}

func (s *Session) slotIndex(slotID string) int {
	for i := range s.working {
		if s.working[i].ID == slotID {
			return i
		}
	}
	return -1
}
