package packets

// SelectDayRequest records one calendar click. Mode mirrors the pointer
// modifiers: "toggle" is a plain or ctrl/cmd click, "range" is a shift-click
// extending from the previously clicked day.
type SelectDayRequest struct {
	Date string `json:"date" binding:"required"`
	Mode string `json:"mode" binding:"omitempty,oneof=toggle range"`
}

// UpdateSlotRequest carries the edited values for the slot that is open in
// the editor. Times are canonical "HH:MM". Content may be left unset while
// the slot is mid-edit; save-time validation requires it.
type UpdateSlotRequest struct {
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	ContentType string `json:"content_type" binding:"omitempty,oneof=media composition"`
	ContentID   int    `json:"content_id"`
}

type BeginDragRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// ReorderSlotsRequest is the final slot ordering supplied by the drag layer
// when the operator drops a slot.
type ReorderSlotsRequest struct {
	SlotIDs []string `json:"slot_ids" binding:"required"`
}

type SaveSequenceRequest struct {
	Name string `json:"name"`
}

type ListDaysQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type CatalogQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=media composition"`
}
