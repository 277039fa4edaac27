package packets

import (
	"time"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
	"github.com/Lumen-Media-LLC/dayline/internal/timeline"
)

// SlotResponse mirrors model.TimeSlot but renders boundaries as "HH:MM".
type SlotResponse struct {
	ID          string `json:"id"`
	Start       string `json:"start"`
	End         string `json:"end"`
	ContentType string `json:"content_type"`
	ContentID   int    `json:"content_id"`
	ContentName string `json:"content_name"`
}

func NewSlotResponse(s model.TimeSlot) SlotResponse {
	start, _ := timeline.ToText(s.Start)
	end, _ := timeline.ToBoundaryText(s.End)
	return SlotResponse{
		ID:          s.ID,
		Start:       start,
		End:         end,
		ContentType: string(s.ContentType),
		ContentID:   s.ContentID,
		ContentName: s.ContentName,
	}
}

func NewSlotResponses(slots []model.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotResponse(s))
	}
	return out
}

// SessionResponse is the editor state returned after every session call.
type SessionResponse struct {
	State       string         `json:"state"`
	Selection   []string       `json:"selection"`
	Slots       []SlotResponse `json:"slots"`
	EditingSlot *SlotResponse  `json:"editing_slot,omitempty"`
}

type SequenceResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Day   string         `json:"day"`
	Slots []SlotResponse `json:"slots"`
}

type SaveResponse struct {
	Days []string `json:"days"`
}

type CatalogItemResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

func NewCatalogItemResponse(item model.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Type:      string(item.Type),
		URL:       item.URL,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}
