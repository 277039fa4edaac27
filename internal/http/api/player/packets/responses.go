package packets

// Simple response for player devices - just what to show and when.
type PlayerTimelineResponse struct {
	Day          string           `json:"day"`
	SequenceName string           `json:"sequence_name"`
	Slots        []PlayerSlotItem `json:"slots"`
}

type PlayerSlotItem struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	ContentType string `json:"content_type"`
	ContentID   int    `json:"content_id"`
	ContentName string `json:"content_name"`
}
