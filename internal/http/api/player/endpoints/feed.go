package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Media-LLC/dayline/internal/http/api"
	"github.com/Lumen-Media-LLC/dayline/internal/http/api/player/packets"
	"github.com/Lumen-Media-LLC/dayline/internal/sequences"
	"github.com/Lumen-Media-LLC/dayline/internal/timeline"
)

// FeedModule serves the read-only day timeline that player devices render.
func FeedModule(seqStore sequences.Store) api.Module {
	ctl := &feedController{sequences: seqStore}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/timeline/:date", ctl.getTimeline)
	})
}

type feedController struct {
	sequences sequences.Store
}

func (f *feedController) getTimeline(ctx *gin.Context) (any, *api.APIError) {
	day := ctx.Param("date")
	if _, err := time.Parse(sequences.DayKeyLayout, day); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}

	seq, err := f.sequences.Get(ctx.Request.Context(), day)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to read timeline"}
	}
	if seq == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no sequence for that day"}
	}

	response := packets.PlayerTimelineResponse{
		Day:          day,
		SequenceName: seq.Name,
		Slots:        make([]packets.PlayerSlotItem, 0, len(seq.Slots)),
	}
	for _, s := range seq.Slots {
		start, _ := timeline.ToText(s.Start)
		end, _ := timeline.ToBoundaryText(s.End)
		response.Slots = append(response.Slots, packets.PlayerSlotItem{
			Start:       start,
			End:         end,
			ContentType: string(s.ContentType),
			ContentID:   s.ContentID,
			ContentName: s.ContentName,
		})
	}
	return response, nil
}
