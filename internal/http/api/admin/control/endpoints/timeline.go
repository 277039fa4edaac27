package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Media-LLC/dayline/internal/db"
	"github.com/Lumen-Media-LLC/dayline/internal/http/api"
	"github.com/Lumen-Media-LLC/dayline/internal/http/api/admin/control/packets"
	"github.com/Lumen-Media-LLC/dayline/internal/model"
	"github.com/Lumen-Media-LLC/dayline/internal/sequences"
	"github.com/Lumen-Media-LLC/dayline/internal/timeline"
)

// maxRangeDays bounds the calendar feed query window.
const maxRangeDays = 366

// TimelineController owns one editor session per operator. Sessions are
// created lazily on first use and guarded by a single mutex; each session is
// single-writer by construction.
type TimelineController struct {
	store     db.Store
	sequences sequences.Store
	publisher timeline.Publisher

	mu       sync.Mutex
	sessions map[int]*timeline.Session
}

func NewTimelineController(store db.Store, seqStore sequences.Store, publisher timeline.Publisher) *TimelineController {
	return &TimelineController{
		store:     store,
		sequences: seqStore,
		publisher: publisher,
		sessions:  make(map[int]*timeline.Session),
	}
}

func TimelineModule(store db.Store, seqStore sequences.Store, publisher timeline.Publisher) api.Module {
	ctl := NewTimelineController(store, seqStore, publisher)
	return api.ModuleFunc(func(c *api.Controller) {
		// stored day sequences
		c.GET("/timeline/days", ctl.listDays)
		c.GET("/timeline/days/:date", ctl.getDay)
		c.DELETE("/timeline/days/:date", ctl.clearDay)

		// editor session
		c.GET("/timeline/session", ctl.getSessionState)
		c.POST("/timeline/session/selection", ctl.selectDay)
		c.POST("/timeline/session/open", ctl.openEditor)
		c.POST("/timeline/session/slots", ctl.addSlot)
		c.POST("/timeline/session/slots/:id/open", ctl.openSlot)
		c.PUT("/timeline/session/slots/:id", ctl.updateSlot)
		c.POST("/timeline/session/slots/:id/cancel", ctl.cancelSlotEdit)
		c.DELETE("/timeline/session/slots/:id", ctl.deleteSlot)
		c.POST("/timeline/session/drag", ctl.beginDrag)
		c.DELETE("/timeline/session/drag", ctl.cancelDrag)
		c.POST("/timeline/session/reorder", ctl.reorderSlots)
		c.POST("/timeline/session/save", ctl.saveSequence)
		c.POST("/timeline/session/cancel", ctl.cancelEditing)
	})
}

// session returns the operator's editor session, creating it on first use.
// Callers must hold t.mu.
func (t *TimelineController) session(user *model.User) *timeline.Session {
	s, ok := t.sessions[user.ID]
	if !ok {
		s = timeline.NewSession(t.sequences, t.store, t.publisher)
		t.sessions[user.ID] = s
	}
	return s
}

// mapTimelineError translates the scheduler's typed errors to HTTP codes.
func mapTimelineError(err error) *api.APIError {
	switch {
	case errors.Is(err, timeline.ErrSlotNotFound):
		return &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, sql.ErrNoRows):
		return &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	case errors.Is(err, timeline.ErrOverlap),
		errors.Is(err, timeline.ErrNotEditing),
		errors.Is(err, timeline.ErrSlotOpen):
		return &api.APIError{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, timeline.ErrBadDayKey),
		errors.Is(err, timeline.ErrBadClockFormat),
		errors.Is(err, timeline.ErrMinutesOutOfRange),
		errors.Is(err, timeline.ErrInvalidRange),
		errors.Is(err, timeline.ErrEmptySequence),
		errors.Is(err, timeline.ErrMissingContent),
		errors.Is(err, timeline.ErrNoSelection):
		return &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	default:
		log.Error().Err(err).Msg("timeline operation failed")
		return &api.APIError{Code: http.StatusInternalServerError, Message: "internal error"}
	}
}

func sessionResponse(s *timeline.Session) packets.SessionResponse {
	resp := packets.SessionResponse{
		State:     s.State().String(),
		Selection: s.Selection(),
		Slots:     packets.NewSlotResponses(s.Slots()),
	}
	if open, ok := s.EditingSlot(); ok {
		sr := packets.NewSlotResponse(open)
		resp.EditingSlot = &sr
	}
	return resp
}

func (t *TimelineController) listDays(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var query packets.ListDaysQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	from, err := time.Parse(sequences.DayKeyLayout, query.From)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid from date"}
	}
	to, err := time.Parse(sequences.DayKeyLayout, query.To)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid to date"}
	}
	if to.Before(from) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "to must not be before from"}
	}
	if int(to.Sub(from).Hours()/24) > maxRangeDays {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date range too large"}
	}

	out := make([]packets.SequenceResponse, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := d.Format(sequences.DayKeyLayout)
		seq, err := t.sequences.Get(ctx.Request.Context(), day)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to read timeline"}
		}
		if seq == nil {
			continue
		}
		out = append(out, packets.SequenceResponse{
			ID:    seq.ID,
			Name:  seq.Name,
			Day:   day,
			Slots: packets.NewSlotResponses(seq.Slots),
		})
	}
	return out, nil
}

func (t *TimelineController) getDay(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	day := ctx.Param("date")
	if _, err := time.Parse(sequences.DayKeyLayout, day); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}

	seq, err := t.sequences.Get(ctx.Request.Context(), day)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to read timeline"}
	}
	if seq == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no sequence for that day"}
	}

	return packets.SequenceResponse{
		ID:    seq.ID,
		Name:  seq.Name,
		Day:   day,
		Slots: packets.NewSlotResponses(seq.Slots),
	}, nil
}

func (t *TimelineController) clearDay(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	day := ctx.Param("date")
	if _, err := time.Parse(sequences.DayKeyLayout, day); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}

	if err := t.sequences.Delete(ctx.Request.Context(), day); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not clear day"}
	}
	return gin.H{"message": "cleared"}, nil
}

func (t *TimelineController) getSessionState(_ *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return sessionResponse(t.session(user)), nil
}

func (t *TimelineController) selectDay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SelectDayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	var err error
	if request.Mode == "range" {
		err = s.SelectRange(request.Date)
	} else {
		err = s.ToggleDay(request.Date)
	}
	if err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) openEditor(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if err := s.Begin(ctx.Request.Context()); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) addSlot(_ *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if _, err := s.AddSlot(); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) openSlot(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if err := s.OpenSlot(ctx.Param("id")); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) updateSlot(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSlotRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	start, err := timeline.ToMinutes(request.Start)
	if err != nil {
		return nil, mapTimelineError(err)
	}
	end, err := timeline.ToMinutes(request.End)
	if err != nil {
		return nil, mapTimelineError(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	open, ok := s.EditingSlot()
	if !ok || open.ID != ctx.Param("id") {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "slot is not open for editing"}
	}

	edit := timeline.SlotEdit{
		Start:       start,
		End:         end,
		ContentType: model.ContentType(request.ContentType),
		ContentID:   request.ContentID,
	}
	if err := s.UpdateSlot(ctx.Request.Context(), edit); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) cancelSlotEdit(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if open, ok := s.EditingSlot(); !ok || open.ID != ctx.Param("id") {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "slot is not open for editing"}
	}
	s.CancelSlotEdit()
	return sessionResponse(s), nil
}

func (t *TimelineController) deleteSlot(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if err := s.DeleteSlot(ctx.Param("id")); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) beginDrag(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.BeginDragRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if err := s.BeginDrag(request.SlotID); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) cancelDrag(_ *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	s.CancelDrag()
	return sessionResponse(s), nil
}

func (t *TimelineController) reorderSlots(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReorderSlotsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	if err := s.EndDrag(request.SlotIDs); err != nil {
		return nil, mapTimelineError(err)
	}
	return sessionResponse(s), nil
}

func (t *TimelineController) saveSequence(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SaveSequenceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	days, err := s.Save(ctx.Request.Context(), request.Name)
	if err != nil {
		return nil, mapTimelineError(err)
	}
	return packets.SaveResponse{Days: days}, nil
}

func (t *TimelineController) cancelEditing(_ *gin.Context, user *model.User) (any, *api.APIError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.session(user)
	s.Cancel()
	return sessionResponse(s), nil
}
