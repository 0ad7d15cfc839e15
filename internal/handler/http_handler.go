package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/domain"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/service"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/pkg/log"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/pkg/response"
)

// Handler handles HTTP requests for the webhook receiver.
type Handler struct {
	events service.EventService
}

// NewHandler creates a new HTTP handler.
func NewHandler(events service.EventService) *Handler {
	return &Handler{
		events: events,
	}
}

// RegisterRoutes registers all routes. The recorder only ever calls
// POST /webhook; every other path or method answers 404 with an empty body.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", h.HandleWebhook)
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
}

// HandleWebhook runs one event through the decode → dispatch pipeline.
// Filtered and non-actionable events still answer 200; only a body read
// failure, a decode failure or a notification failure answers 500.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		l.Warn().Err(err).Msg("failed to read request body")
		response.InternalText(c, err.Error())
		return
	}

	event, err := domain.DecodeEvent(body)
	if err != nil {
		l.Warn().Err(err).Msg("failed to decode event payload")
		response.InternalText(c, err.Error())
		return
	}

	outcome, err := h.events.HandleEvent(ctx, event)
	if err != nil {
		l.Error().Err(err).
			Str(log.FieldEventType, event.EventType).
			Int64(log.FieldRoomID, event.EventData.RoomID).
			Msg("failed to handle event")
		response.InternalText(c, err.Error())
		return
	}

	l.Debug().Str(log.FieldOutcome, string(outcome)).Msg("event accepted")
	response.Accepted(c)
}
