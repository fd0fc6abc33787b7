package controllers

import (
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
)

type EventsController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
}

func NewEventsController(client *upstream.Client, sessions storage.SessionStorage) *EventsController {
	return &EventsController{upstream: client, sessions: sessions}
}

func (c *EventsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/events", transport.SessionAuthMiddleware(c.sessions))

	group.GET("", c.list)
	group.GET("/:eventId", c.get)

	coordinator := group.Group("", transport.RequireRole(storage.RoleCoordinator))
	coordinator.POST("", c.create)
	coordinator.PUT("/:eventId", c.update)
	coordinator.DELETE("/:eventId", c.delete)
}

// list godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/events [get]
func (c *EventsController) list(g *gin.Context) {
	session := transport.SessionFrom(g)
	events, err := c.upstream.Events(g.Request.Context(), session.AccessToken)
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	responses := make([]models.EventResponse, 0, len(events))
	for _, e := range events {
		e := e
		responses = append(responses, models.TransformEventFromUpstream(&e))
	}
	g.JSON(http.StatusOK, responses)
}

// get godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} models.EventResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId} [get]
func (c *EventsController) get(g *gin.Context) {
	session := transport.SessionFrom(g)
	event, err := c.upstream.Event(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformEventFromUpstream(event))
}

// create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.EventCreateRequest true "Event"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events [post]
func (c *EventsController) create(g *gin.Context) {
	var req models.EventCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title and date are required"})
		return
	}

	session := transport.SessionFrom(g)
	event, err := c.upstream.CreateEvent(g.Request.Context(), session.AccessToken, req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("EVENTS: created event %s (%s)", event.Title, event.ID)
	g.JSON(http.StatusOK, models.TransformEventFromUpstream(event))
}

// update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param event body models.EventUpdateRequest true "Event"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId} [put]
func (c *EventsController) update(g *gin.Context) {
	var req models.EventUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	session := transport.SessionFrom(g)
	event, err := c.upstream.UpdateEvent(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")), req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformEventFromUpstream(event))
}

// delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId} [delete]
func (c *EventsController) delete(g *gin.Context) {
	session := transport.SessionFrom(g)
	if err := c.upstream.DeleteEvent(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId"))); err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("EVENTS: deleted event %s", g.Param("eventId"))
	g.JSON(http.StatusOK, models.MessageResponse{Message: "event deleted"})
}
