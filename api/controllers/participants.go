package controllers

import (
	"fmt"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
)

type ParticipantsController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
}

func NewParticipantsController(client *upstream.Client, sessions storage.SessionStorage) *ParticipantsController {
	return &ParticipantsController{upstream: client, sessions: sessions}
}

func (c *ParticipantsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/events/:eventId/participants", transport.SessionAuthMiddleware(c.sessions))

	group.GET("", c.list)

	coordinator := group.Group("", transport.RequireRole(storage.RoleCoordinator))
	coordinator.POST("", c.create)
	coordinator.PUT("/:participantId", c.update)
	coordinator.DELETE("/:participantId", c.delete)
}

// list godoc
// @Summary List an event's participants
// @Tags participants
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} models.ParticipantResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/events/{eventId}/participants [get]
func (c *ParticipantsController) list(g *gin.Context) {
	session := transport.SessionFrom(g)
	participants, err := c.upstream.Participants(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	responses := make([]models.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		p := p
		responses = append(responses, models.TransformParticipantFromUpstream(&p))
	}
	g.JSON(http.StatusOK, responses)
}

// create godoc
// @Summary Register a participant
// @Description Rejects contestant numbers already assigned within the event.
// @Tags participants
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param participant body models.ParticipantCreateRequest true "Participant"
// @Success 200 {object} models.ParticipantResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId}/participants [post]
func (c *ParticipantsController) create(g *gin.Context) {
	var req models.ParticipantCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name and a positive contestant number are required"})
		return
	}

	session := transport.SessionFrom(g)
	eventID := upstream.ID(g.Param("eventId"))

	// duplicate contestant numbers are caught before any write
	existing, err := c.upstream.Participants(g.Request.Context(), session.AccessToken, eventID)
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	for _, p := range existing {
		if p.ContestantNumber == req.ContestantNumber {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("contestant number %d is already assigned", req.ContestantNumber),
			})
			return
		}
	}

	participant, err := c.upstream.CreateParticipant(g.Request.Context(), session.AccessToken, eventID, req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("PARTICIPANTS: registered contestant #%d %s", participant.ContestantNumber, participant.Name)
	g.JSON(http.StatusOK, models.TransformParticipantFromUpstream(participant))
}

// update godoc
// @Summary Update a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param participantId path string true "Participant ID"
// @Param participant body models.ParticipantCreateRequest true "Participant"
// @Success 200 {object} models.ParticipantResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId}/participants/{participantId} [put]
func (c *ParticipantsController) update(g *gin.Context) {
	var req models.ParticipantCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	session := transport.SessionFrom(g)
	participant, err := c.upstream.UpdateParticipant(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("participantId")), req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformParticipantFromUpstream(participant))
}

// delete godoc
// @Summary Remove a participant
// @Tags participants
// @Produce json
// @Param eventId path string true "Event ID"
// @Param participantId path string true "Participant ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/participants/{participantId} [delete]
func (c *ParticipantsController) delete(g *gin.Context) {
	session := transport.SessionFrom(g)
	err := c.upstream.DeleteParticipant(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("participantId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("PARTICIPANTS: removed participant %s", g.Param("participantId"))
	g.JSON(http.StatusOK, models.MessageResponse{Message: "participant removed"})
}
