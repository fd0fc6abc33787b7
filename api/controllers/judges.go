package controllers

import (
	"net/http"
	"strings"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
)

type JudgesController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
}

func NewJudgesController(client *upstream.Client, sessions storage.SessionStorage) *JudgesController {
	return &JudgesController{upstream: client, sessions: sessions}
}

func (c *JudgesController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/events/:eventId/judges",
		transport.SessionAuthMiddleware(c.sessions), transport.RequireRole(storage.RoleCoordinator))

	group.GET("", c.list)
	group.POST("", c.create)
	group.PUT("/:judgeId", c.update)
	group.DELETE("/:judgeId", c.delete)
}

// list godoc
// @Summary List an event's judges
// @Tags judges
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} models.JudgeResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/events/{eventId}/judges [get]
func (c *JudgesController) list(g *gin.Context) {
	session := transport.SessionFrom(g)
	judges, err := c.upstream.Judges(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	responses := make([]models.JudgeResponse, 0, len(judges))
	for _, j := range judges {
		j := j
		responses = append(responses, models.TransformJudgeFromUpstream(&j))
	}
	g.JSON(http.StatusOK, responses)
}

// create godoc
// @Summary Register a judge
// @Description The backend issues the access code; duplicate emails within the event are rejected here first.
// @Tags judges
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param judge body models.JudgeCreateRequest true "Judge"
// @Success 200 {object} models.JudgeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId}/judges [post]
func (c *JudgesController) create(g *gin.Context) {
	var req models.JudgeCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name and a valid email are required"})
		return
	}

	session := transport.SessionFrom(g)
	eventID := upstream.ID(g.Param("eventId"))

	existing, err := c.upstream.Judges(g.Request.Context(), session.AccessToken, eventID)
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	for _, j := range existing {
		if strings.EqualFold(j.Email, req.Email) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "a judge with this email is already registered"})
			return
		}
	}

	judge, err := c.upstream.CreateJudge(g.Request.Context(), session.AccessToken, eventID, req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("JUDGES: registered judge %s for event %s", judge.Name, eventID)
	g.JSON(http.StatusOK, models.TransformJudgeFromUpstream(judge))
}

// update godoc
// @Summary Update a judge
// @Tags judges
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param judgeId path string true "Judge ID"
// @Param judge body models.JudgeCreateRequest true "Judge"
// @Success 200 {object} models.JudgeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events/{eventId}/judges/{judgeId} [put]
func (c *JudgesController) update(g *gin.Context) {
	var req models.JudgeCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}

	session := transport.SessionFrom(g)
	judge, err := c.upstream.UpdateJudge(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("judgeId")), req.ToUpstream())
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformJudgeFromUpstream(judge))
}

// delete godoc
// @Summary Remove a judge
// @Tags judges
// @Produce json
// @Param eventId path string true "Event ID"
// @Param judgeId path string true "Judge ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/judges/{judgeId} [delete]
func (c *JudgesController) delete(g *gin.Context) {
	session := transport.SessionFrom(g)
	err := c.upstream.DeleteJudge(g.Request.Context(), session.AccessToken,
		upstream.ID(g.Param("eventId")), upstream.ID(g.Param("judgeId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	logging.Log.Infof("JUDGES: removed judge %s", g.Param("judgeId"))
	g.JSON(http.StatusOK, models.MessageResponse{Message: "judge removed"})
}
