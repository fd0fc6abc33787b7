package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/EltonDagodog/VoteRoyale/voting"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// VotingController runs judge scoring sessions: open with guards, record
// clamped criterion scores, submit the whole batch upstream or discard.
type VotingController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
	registry *voting.Registry
	now      func() time.Time
}

func NewVotingController(client *upstream.Client, sessions storage.SessionStorage, registry *voting.Registry) *VotingController {
	return &VotingController{
		upstream: client,
		sessions: sessions,
		registry: registry,
		now:      time.Now,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/voting/sessions",
		transport.SessionAuthMiddleware(c.sessions), transport.RequireRole(storage.RoleJudge))

	group.POST("", c.open)
	group.GET("/:sessionId", c.get)
	group.PUT("/:sessionId/scores", c.setScore)
	group.POST("/:sessionId/submit", c.submit)
	group.DELETE("/:sessionId", c.discard)
}

// open godoc
// @Summary Open a scoring session for a category
// @Description Refused when the category is closed or invalid, the event deadline has passed, or the judge already voted.
// @Tags voting
// @Accept json
// @Produce json
// @Param request body models.OpenSessionRequest true "Category to score"
// @Success 200 {object} models.SessionResponse
// @Failure 403 {object} models.ErrorResponse "Deadline passed"
// @Failure 409 {object} models.ErrorResponse "Already judged or category closed"
// @Router /api/voting/sessions [post]
func (c *VotingController) open(g *gin.Context) {
	var req models.OpenSessionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "categoryId is required"})
		return
	}

	consoleSession := transport.SessionFrom(g)
	eventID := upstream.ID(consoleSession.EventID)

	var (
		event     *upstream.Event
		category  *upstream.Category
		dashboard *upstream.JudgeDashboard
	)
	eg, ctx := errgroup.WithContext(g.Request.Context())
	eg.Go(func() error {
		var err error
		event, err = c.upstream.Event(ctx, consoleSession.AccessToken, eventID)
		return err
	})
	eg.Go(func() error {
		var err error
		category, err = c.upstream.Category(ctx, consoleSession.AccessToken, eventID, upstream.ID(req.CategoryID))
		return err
	})
	eg.Go(func() error {
		var err error
		dashboard, err = c.upstream.JudgeDashboard(ctx, consoleSession.AccessToken)
		return err
	})
	if err := eg.Wait(); err != nil {
		respondUpstreamError(g, err)
		return
	}

	// the dashboard spans every event the judge was ever assigned to
	participants := make([]upstream.Participant, 0, len(dashboard.Participants))
	for _, p := range dashboard.Participants {
		if p.Event.ID == eventID {
			participants = append(participants, p)
		}
	}

	judge := upstream.Judge{ID: upstream.ID(consoleSession.UserID), Name: consoleSession.Name}
	session, err := voting.Open(judge, *event, *category, participants, dashboard.Votes, c.now())
	if err != nil {
		respondVotingError(g, err)
		return
	}
	if _, err := c.registry.Add(session); err != nil {
		logging.Log.Errorf("VOTING: failed to register session: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not open scoring session"})
		return
	}

	logging.Log.Infof("VOTING: judge %s opened session %s for category %s", judge.Name, session.ID, category.Name)
	g.JSON(http.StatusOK, models.TransformSession(session))
}

// get godoc
// @Summary Inspect a scoring session
// @Tags voting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/voting/sessions/{sessionId} [get]
func (c *VotingController) get(g *gin.Context) {
	session, ok := c.ownedSession(g)
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.TransformSession(session))
}

// setScore godoc
// @Summary Record one criterion score
// @Description The raw value is clamped to [1,10]; non-numeric input records as 1.
// @Tags voting
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param score body models.ScoreRequest true "Score"
// @Success 200 {object} models.ScoreResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/voting/sessions/{sessionId}/scores [put]
func (c *VotingController) setScore(g *gin.Context) {
	var req models.ScoreRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "participantId and criterionId are required"})
		return
	}

	session, ok := c.ownedSession(g)
	if !ok {
		return
	}

	participantID := upstream.ID(req.ParticipantID)
	score, err := session.SetScore(participantID, req.CriterionID, req.Value)
	if err != nil {
		respondVotingError(g, err)
		return
	}

	g.JSON(http.StatusOK, models.ScoreResponse{
		ParticipantID: req.ParticipantID,
		CriterionID:   req.CriterionID,
		Score:         score,
		WeightedScore: models.Round1(session.WeightedScore(participantID)),
	})
}

// submit godoc
// @Summary Submit the whole scoring session
// @Description All-or-nothing: every eligible participant needs every criterion scored.
// @Tags voting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.SubmitResponse
// @Failure 403 {object} models.ErrorResponse "Deadline passed, session discarded"
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ValidationErrorDetail "Missing score"
// @Router /api/voting/sessions/{sessionId}/submit [post]
func (c *VotingController) submit(g *gin.Context) {
	session, ok := c.ownedSession(g)
	if !ok {
		return
	}

	subs, err := session.BuildSubmission(c.now())
	if err != nil {
		if errors.Is(err, voting.ErrDeadlineExceeded) {
			// past the deadline the in-progress scores are gone for good
			c.registry.Discard(session.ID)
		}
		respondVotingError(g, err)
		return
	}

	consoleSession := transport.SessionFrom(g)
	result, err := c.upstream.SubmitVotes(g.Request.Context(), consoleSession.AccessToken,
		session.Event.ID, session.Category.ID, subs)
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	c.registry.Discard(session.ID)
	logging.Log.Infof("VOTING: session %s submitted %d votes for category %s", session.ID, len(subs), session.Category.Name)
	g.JSON(http.StatusOK, models.SubmitResponse{Category: result.Category, Votes: len(subs)})
}

// discard godoc
// @Summary Discard a scoring session without submitting
// @Tags voting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/voting/sessions/{sessionId} [delete]
func (c *VotingController) discard(g *gin.Context) {
	session, ok := c.ownedSession(g)
	if !ok {
		return
	}
	c.registry.Discard(session.ID)
	logging.Log.Infof("VOTING: session %s discarded", session.ID)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "session discarded"})
}

// ownedSession loads the path session and checks it belongs to the calling
// judge. Foreign sessions read as not-found on purpose.
func (c *VotingController) ownedSession(g *gin.Context) (*voting.Session, bool) {
	consoleSession := transport.SessionFrom(g)
	session, err := c.registry.Get(g.Param("sessionId"))
	if err != nil || session.Judge.ID.String() != consoleSession.UserID {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "scoring session not found"})
		return nil, false
	}
	return session, true
}

func respondVotingError(g *gin.Context, err error) {
	var validation *voting.ValidationError
	switch {
	case errors.As(err, &validation):
		g.JSON(http.StatusUnprocessableEntity, models.TransformValidationErrorDetail(validation))
	case errors.Is(err, voting.ErrAlreadyVoted):
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, voting.ErrCategoryClosed), errors.Is(err, voting.ErrInvalidCriteria):
		g.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, voting.ErrDeadlineExceeded):
		g.JSON(http.StatusForbidden, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, voting.ErrNotEligible), errors.Is(err, voting.ErrUnknownCriterion):
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, voting.ErrSessionNotFound):
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	default:
		logging.Log.Errorf("VOTING: unexpected error: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "unexpected internal error"})
	}
}
