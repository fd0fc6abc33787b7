package controllers

import (
	"context"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/scoring"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type ResultsController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
}

func NewResultsController(client *upstream.Client, sessions storage.SessionStorage) *ResultsController {
	return &ResultsController{upstream: client, sessions: sessions}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/events/:eventId/results",
		transport.SessionAuthMiddleware(c.sessions), transport.RequireRole(storage.RoleCoordinator))

	group.GET("", c.eventResults)
	group.GET("/categories/:categoryId", c.categoryResults)

	votes := engine.Group("/api/events/:eventId/votes",
		transport.SessionAuthMiddleware(c.sessions), transport.RequireRole(storage.RoleCoordinator))
	votes.GET("", c.eventVotes)
}

// snapshot is one consistent point-in-time view of an event. All collections
// come from the same concurrent fetch; if any piece fails the whole snapshot
// is discarded, so aggregation never sees partial data.
type snapshot struct {
	event        *upstream.Event
	participants []upstream.Participant
	judges       []upstream.Judge
	votes        []upstream.Vote
	categories   []upstream.Category
}

func (c *ResultsController) fetchSnapshot(ctx context.Context, token string, eventID upstream.ID) (*snapshot, error) {
	snap := &snapshot{}
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		event, err := c.upstream.Event(ctx, token, eventID)
		snap.event = event
		return err
	})
	eg.Go(func() error {
		participants, err := c.upstream.Participants(ctx, token, eventID)
		snap.participants = participants
		return err
	})
	eg.Go(func() error {
		judges, err := c.upstream.Judges(ctx, token, eventID)
		snap.judges = judges
		return err
	})
	eg.Go(func() error {
		votes, err := c.upstream.EventVotes(ctx, token, eventID)
		snap.votes = votes
		return err
	})
	eg.Go(func() error {
		categories, err := c.upstream.Categories(ctx, token, eventID)
		snap.categories = categories
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// eventVotes godoc
// @Summary List every submitted vote of an event
// @Description The raw per-judge vote records behind the rankings.
// @Tags results
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} models.VoteResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/votes [get]
func (c *ResultsController) eventVotes(g *gin.Context) {
	session := transport.SessionFrom(g)
	votes, err := c.upstream.EventVotes(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}
	g.JSON(http.StatusOK, models.TransformVotesFromUpstream(votes))
}

// eventResults godoc
// @Summary Aggregated results for an event
// @Description Per-category rankings plus the weighted overall ranking.
// @Tags results
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} models.EventResultsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/results [get]
func (c *ResultsController) eventResults(g *gin.Context) {
	session := transport.SessionFrom(g)
	snap, err := c.fetchSnapshot(g.Request.Context(), session.AccessToken, upstream.ID(g.Param("eventId")))
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	standings := make([]models.CategoryStandingResponse, 0, len(snap.categories))
	for _, category := range snap.categories {
		standing := scoring.CategoryResults(category, snap.votes, snap.participants)
		standings = append(standings, models.TransformCategoryStanding(standing))
	}

	overall := scoring.OverallResults(snap.categories, snap.votes, snap.participants)

	g.JSON(http.StatusOK, models.EventResultsResponse{
		Event: models.TransformEventFromUpstream(snap.event),
		Stats: models.EventStatsResponse{
			Participants:          len(snap.participants),
			Judges:                len(snap.judges),
			Categories:            len(snap.categories),
			Votes:                 len(snap.votes),
			ParticipantsWithVotes: len(overall),
		},
		Overall:    models.TransformOverallResults(overall),
		Categories: standings,
	})
}

// categoryResults godoc
// @Summary Ranked results for one category
// @Tags results
// @Produce json
// @Param eventId path string true "Event ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} models.CategoryStandingResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{eventId}/results/categories/{categoryId} [get]
func (c *ResultsController) categoryResults(g *gin.Context) {
	session := transport.SessionFrom(g)
	eventID := upstream.ID(g.Param("eventId"))

	var (
		category     *upstream.Category
		participants []upstream.Participant
		votes        []upstream.Vote
	)
	eg, ctx := errgroup.WithContext(g.Request.Context())
	eg.Go(func() error {
		var err error
		category, err = c.upstream.Category(ctx, session.AccessToken, eventID, upstream.ID(g.Param("categoryId")))
		return err
	})
	eg.Go(func() error {
		var err error
		participants, err = c.upstream.Participants(ctx, session.AccessToken, eventID)
		return err
	})
	eg.Go(func() error {
		var err error
		votes, err = c.upstream.EventVotes(ctx, session.AccessToken, eventID)
		return err
	})
	if err := eg.Wait(); err != nil {
		respondUpstreamError(g, err)
		return
	}

	standing := scoring.CategoryResults(*category, votes, participants)
	g.JSON(http.StatusOK, models.TransformCategoryStanding(standing))
}
