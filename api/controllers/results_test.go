package controllers

import (
	"net/http"
	"testing"

	apitest "github.com/EltonDagodog/VoteRoyale/api/controllers/testing"
	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedResultsBackend loads one event worth of data: Anna and Bea have votes,
// Cara has none. Talent weighs twice as much as Evening Gown.
func seedResultsBackend(env *testEnv) {
	env.backend.respond(http.MethodGet, "/events/5/", http.StatusOK, map[string]any{
		"id": 5, "title": "Grand Pageant", "status": "open", "date": "2024-06-02T12:00:00Z",
	})
	env.backend.respond(http.MethodGet, "/events/5/participants/", http.StatusOK, []map[string]any{
		{"id": "p1", "name": "Anna", "gender": "female", "contestant_number": 1},
		{"id": "p2", "name": "Bea", "gender": "female", "contestant_number": 2},
		{"id": "p3", "name": "Cara", "gender": "female", "contestant_number": 3},
	})
	env.backend.respond(http.MethodGet, "/events/5/judges/", http.StatusOK, []map[string]any{
		{"id": "j1", "name": "Judge Hart", "email": "hart@example.com"},
	})
	env.backend.respond(http.MethodGet, "/events/5/categories/", http.StatusOK, []map[string]any{
		{
			"id": "c1", "name": "Talent", "max_score": 100, "weight": 2,
			"status": "open", "gender": "everyone", "award_type": "major",
			"criteria": []map[string]any{{"id": 1, "name": "Performance", "percentage": 100}},
		},
		{
			"id": "c2", "name": "Evening Gown", "max_score": 100, "weight": 1,
			"status": "open", "gender": "everyone", "award_type": "minor",
			"criteria": []map[string]any{{"id": 2, "name": "Poise", "percentage": 100}},
		},
	})
	env.backend.respond(http.MethodGet, "/events/coordinator/5/votes/", http.StatusOK, []map[string]any{
		{"id": 1, "judgeId": "j1", "participantId": "p1", "categoryId": "c1", "score": 90},
		{"id": 2, "judgeId": "j2", "participantId": "p1", "categoryId": "c1", "score": 80},
		{"id": 3, "judgeId": "j1", "participantId": "p2", "categoryId": "c1", "score": 88},
		{"id": 4, "judgeId": "j1", "participantId": "p1", "categoryId": "c2", "score": 60},
	})
}

func TestEventResults(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedCoordinator(t)
	seedResultsBackend(env)

	res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/5/results", nil, authHeader(token))
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var results models.EventResultsResponse
	decodeBody(t, res, &results)

	t.Run("stats count the snapshot", func(t *testing.T) {
		assert.Equal(t, 3, results.Stats.Participants)
		assert.Equal(t, 1, results.Stats.Judges)
		assert.Equal(t, 2, results.Stats.Categories)
		assert.Equal(t, 4, results.Stats.Votes)
		assert.Equal(t, 2, results.Stats.ParticipantsWithVotes)
	})

	t.Run("overall ranking weighs category averages", func(t *testing.T) {
		require.Len(t, results.Overall, 2)

		// Bea: Talent only, 88. Anna: (85*2 + 60*1) / 3 = 76.666...
		first := results.Overall[0]
		assert.Equal(t, "Bea", first.Participant.Name)
		assert.Equal(t, 1, first.Rank)
		assert.Equal(t, 88.0, first.OverallAverage)

		second := results.Overall[1]
		assert.Equal(t, "Anna", second.Participant.Name)
		assert.Equal(t, 2, second.Rank)
		assert.Equal(t, 76.7, second.OverallAverage)
		require.Len(t, second.CategoryScores, 2)
		assert.Equal(t, "Talent", second.CategoryScores[0].Category)
		assert.Equal(t, 85.0, second.CategoryScores[0].AverageScore)
		assert.Equal(t, 170.0, second.CategoryScores[0].WeightedScore)
	})

	t.Run("category standings exclude unvoted participants", func(t *testing.T) {
		require.Len(t, results.Categories, 2)
		talent := results.Categories[0]
		assert.Equal(t, "Talent", talent.Category.Name)
		require.Len(t, talent.Results, 2)
		assert.Equal(t, "Bea", talent.Results[0].Participant.Name)
		assert.Equal(t, 1, talent.Results[0].Rank)
		assert.Equal(t, "Anna", talent.Results[1].Participant.Name)
		assert.Equal(t, 2, talent.Results[1].Rank)
		assert.Equal(t, 3, talent.TotalVotes)

		gown := results.Categories[1]
		require.Len(t, gown.Results, 1)
		assert.Equal(t, "Anna", gown.Results[0].Participant.Name)
		assert.Equal(t, 1, gown.TotalVotes)
	})
}

func TestCategoryResultsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedCoordinator(t)
	seedResultsBackend(env)
	env.backend.respond(http.MethodGet, "/events/5/categories/c1/", http.StatusOK, map[string]any{
		"id": "c1", "name": "Talent", "max_score": 100, "weight": 2,
		"status": "open", "gender": "everyone", "award_type": "major",
		"criteria": []map[string]any{{"id": 1, "name": "Performance", "percentage": 100}},
	})

	res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/5/results/categories/c1", nil, authHeader(token))
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var standing models.CategoryStandingResponse
	decodeBody(t, res, &standing)
	assert.Equal(t, "Talent", standing.Category.Name)
	require.Len(t, standing.Results, 2)
	assert.Equal(t, "Bea", standing.Results[0].Participant.Name)
}

func TestEventVotesListing(t *testing.T) {
	t.Run("coordinator sees the raw per-judge vote records", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)
		env.backend.respond(http.MethodGet, "/events/coordinator/5/votes/", http.StatusOK, []map[string]any{
			{
				"id":           1,
				"judge":        map[string]any{"id": "j1", "name": "Judge Hart"},
				"participant":  map[string]any{"id": "p1", "name": "Anna"},
				"category":     map[string]any{"id": "c1", "name": "Talent"},
				"score":        81.5,
				"comments":     "strong routine",
				"submitted_at": "2024-06-01T10:00:00Z",
			},
			{"id": 2, "judgeId": "j2", "participantId": "p2", "categoryId": "c1", "score": 60},
		})

		res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/5/votes", nil, authHeader(token))
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var votes []models.VoteResponse
		decodeBody(t, res, &votes)
		require.Len(t, votes, 2)
		assert.Equal(t, "Judge Hart", votes[0].Judge.Name)
		assert.Equal(t, "Anna", votes[0].Participant.Name)
		assert.Equal(t, 81.5, votes[0].Score)
		assert.Equal(t, "strong routine", votes[0].Comments)
		assert.Equal(t, "2024-06-01T10:00:00Z", votes[0].SubmittedAt)

		// the flat dashboard shape carries ids only
		assert.Equal(t, "j2", votes[1].Judge.ID)
		assert.Empty(t, votes[1].Judge.Name)
		assert.Empty(t, votes[1].SubmittedAt)
	})

	t.Run("judges cannot read the vote list", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")

		res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/5/votes", nil, authHeader(token))
		assert.Equal(t, http.StatusForbidden, res.Code)
	})
}

func TestEventResultsUpstreamFailures(t *testing.T) {
	t.Run("expired upstream token pushes back to login", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)
		seedResultsBackend(env)
		env.backend.respond(http.MethodGet, "/events/coordinator/5/votes/", http.StatusUnauthorized,
			map[string]string{"detail": "token expired"})

		res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/5/results", nil, authHeader(token))
		assert.Equal(t, http.StatusUnauthorized, res.Code)
		assert.Contains(t, res.Body.String(), `"login":true`)
	})

	t.Run("unknown event", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)

		res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/404/results", nil, authHeader(token))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
