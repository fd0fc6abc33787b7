package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	apitest "github.com/EltonDagodog/VoteRoyale/api/controllers/testing"
	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func talentCategoryPayload(status string) map[string]any {
	return map[string]any{
		"id": 77, "name": "Talent", "max_score": 100, "weight": 2,
		"status": status, "gender": "everyone", "award_type": "major",
		"criteria": []map[string]any{
			{"id": 1, "name": "Beauty", "percentage": 40},
			{"id": 2, "name": "Elegance", "percentage": 35},
			{"id": 3, "name": "Stage Presence", "percentage": 25},
		},
	}
}

// seedVotingBackend registers the three fetches an open needs: the event,
// the category and the judge dashboard.
func seedVotingBackend(env *testEnv, categoryStatus string, priorVotes []map[string]any) {
	env.backend.respond(http.MethodGet, "/events/5/", http.StatusOK, map[string]any{
		"id": 5, "title": "Grand Pageant", "status": "open",
		"date": env.now.Add(24 * time.Hour).Format(time.RFC3339),
	})
	env.backend.respond(http.MethodGet, "/events/5/categories/77/", http.StatusOK, talentCategoryPayload(categoryStatus))
	env.backend.respond(http.MethodGet, "/events/judges/dashboard/", http.StatusOK, map[string]any{
		"participants": []map[string]any{
			{"id": "p1", "name": "Anna", "gender": "female", "event": 5, "contestant_number": 1},
			{"id": "p2", "name": "Bea", "gender": "female", "event": 5, "contestant_number": 2},
			{"id": "p9", "name": "Other Event", "gender": "female", "event": 9, "contestant_number": 3},
		},
		"votes": priorVotes,
	})
}

func openSession(t *testing.T, env *testEnv, token string) models.SessionResponse {
	t.Helper()
	res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions",
		map[string]string{"categoryId": "77"}, authHeader(token))
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	var session models.SessionResponse
	decodeBody(t, res, &session)
	return session
}

func putScore(t *testing.T, env *testEnv, token, sessionID, participantID string, criterionID int, value string) *models.ScoreResponse {
	t.Helper()
	res := apitest.PerformRequest(env.router, http.MethodPut, "/api/voting/sessions/"+sessionID+"/scores",
		models.ScoreRequest{ParticipantID: participantID, CriterionID: criterionID, Value: value}, authHeader(token))
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	var score models.ScoreResponse
	decodeBody(t, res, &score)
	return &score
}

func TestOpenVotingSession(t *testing.T) {
	t.Run("open returns eligible participants of the assigned event", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)

		session := openSession(t, env, token)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "Talent", session.Category.Name)
		require.Len(t, session.Participants, 2)
		assert.Equal(t, "Anna", session.Participants[0].Participant.Name)
		assert.Equal(t, 0.0, session.Participants[0].WeightedScore)
	})

	t.Run("closed category", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "closed", nil)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions",
			map[string]string{"categoryId": "77"}, authHeader(token))
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("already voted in the category", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", []map[string]any{
			{"id": 1, "judgeId": 7, "participantId": "p1", "categoryId": 77, "score": 80},
		})

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions",
			map[string]string{"categoryId": "77"}, authHeader(token))
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("past event deadline", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)
		env.now = env.now.Add(72 * time.Hour)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions",
			map[string]string{"categoryId": "77"}, authHeader(token))
		assert.Equal(t, http.StatusForbidden, res.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions",
			map[string]string{"categoryId": "404"}, authHeader(token))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("coordinators cannot open scoring sessions", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions",
			map[string]string{"categoryId": "77"}, authHeader(token))
		assert.Equal(t, http.StatusForbidden, res.Code)
	})
}

func TestRecordScores(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedJudge(t, "7", "5")
	seedVotingBackend(env, "open", nil)
	session := openSession(t, env, token)

	t.Run("raw values clamp into the score band", func(t *testing.T) {
		cases := []struct {
			value string
			want  int
		}{
			{"-5", 1},
			{"0", 1},
			{"11", 10},
			{"abc", 1},
			{"7", 7},
		}
		for _, tc := range cases {
			score := putScore(t, env, token, session.ID, "p1", 1, tc.value)
			assert.Equal(t, tc.want, score.Score, "raw %q", tc.value)
		}
	})

	t.Run("weighted score follows the criterion percentages", func(t *testing.T) {
		putScore(t, env, token, session.ID, "p1", 1, "8")
		putScore(t, env, token, session.ID, "p1", 2, "9")
		score := putScore(t, env, token, session.ID, "p1", 3, "7")

		assert.Equal(t, 81.0, score.WeightedScore)
	})

	t.Run("participant from another event", func(t *testing.T) {
		res := apitest.PerformRequest(env.router, http.MethodPut, "/api/voting/sessions/"+session.ID+"/scores",
			models.ScoreRequest{ParticipantID: "p9", CriterionID: 1, Value: "5"}, authHeader(token))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("unknown criterion", func(t *testing.T) {
		res := apitest.PerformRequest(env.router, http.MethodPut, "/api/voting/sessions/"+session.ID+"/scores",
			models.ScoreRequest{ParticipantID: "p1", CriterionID: 42, Value: "5"}, authHeader(token))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("another judge cannot touch the session", func(t *testing.T) {
		otherToken := env.seedJudge(t, "8", "5")
		res := apitest.PerformRequest(env.router, http.MethodGet, "/api/voting/sessions/"+session.ID, nil, authHeader(otherToken))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestSubmitVotingSession(t *testing.T) {
	fillScores := func(t *testing.T, env *testEnv, token, sessionID string) {
		for _, pid := range []string{"p1", "p2"} {
			for cid := 1; cid <= 3; cid++ {
				putScore(t, env, token, sessionID, pid, cid, "8")
			}
		}
	}

	t.Run("complete session submits one vote per participant", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)
		session := openSession(t, env, token)
		fillScores(t, env, token, session.ID)

		var submitted map[string][]json.RawMessage
		env.backend.handle(http.MethodPost, "/events/5/categories/77/vote/", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
			_ = json.NewEncoder(w).Encode(map[string]any{"category": "Talent", "votes": []any{}})
		})

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions/"+session.ID+"/submit", nil, authHeader(token))
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		assert.Len(t, submitted["votes"], 2)

		var result models.SubmitResponse
		decodeBody(t, res, &result)
		assert.Equal(t, "Talent", result.Category)
		assert.Equal(t, 2, result.Votes)

		// the session is gone once submitted
		res = apitest.PerformRequest(env.router, http.MethodGet, "/api/voting/sessions/"+session.ID, nil, authHeader(token))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("missing score rejects the whole batch", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)
		session := openSession(t, env, token)
		for cid := 1; cid <= 3; cid++ {
			putScore(t, env, token, session.ID, "p1", cid, "8")
		}
		putScore(t, env, token, session.ID, "p2", 1, "8")

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions/"+session.ID+"/submit", nil, authHeader(token))
		require.Equal(t, http.StatusUnprocessableEntity, res.Code)

		var detail models.ValidationErrorDetail
		decodeBody(t, res, &detail)
		assert.Equal(t, "p2", detail.ParticipantID)
		assert.Equal(t, "Elegance", detail.Criterion)
		assert.Contains(t, detail.Error, "Bea")

		// nothing reached the backend and the session survives
		res = apitest.PerformRequest(env.router, http.MethodGet, "/api/voting/sessions/"+session.ID, nil, authHeader(token))
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("deadline reached after opening discards the session", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)
		session := openSession(t, env, token)
		fillScores(t, env, token, session.ID)

		env.now = env.now.Add(72 * time.Hour)
		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/voting/sessions/"+session.ID+"/submit", nil, authHeader(token))
		assert.Equal(t, http.StatusForbidden, res.Code)

		res = apitest.PerformRequest(env.router, http.MethodGet, "/api/voting/sessions/"+session.ID, nil, authHeader(token))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("discard drops in-progress scores", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		seedVotingBackend(env, "open", nil)
		session := openSession(t, env, token)

		res := apitest.PerformRequest(env.router, http.MethodDelete, "/api/voting/sessions/"+session.ID, nil, authHeader(token))
		require.Equal(t, http.StatusOK, res.Code)

		res = apitest.PerformRequest(env.router, http.MethodGet, "/api/voting/sessions/"+session.ID, nil, authHeader(token))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
