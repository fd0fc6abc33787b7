package controllers

import (
	"net/http"
	"testing"

	apitest "github.com/EltonDagodog/VoteRoyale/api/controllers/testing"
	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantCreate(t *testing.T) {
	existing := []map[string]any{
		{"id": "p1", "name": "Anna", "gender": "female", "contestant_number": 12},
	}

	t.Run("registers a new contestant", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)
		env.backend.respond(http.MethodGet, "/events/5/participants/", http.StatusOK, existing)
		env.backend.respond(http.MethodPost, "/events/5/participants/", http.StatusOK, map[string]any{
			"id": "p2", "name": "Bea", "gender": "female", "contestant_number": 13,
		})

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/events/5/participants",
			models.ParticipantCreateRequest{Name: "Bea", ContestantNumber: 13, Gender: "female"}, authHeader(token))

		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		var participant models.ParticipantResponse
		decodeBody(t, res, &participant)
		assert.Equal(t, "p2", participant.ID)
		assert.Equal(t, 13, participant.ContestantNumber)
	})

	t.Run("duplicate contestant number is rejected before the write", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)
		env.backend.respond(http.MethodGet, "/events/5/participants/", http.StatusOK, existing)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/events/5/participants",
			models.ParticipantCreateRequest{Name: "Bea", ContestantNumber: 12}, authHeader(token))

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Contains(t, res.Body.String(), "12")
	})

	t.Run("contestant number must be positive", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/events/5/participants",
			map[string]any{"name": "Bea", "contestant_number": 0}, authHeader(token))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("judges may list but not register", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedJudge(t, "7", "5")
		env.backend.respond(http.MethodGet, "/events/5/participants/", http.StatusOK, existing)

		res := apitest.PerformRequest(env.router, http.MethodGet, "/api/events/5/participants", nil, authHeader(token))
		assert.Equal(t, http.StatusOK, res.Code)

		res = apitest.PerformRequest(env.router, http.MethodPost, "/api/events/5/participants",
			models.ParticipantCreateRequest{Name: "Bea", ContestantNumber: 13}, authHeader(token))
		assert.Equal(t, http.StatusForbidden, res.Code)
	})
}

func TestJudgeCreate(t *testing.T) {
	existing := []map[string]any{
		{"id": "j1", "name": "Judge Hart", "email": "hart@example.com", "access_code": "AB12CD"},
	}

	t.Run("duplicate email is rejected regardless of casing", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)
		env.backend.respond(http.MethodGet, "/events/5/judges/", http.StatusOK, existing)

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/events/5/judges",
			map[string]any{"name": "Other Judge", "email": "HART@example.com"}, authHeader(token))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("new judge passes through", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.seedCoordinator(t)
		env.backend.respond(http.MethodGet, "/events/5/judges/", http.StatusOK, existing)
		env.backend.respond(http.MethodPost, "/events/5/judges/", http.StatusOK, map[string]any{
			"id": "j2", "name": "Judge Cruz", "email": "cruz@example.com", "access_code": "ZZ99XX",
		})

		res := apitest.PerformRequest(env.router, http.MethodPost, "/api/events/5/judges",
			map[string]any{"name": "Judge Cruz", "email": "cruz@example.com"}, authHeader(token))

		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		assert.Contains(t, res.Body.String(), "ZZ99XX")
	})
}
