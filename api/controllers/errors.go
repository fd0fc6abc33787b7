package controllers

import (
	"errors"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
)

// respondUpstreamError maps the backend error taxonomy onto console
// responses: 404 keeps its dedicated body, auth failures become 401 so the
// dashboards redirect to login, other backend statuses pass through with the
// backend's own message when it supplied one.
func respondUpstreamError(g *gin.Context, err error) {
	if errors.Is(err, upstream.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	var remote *upstream.RemoteError
	if errors.As(err, &remote) {
		status := remote.StatusCode
		if remote.AuthFailure() {
			g.JSON(http.StatusUnauthorized, gin.H{"error": remote.Error(), "login": true})
			return
		}
		if status == 0 {
			status = http.StatusBadGateway
		}
		g.JSON(status, models.ErrorResponse{Error: remote.Error()})
		return
	}

	logging.Log.Errorf("unexpected upstream failure: %v", err)
	g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "unexpected internal error"})
}
