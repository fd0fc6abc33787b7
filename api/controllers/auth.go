package controllers

import (
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/api/models"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AuthController struct {
	upstream *upstream.Client
	sessions storage.SessionStorage
}

func NewAuthController(client *upstream.Client, sessions storage.SessionStorage) *AuthController {
	return &AuthController{
		upstream: client,
		sessions: sessions,
	}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/auth")

	group.POST("/coordinator/register", c.coordinatorRegister)
	group.POST("/coordinator/login", c.coordinatorLogin)
	group.POST("/judge/login", c.judgeLogin)
	group.POST("/logout", transport.SessionAuthMiddleware(c.sessions), c.logout)
}

// coordinatorRegister godoc
// @Summary Register a new coordinator account
// @Description Registration does not sign the coordinator in; follow up with a login.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body models.CoordinatorRegisterRequest true "Coordinator account"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/auth/coordinator/register [post]
func (c *AuthController) coordinatorRegister(g *gin.Context) {
	var req models.CoordinatorRegisterRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name, email and password are required"})
		return
	}

	if err := c.upstream.CoordinatorRegister(g.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		respondUpstreamError(g, err)
		return
	}

	logging.Log.Infof("AUTH: coordinator %s registered", req.Email)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "registration successful, please sign in"})
}

// coordinatorLogin godoc
// @Summary Log a coordinator in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.CoordinatorLoginRequest true "Coordinator credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/coordinator/login [post]
func (c *AuthController) coordinatorLogin(g *gin.Context) {
	var req models.CoordinatorLoginRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email and password are required"})
		return
	}

	login, err := c.upstream.CoordinatorLoginRequest(g.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	token, err := generateSessionToken()
	if err != nil {
		logging.Log.Errorf("AUTH: failed to generate session token: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create session"})
		return
	}
	session := &storage.ConsoleSession{
		Token:        token,
		Role:         storage.RoleCoordinator,
		AccessToken:  login.Access,
		RefreshToken: login.Refresh,
		UserID:       login.User.ID.String(),
		Name:         login.User.Name,
		Email:        login.User.Email,
	}
	if err := c.sessions.Put(g.Request.Context(), session); err != nil {
		logging.Log.Errorf("AUTH: failed to store coordinator session: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create session"})
		return
	}

	logging.Log.Infof("AUTH: coordinator %s logged in", session.Email)
	g.JSON(http.StatusOK, models.TransformSessionToLoginResponse(session))
}

// judgeLogin godoc
// @Summary Log a judge in with an access code
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.JudgeLoginRequest true "Judge access code"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/judge/login [post]
func (c *AuthController) judgeLogin(g *gin.Context) {
	var req models.JudgeLoginRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "access code is required"})
		return
	}

	login, err := c.upstream.JudgeLoginRequest(g.Request.Context(), req.AccessCode)
	if err != nil {
		respondUpstreamError(g, err)
		return
	}

	token, err := generateSessionToken()
	if err != nil {
		logging.Log.Errorf("AUTH: failed to generate session token: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create session"})
		return
	}
	session := &storage.ConsoleSession{
		Token:        token,
		Role:         storage.RoleJudge,
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
		UserID:       login.Judge.ID.String(),
		Name:         login.Judge.Name,
		Email:        login.Judge.Email,
		EventID:      login.Judge.Event.ID.String(),
	}
	if err := c.sessions.Put(g.Request.Context(), session); err != nil {
		logging.Log.Errorf("AUTH: failed to store judge session: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create session"})
		return
	}

	logging.Log.Infof("AUTH: judge %s logged in for event %s", session.Name, session.EventID)
	g.JSON(http.StatusOK, models.TransformSessionToLoginResponse(session))
}

// logout godoc
// @Summary Clear the console session
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/logout [post]
func (c *AuthController) logout(g *gin.Context) {
	session := transport.SessionFrom(g)
	if err := c.sessions.Delete(g.Request.Context(), session.Token); err != nil {
		logging.Log.Errorf("AUTH: failed to clear session: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not clear session"})
		return
	}
	logging.Log.Infof("AUTH: %s %s logged out", session.Role, session.Name)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "logged out"})
}

func generateSessionToken() (string, error) {
	return gonanoid.Generate(models.Alphabet, models.SessionTokenLength)
}
