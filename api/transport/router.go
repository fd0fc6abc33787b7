package transport

import (
	"net/http"
	"os"
	"strings"

	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ContextSessionKey is where the auth middleware parks the resolved session.
const ContextSessionKey = "consoleSession"

func NewRouter(ginMode string) *gin.Engine {
	gin.SetMode(ginMode)
	engine := gin.New()
	engine.Use(CORSMiddleware())

	//Bypass swagger for non-local
	if os.Getenv("APP_ENV") == "local" {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.NoRoute(NoRouteHandler())

	return engine
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			logging.Log.Infof("OPTIONS request received:%s", c.Request.URL.Path)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Log.Infof("No routed request received for:%s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
	}
}

// SessionAuthMiddleware resolves the Authorization bearer token to a console
// session. Missing or unknown tokens get a 401 with login=true so the
// dashboards know to redirect to the relevant login screen.
func SessionAuthMiddleware(sessions storage.SessionStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token", "login": true})
			return
		}

		session, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			logging.Log.Warnf("AUTH: rejected unknown session token for %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or unknown", "login": true})
			return
		}

		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// RequireRole guards a route group to a single console role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session == nil || session.Role != role {
			logging.Log.Warnf("AUTH: role %q required for %s", role, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session the auth middleware resolved, or nil.
func SessionFrom(c *gin.Context) *storage.ConsoleSession {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil
	}
	session, ok := v.(*storage.ConsoleSession)
	if !ok {
		return nil
	}
	return session
}
