package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takumines/meal-finder/internal/shared/config"
	"github.com/takumines/meal-finder/internal/shared/metrics"
	"github.com/takumines/meal-finder/internal/shared/server/middleware"
	"github.com/takumines/meal-finder/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries everything the router needs. Handlers may be nil when a
// feature is not wired (tests exercise subsets).
type RouterDeps struct {
	Cfg      config.Config
	DB       *sql.DB
	Handlers []RouteRegistrar

	// AuthRoutes are registered before the auth middleware consults them,
	// but the middleware itself skips the google prefix by path.
	AuthRoutes []RouteRegistrar
}

const aiRateLimitGroup = "AI"

// NewRouter builds the gin engine with the full middleware chain and all
// registered routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Cfg.CORSAllowOrigin),
	)

	engine.GET("/health", healthHandler(deps.DB))
	engine.GET("/metrics", metrics.Handler())

	api := engine.Group("/api/v1")
	api.Use(middleware.Auth(deps.Cfg.Env))
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":        {Rate: 10, Burst: 30},
			aiRateLimitGroup: {Rate: 0.5, Burst: 5},
		},
		DefaultGroup: "DEFAULT",
		GroupFor:     rateLimitGroup,
	}))

	for _, h := range deps.AuthRoutes {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	api.GET("/auth/me", meHandler)

	return engine
}

// rateLimitGroup routes LLM-backed endpoints to the stricter AI bucket.
func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	switch path {
	case "/api/v1/sessions/:sessionId/questions/next",
		"/api/v1/sessions/:sessionId/complete":
		return aiRateLimitGroup
	}
	return ""
}

func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}
		if db != nil {
			if err := db.PingContext(c.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	}
}

func meHandler(c *gin.Context) {
	isGuest, _ := c.Get("isGuest")
	respond.OK(c, gin.H{
		"userId":  middleware.UserIDFromContext(c),
		"email":   middleware.UserEmailFromContext(c),
		"name":    middleware.UserNameFromContext(c),
		"isGuest": isGuest,
	})
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
