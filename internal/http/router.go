package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/astrolaunch/launchpad/internal/auth"
	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/http/handlers"
	"github.com/astrolaunch/launchpad/internal/http/middlewares"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/astrolaunch/launchpad/internal/repo"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20 // 1 MiB is plenty for any content payload

// Deps is everything the router needs, constructed once at startup and
// injected; nothing in here is a package-level global.
type Deps struct {
	Log       *slog.Logger
	Cfg       config.Config
	JWT       *auth.Manager
	Stores    repo.Stores
	Prom      *observability.Prom
	Metrics   http.Handler // optional; mounts /metrics when set
	ListCache cache.Cache
	Ping      func() error // optional backend connectivity probe
}

func NewRouter(d Deps) *gin.Engine {
	if d.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	if d.Prom != nil {
		r.Use(d.Prom.GinHandleMiddleware())
	}

	if d.Cfg.TracingEnabled {
		r.Use(otelgin.Middleware("launchpad"))
	}

	// health + metrics

	h := handlers.NewHealthHandler(d.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// wire up handlers against whichever backend was injected

	authMw := middlewares.NewAuthMiddleware(d.JWT)
	authHandler := handlers.NewAuthHandler(d.Stores.Users, d.Stores.Users, d.JWT)

	rocketsHandler := handlers.NewRocketsHandler(d.Stores.Rockets, d.ListCache)
	missionsHandler := handlers.NewMissionsHandler(d.Stores.Missions, d.ListCache)
	teamsHandler := handlers.NewTeamsHandler(d.Stores.Teams, d.ListCache)
	schedulesHandler := handlers.NewSchedulesHandler(d.Stores.Schedules, d.ListCache)

	authLimiter := middlewares.NewRateLimiter(d.Cfg.AuthRateLimit, d.Cfg.AuthRateWindow)

	api := r.Group("/api", middlewares.RequireJSON())

	api.GET("/", handlers.Root)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Register)
	authGroup.POST("/login", authLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Login)
	authGroup.GET("/verify", authMw.RequireAuth(), authHandler.Verify)

	requireAdmin := []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireAdmin(d.Stores.Users)}

	api.GET("/rockets", rocketsHandler.ListRockets)
	api.POST("/rockets", append(requireAdmin, rocketsHandler.CreateRocket)...)
	api.GET("/missions", missionsHandler.ListMissions)
	api.POST("/missions", append(requireAdmin, missionsHandler.CreateMission)...)
	api.GET("/teams", teamsHandler.ListTeamMembers)
	api.POST("/teams", append(requireAdmin, teamsHandler.CreateTeamMember)...)
	api.GET("/schedules", schedulesHandler.ListSchedules)
	api.POST("/schedules", append(requireAdmin, schedulesHandler.CreateSchedule)...)

	// everything else is a 404 in the API's own error shape
	r.NoRoute(func(ctx *gin.Context) {
		handlers.RespondNotFound(ctx, fmt.Sprintf("Route %s not found", ctx.Request.URL.Path))
	})

	return r
}
