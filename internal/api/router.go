package api

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ljhwogur/raid-hub/docs"
	"github.com/ljhwogur/raid-hub/internal/api/access"
	"github.com/ljhwogur/raid-hub/internal/api/handler"
	"github.com/ljhwogur/raid-hub/internal/api/middleware"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Videos    ports.VideoService
	Users     ports.UserService
	Playlists ports.PlaylistService

	Sessions sessions.Store
	Policy   *access.Policy
	Checks   map[string]handler.Check

	// AllowedOrigin is the single origin allowed to make credentialed
	// cross-origin requests.
	AllowedOrigin string

	// Registerer and Gatherer back the request metrics and GET /metrics.
	// Nil means the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	policy := deps.Policy
	if policy == nil {
		policy = access.DefaultPolicy()
	}
	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "raidhub",
		Registerer:                registerer,
		DoNotUseRequestPathFor404: true,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(session.Middleware(deps.Sessions))
	e.Use(middleware.Auth(deps.Logger))
	e.Use(middleware.Access(policy, deps.Logger))

	// --- Handlers ---
	videoHandler := handler.NewVideoHandler(deps.Videos)
	userHandler := handler.NewUserHandler(deps.Users)
	playlistHandler := handler.NewPlaylistHandler(deps.Playlists)
	authHandler := handler.NewAuthHandler(deps.Users, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.Checks)

	// --- Videos ---
	e.POST("/api/videos", videoHandler.Create)
	e.GET("/api/videos", videoHandler.List)
	e.DELETE("/api/videos/:id", videoHandler.Delete)

	// --- Users ---
	e.POST("/api/users/register", userHandler.Register)
	e.GET("/api/users/check-username/:username", userHandler.CheckUsername)

	// --- YouTube playlist ---
	e.GET("/api/youtube/playlist-items", playlistHandler.Items)

	// --- Session login/logout ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Operations ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
