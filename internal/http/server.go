package http

import (
	"context"
	"fmt"
	stdhttp "net/http"

	"buildunion/internal/auth"
	"buildunion/internal/config"
	"buildunion/internal/http/handler"
	"buildunion/internal/http/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus = "status"
	statusOK      = "ok"

	// Matches the strict JSON parser bound; only the blueprint upload
	// route accepts bodies beyond this.
	jsonBodyLimit = "1M"
)

type ServerDependencies struct {
	Config         *config.Config
	AuthMiddleware *auth.Middleware
	Users          handler.UserAuthenticator
	Projects       handler.ProjectService
	Blueprints     handler.BlueprintService
	Activity       handler.ActivityService
	Dashboard      handler.DashboardService
	Notifications  handler.NotificationSubscriber
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	jsonLimit := echomiddleware.BodyLimit(jsonBodyLimit)
	uploadLimit := echomiddleware.BodyLimit(fmt.Sprintf("%dM", deps.Config.App.MaxUploadSize>>20))

	// Strict rate limiting for auth endpoints
	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.Users)
	projectHandler := handler.NewProjectHandler(deps.Projects)
	blueprintHandler := handler.NewBlueprintHandler(deps.Blueprints)
	activityHandler := handler.NewActivityHandler(deps.Activity)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)

	e.POST("/auth/signup", authHandler.Signup, strictRateLimiter.Middleware(), jsonLimit)
	e.POST("/auth/login", authHandler.Login, strictRateLimiter.Middleware(), jsonLimit)
	e.GET("/health", healthCheck)

	api := e.Group("/api")

	// List reads accept anonymous callers and answer with empty results.
	optionalAPI := api.Group("")
	optionalAPI.Use(deps.AuthMiddleware.OptionalJWT())
	optionalAPI.GET("/projects", projectHandler.ListProjects)
	optionalAPI.GET("/blueprints", blueprintHandler.ListBlueprints)
	optionalAPI.GET("/activity", activityHandler.ListActivity)

	jwtAPI := api.Group("")
	jwtAPI.Use(deps.AuthMiddleware.RequireJWT())

	jwtAPI.POST("/projects", projectHandler.CreateProject, jsonLimit)
	jwtAPI.GET("/projects/:id", projectHandler.GetProject)
	jwtAPI.PATCH("/projects/:id", projectHandler.UpdateProject, jsonLimit)
	jwtAPI.DELETE("/projects/:id", projectHandler.DeleteProject)

	jwtAPI.POST("/projects/:project_id/blueprints", blueprintHandler.UploadBlueprint, uploadLimit)
	jwtAPI.DELETE("/blueprints/:id", blueprintHandler.DeleteBlueprint)
	jwtAPI.GET("/blueprints/:id/signed-url", blueprintHandler.GetSignedURL)

	jwtAPI.GET("/dashboard", dashboardHandler.GetSummary)
	jwtAPI.GET("/notifications/stream", notificationHandler.StreamNotifications)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
