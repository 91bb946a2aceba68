package app

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"buildunion/internal/activity"
	"buildunion/internal/auth"
	"buildunion/internal/cache"
	"buildunion/internal/config"
	"buildunion/internal/http"
	"buildunion/internal/notify"
	"buildunion/internal/repository/postgres"
	"buildunion/internal/service"
	"buildunion/internal/storage/s3"
)

const (
	serverAddrPrefix = ":"
	signalBufferSize = 1
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

// Service is the assembled application: configuration, connections, and the
// HTTP server, wired once at startup.
type Service struct {
	cfg    *config.Config
	db     *postgres.DB
	server *http.Server
}

// New loads configuration and wires every layer together.
func New() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log.Println("Configuration loaded successfully")

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	redisClient, err := cache.NewClient(&cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Redis connection established")

	s3Client, err := s3.NewClient(&cfg.AWS, cfg.App.BlueprintBucket)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Println("S3 client initialized")

	userRepo := postgres.NewUserRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	blueprintRepo := postgres.NewBlueprintRepository(db)
	activityRepo := postgres.NewActivityRepository(db)

	queryCache := cache.New(redisClient, cfg.App.CacheTTL)
	recorder := activity.NewRecorder(activityRepo, queryCache)
	notifier := notify.NewNotifier(redisClient)

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authMiddleware := auth.NewMiddleware(jwtService)

	userService := service.NewUserService(userRepo, jwtService)
	projectService := service.NewProjectService(projectRepo, queryCache, recorder, notifier)
	blueprintService := service.NewBlueprintService(
		blueprintRepo, projectRepo, s3Client, queryCache, recorder, notifier, cfg.App.SignedURLTTL,
	)
	activityService := service.NewActivityService(activityRepo, queryCache)
	dashboardService := service.NewDashboardService(projectRepo, blueprintRepo, activityRepo)

	server := http.NewServer(&http.ServerDependencies{
		Config:         cfg,
		AuthMiddleware: authMiddleware,
		Users:          userService,
		Projects:       projectService,
		Blueprints:     blueprintService,
		Activity:       activityService,
		Dashboard:      dashboardService,
		Notifications:  notifier,
	})

	return &Service{cfg: cfg, db: db, server: server}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives, then
// drains within the configured shutdown timeout.
func (s *Service) Run() error {
	go func() {
		log.Printf("Starting HTTP server on port %s", s.cfg.Server.Port)
		err := s.server.Start(serverAddrPrefix + s.cfg.Server.Port)
		if err != nil && !isServerClosed(err) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	defer s.db.Close()

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server exited gracefully")
	return nil
}

// isServerClosed reports whether Start returned because Shutdown was called,
// which is the normal end of a graceful stop rather than a failure.
func isServerClosed(err error) bool {
	return errors.Is(err, stdhttp.ErrServerClosed)
}
