package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UoaWDCC/uabc-web-sub002/internal/auth"
	"github.com/UoaWDCC/uabc-web-sub002/internal/config"
	"github.com/UoaWDCC/uabc-web-sub002/internal/database"
	"github.com/UoaWDCC/uabc-web-sub002/internal/handler"
	"github.com/UoaWDCC/uabc-web-sub002/internal/router"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// API is the booking-service HTTP application.
type API struct {
	cfg *config.Config
	srv *http.Server
	db  *gorm.DB
}

// NewAPI creates the API application: validates config, runs migrations,
// opens the DB, builds the router.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := database.MigrateUp(cfg.DatabaseURL()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	logger, _ := zap.NewProduction()
	if cfg.AppEnv == "development" {
		logger, _ = zap.NewDevelopment()
	}

	store := database.NewStore(db)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := service.NewUserService(store, tokens, logger)
	semesterSvc := service.NewSemesterService(store, cfg.Location(), logger)
	scheduleSvc := service.NewScheduleService(store, cfg.Location(), logger)
	sessionSvc := service.NewGameSessionService(store, logger)
	bookingSvc := service.NewBookingService(store, logger, nil)

	r := router.New(tokens, router.Handlers{
		Auth:     handler.NewAuthHandler(userSvc, logger),
		Semester: handler.NewSemesterHandler(semesterSvc, logger),
		Schedule: handler.NewScheduleHandler(scheduleSvc, logger),
		Session:  handler.NewGameSessionHandler(sessionSvc, logger),
		Booking:  handler.NewBookingHandler(bookingSvc, logger),
		Health:   handler.NewHealthHandler(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, srv: srv, db: db}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled; then shuts
// down gracefully.
func (a *API) Run(ctx context.Context) error {
	addr := a.srv.Addr
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", addr)
	log.Printf("  Health:     %s/health", base)
	log.Printf("  Ready:      %s/ready", base)
	log.Printf("  Semesters:  %s/semesters", base)
	log.Printf("  Bookings:   %s/bookings", base)

	go func() {
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
