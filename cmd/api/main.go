package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kerjahub/hris-portal-go/internal/config"
	appHTTP "github.com/kerjahub/hris-portal-go/internal/handler/http"
	"github.com/kerjahub/hris-portal-go/internal/pkg/cron"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
	"github.com/kerjahub/hris-portal-go/internal/pkg/jwt"
	"github.com/kerjahub/hris-portal-go/internal/pkg/oauth"
	"github.com/kerjahub/hris-portal-go/internal/pkg/sse"
	"github.com/kerjahub/hris-portal-go/internal/pkg/storage"
	"github.com/kerjahub/hris-portal-go/internal/repository/postgresql"
	authService "github.com/kerjahub/hris-portal-go/internal/service/auth"
	checkclockService "github.com/kerjahub/hris-portal-go/internal/service/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/service/file"
	locationService "github.com/kerjahub/hris-portal-go/internal/service/location"
	notificationService "github.com/kerjahub/hris-portal-go/internal/service/notification"
	scheduleService "github.com/kerjahub/hris-portal-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatalf("Invalid APP_TIMEZONE %q: %v", cfg.App.Timezone, err)
	}

	userRepo := postgresql.NewUserRepository(db)
	checkclockRepo := postgresql.NewCheckclockRepository(db, cfg.App.Timezone)
	scheduleRepo := postgresql.NewScheduleAssignmentRepository(db)
	locationRepo := postgresql.NewLocationPresetRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	locationSvc := locationService.NewLocationService(locationRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, notificationSvc)
	checkclockSvc := checkclockService.NewCheckclockService(db, checkclockRepo, scheduleRepo, locationSvc, fileService, notificationSvc, loc)

	if err := locationSvc.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed location presets:", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewCheckclockJobs(checkclockSvc, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, frontendURL())
	checkclockHandler := appHTTP.NewCheckclockHandler(checkclockSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:                cfg.App.Env,
			GoogleOAuthEnabled: cfg.GoogleOAuthEnabled(),
		},
		jwtService,
		authHandler,
		checkclockHandler,
		scheduleHandler,
		locationHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down")
	_ = server.Close()
}

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}
