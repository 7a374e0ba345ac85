package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/hris-portal-go/internal/handler/http/middleware"
	"github.com/kerjahub/hris-portal-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env                string
	GoogleOAuthEnabled bool
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	checkclockHandler CheckclockHandler,
	scheduleHandler ScheduleHandler,
	locationHandler LocationHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			if cfg.GoogleOAuthEnabled {
				r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
				r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
			}
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/checkclock", func(r chi.Router) {
				r.Post("/", checkclockHandler.Submit)
				r.Get("/my", checkclockHandler.ListMine)
				r.Get("/{id}", checkclockHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", checkclockHandler.List)
					r.Post("/{id}/approve", checkclockHandler.Approve)
					r.Post("/{id}/reject", checkclockHandler.Reject)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my", scheduleHandler.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.Assign)
					r.Get("/", scheduleHandler.List)
					r.Get("/{employeeId}", scheduleHandler.GetByEmployee)
					r.Delete("/{employeeId}", scheduleHandler.Delete)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/presets", locationHandler.ListPresets)
				r.Post("/resolve", locationHandler.Resolve)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Get("/stream", notificationHandler.Stream)
			})
		})
	})
	return r
}
