package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/saulo-duarte/devops-exam/internal/auth"
	"github.com/saulo-duarte/devops-exam/internal/certificate"
	"github.com/saulo-duarte/devops-exam/internal/config"
	"github.com/saulo-duarte/devops-exam/internal/exam"
	"github.com/saulo-duarte/devops-exam/internal/metrics"
	"github.com/saulo-duarte/devops-exam/internal/result"
)

type RouterConfig struct {
	ExamHandler        *exam.Handler
	CertificateHandler *certificate.Handler
	ResultHandler      *result.Handler
	AuthHandler        *auth.Handler
	Metrics            *metrics.Metrics
	Cookie             auth.CookieOptions
	AllowedOrigins     []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cfg.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", cfg.Metrics.Handler())
	r.Mount("/admin/results", result.Routes(cfg.ResultHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware(cfg.Cookie))

		r.Mount("/exam", exam.Routes(cfg.ExamHandler))
		r.Mount("/certificate", certificate.Routes(cfg.CertificateHandler))
		r.Post("/auth/logout", cfg.AuthHandler.Logout)
	})
	return r
}
