package app

import (
	"net/http"

	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	h := deps.handler

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Gzip(logger))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// Service routes
	r.Get("/ping", h.Ping)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	if deps.docs != nil {
		r.Get("/v1/openapi.yaml", deps.docs.YAML)
		r.Get("/v1/openapi.json", deps.docs.JSON)
	}

	rateLimit := middleware.RateLimit(deps.limiter, m, logger)

	r.Route("/v1/referrals", func(r chi.Router) {
		// Маршруты пользователя: лимит считается по нему, а не по адресу
		r.Group(func(r chi.Router) {
			r.Use(deps.identity.Handler)
			r.Use(rateLimit)

			r.Get("/my-code", h.GetReferralCode)
			r.Post("/generate-link/{shareMethod}", h.GenerateReferralLink)
			r.Get("/history", h.GetReferralHistory)
		})

		// Проверка кода доступна до регистрации
		r.With(rateLimit).Get("/validate/{code}", h.ValidateReferralCode)
	})

	return r
}
