package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"telegram-object-detection/internal/application"
	"telegram-object-detection/internal/usecase"
)

// Server exposes the webhook and result-notification routes.
type Server struct {
	handler  application.MessageHandler
	delivery usecase.DeliveryUseCase
	botToken string
	log      *zerolog.Logger
}

func NewServer(handler application.MessageHandler, delivery usecase.DeliveryUseCase, botToken string, logger *zerolog.Logger) *Server {
	return &Server{
		handler:  handler,
		delivery: delivery,
		botToken: botToken,
		log:      logger,
	}
}

// Router builds the HTTP routing table. The webhook path embeds the bot
// token, which doubles as the shared secret Telegram presents on each call.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/webhook/{token}", s.handleWebhook)
	r.Post("/loadTest", s.handleLoadTest)
	r.Post("/results", s.handleResults)
	return r
}
