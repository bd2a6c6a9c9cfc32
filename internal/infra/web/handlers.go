package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"telegram-object-detection/internal/infra/logging"
	"telegram-object-detection/internal/infra/telegram"
)

type resultRequest struct {
	PredictionID string `json:"predictionId"`
}

type resultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ok"))
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "token") != s.botToken {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	s.processUpdate(w, r)
}

// handleLoadTest feeds synthetic updates into the same pipeline as the real
// webhook, without the token path segment.
func (s *Server) handleLoadTest(w http.ResponseWriter, r *http.Request) {
	s.processUpdate(w, r)
}

func (s *Server) processUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithTraceID(r.Context(), middleware.GetReqID(r.Context()))

	msg, err := telegram.ParseUpdate(r.Body)
	if err != nil {
		logging.With(ctx, s.log).Warn().Err(err).Msg("malformed webhook payload")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if msg != nil {
		s.handler.Handle(ctx, msg)
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ok"))
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithTraceID(r.Context(), middleware.GetReqID(r.Context()))

	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Invalid request body"})
		return
	}

	status, message := s.delivery.Deliver(ctx, req.PredictionID)
	writeJSON(w, status, resultResponse{Success: status < http.StatusBadRequest, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
