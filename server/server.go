// Package server exposes the advisor engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"knowli_cli/advisor"
	"knowli_cli/api"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Server routes advisor API requests to the engine.
type Server struct {
	engine *advisor.Engine
	router *mux.Router
}

// New creates a server over the given engine.
func New(engine *advisor.Engine) *Server {
	s := &Server{
		engine: engine,
		router: mux.NewRouter(),
	}
	s.router.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	s.router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	return s
}

// Handler returns the HTTP handler for the advisor API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the advisor API on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute, // the prompt battery takes a while
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Advisor API listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Shutting down advisor API")
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	start := time.Now()

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Rejecting malformed chat request", "request_id", requestID, "error", err)
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		slog.Warn("Rejecting empty chat request", "request_id", requestID)
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "at least one message is required"})
		return
	}

	slog.Info("Chat request received",
		"request_id", requestID,
		"messages_count", len(req.Messages))

	resp, err := s.engine.Compose(r.Context(), req.Messages)
	if err != nil {
		slog.Error("Failed to compose reply",
			"request_id", requestID,
			"error", err,
			"duration", time.Since(start))
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("Chat request completed",
		"request_id", requestID,
		"text_length", len(resp.Text),
		"products_count", len(resp.Products),
		"duration", time.Since(start))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
