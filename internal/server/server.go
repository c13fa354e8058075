// Package server exposes the insight service and the document preview over
// HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-insightui/pkg/fetch"
	"github.com/goliatone/go-insightui/pkg/insight"
	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/schema"
)

const maxRequestBytes = 1 << 20

// Metrics receives one call per served request.
type Metrics interface {
	RequestServed(route string, code int)
	Handler() http.Handler
}

// Info is served on GET /info.
type Info struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Backends []string `json:"backends"`
	Elements []string `json:"elements,omitempty"`
}

type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records per-route counters and mounts GET /metrics.
func WithMetrics(m Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithVersion sets the version reported by GET /info.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.info.Version = version
	}
}

// WithElementTypes lists the element types reported by GET /info.
func WithElementTypes(types []string) Option {
	return func(s *Server) {
		s.info.Elements = append([]string(nil), types...)
	}
}

// Server wires the insight service and render backends to chi routes.
type Server struct {
	service  *insight.Service
	backends *render.Registry
	logger   *slog.Logger
	metrics  Metrics
	info     Info
	router   chi.Router
}

// New builds the router.
func New(service *insight.Service, backends *render.Registry, opts ...Option) (*Server, error) {
	if service == nil {
		return nil, errors.New("server: insight service is required")
	}
	if backends == nil || len(backends.List()) == 0 {
		return nil, errors.New("server: at least one render backend is required")
	}

	s := &Server{
		service:  service,
		backends: backends,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		info:     Info{Name: "insightui", Version: "dev"},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.info.Backends = backends.List()
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Get("/openapi.yaml", s.handleOpenAPI)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/insight", s.handleInsight)
		r.Post("/render", s.handleRender)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then drains in-flight
// requests for up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.info)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(fetch.OpenAPIDescription())
}

// insightRequest accepts both the fetcher's field names and the transaction
// field name "to".
type insightRequest struct {
	Address string `json:"address"`
	To      string `json:"to"`
	Origin  string `json:"origin"`
	ChainID string `json:"chainId"`
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	backend, err := s.backends.Resolve(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req insightRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	query := r.URL.Query()
	tx := insight.Transaction{
		To:      firstNonEmpty(req.Address, req.To, query.Get("address")),
		Origin:  firstNonEmpty(req.Origin, query.Get("origin")),
		ChainID: firstNonEmpty(req.ChainID, query.Get("chainId"), query.Get("chain_id")),
	}
	if tx.To == "" || tx.ChainID == "" {
		writeError(w, http.StatusBadRequest, "address and chainId are required")
		return
	}

	resp := s.service.OnTransaction(r.Context(), tx)
	if resp.Reason != "" {
		w.Header().Set("X-Insight-Fetch-Error", resp.Reason)
	}
	s.writeDocument(w, r, backend, render.Document{Content: resp.Content, Severity: resp.Severity})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	backend, err := s.backends.Resolve(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := fetch.ValidatePayload(generic); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var payload schema.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := s.service.RenderPayload(payload)
	s.writeDocument(w, r, backend, render.Document{
		Content:  resp.Content,
		Severity: resp.Severity,
		Title:    r.URL.Query().Get("title"),
	})
}

func (s *Server) writeDocument(w http.ResponseWriter, r *http.Request, backend render.Backend, doc render.Document) {
	out, err := backend.Render(r.Context(), doc)
	if err != nil {
		s.logger.Error("render failed", "backend", backend.Name(), "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", backend.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
