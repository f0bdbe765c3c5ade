// Package api - Thin HTTP layer over the SMS pricing engine
// The API is ONLY responsible for: request decoding, engine orchestration,
// response serialization.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sms-cost/core/output"
	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// ShutdownTimeout bounds the drain of in-flight requests
var ShutdownTimeout = 10 * time.Second

// Server is the API server
type Server struct {
	handler      *Handler
	mux          *http.ServeMux
	version      string
	shuttingDown atomic.Bool
}

// NewServer creates a new API server
func NewServer(handler *Handler) *Server {
	s := &Server{
		handler: handler,
		mux:     http.NewServeMux(),
		version: handler.version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /segments", s.handleSegments)
	s.mux.HandleFunc("GET /prices", s.handlePrices)
	s.mux.HandleFunc("GET /prices/{country}", s.handlePrice)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.handler.estimate(r.Context(), &req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
}

// handleSegments handles POST /segments
func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	var req SegmentsRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, s.handler.segments(&req), http.StatusOK)
}

// handlePrices handles GET /prices
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	s.renderPrices(w, s.handler.Table())
}

// handlePrice handles GET /prices/{country}
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	iso := r.PathValue("country")
	table := s.handler.Table()
	if missing := table.Missing([]string{iso}); len(missing) > 0 {
		s.writeDomainError(w, errors.NotFound("price for country", iso))
		return
	}
	s.renderPrices(w, table.Select(iso))
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "healthy", http.StatusOK
	if s.shuttingDown.Load() {
		status, code = "shutting_down", http.StatusServiceUnavailable
	}
	s.writeJSON(w, map[string]interface{}{
		"status":    status,
		"version":   s.version,
		"countries": s.handler.Table().Len(),
		"time":      time.Now().UTC().Format(time.RFC3339),
	}, code)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "sms-cost",
		"api_version": "v1",
		"table_id":    s.handler.Table().ID(),
	}, http.StatusOK)
}

func (s *Server) renderPrices(w http.ResponseWriter, table *pricing.Table) {
	w.Header().Set("Content-Type", "application/json")
	if err := (&output.JSONFormatter{}).RenderPrices(w, table); err != nil {
		logging.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, ctx map[string]interface{}, status int) {
	s.writeJSON(w, ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Context: ctx}}, status)
}

// writeDomainError maps typed errors to HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			s.writeError(w, "CANCELLED", err.Error(), nil, http.StatusServiceUnavailable)
			return
		}
		logging.Error("estimate failed", zap.Error(err))
		s.writeError(w, "INTERNAL_ERROR", err.Error(), nil, http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch e.Type {
	case errors.TypeInput, errors.TypeParsing:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	case errors.TypePricing:
		status = http.StatusUnprocessableEntity
	}
	s.writeError(w, string(e.Type), e.Error(), errors.Fields(err), status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Serve runs the server on ln until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.shuttingDown.Store(true)
		logging.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error("HTTP server shutdown error", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}

func computeInputHash(req *EstimateRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
