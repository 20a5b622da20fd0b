// Package http exposes the Verdict compiler as a stateless JSON API.
package http

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/verdict"
	rediscache "github.com/aretw0/verdict/internal/adapters/redis"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/pkg/domain"
)

// Server handles compile requests. Every request carries its own table and
// rendering options, so the server holds no per-session state.
type Server struct {
	logger  *slog.Logger
	cache   *rediscache.Cache
	metrics *metrics
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCache enables the Redis render cache for code and flowchart requests.
func WithCache(cache *rediscache.Cache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// NewHandler creates the HTTP handler for the compiler API.
func NewHandler(opts ...Option) http.Handler {
	server := &Server{
		logger:  logging.NewNop(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", server.metrics.handler())
	r.Post("/analyze", server.metrics.instrument("analyze", server.handleAnalyze))
	r.Post("/code", server.metrics.instrument("code", server.handleCode))
	r.Post("/flowchart", server.metrics.instrument("flowchart", server.handleFlowchart))
	return enableCORS(r)
}

// compileRequest is the shared body of all compile endpoints.
type compileRequest struct {
	// Values are the 2^k truth table outputs, row-major, row 0 = all true.
	Values []string `json:"values"`
	// DontCare overrides the reserved don't-care token (default "*").
	DontCare string `json:"dont_care,omitempty"`
	// Name is the emitted function name (code endpoint).
	Name string `json:"name,omitempty"`
	// Params are positional parameter names for the input variables.
	Params []string `json:"params,omitempty"`
}

func (req *compileRequest) engine() *verdict.Engine {
	return verdict.New(
		verdict.WithDontCare(req.DontCare),
		verdict.WithFuncName(req.Name),
		verdict.WithParams(req.Params),
	)
}

// digest is the cache key: endpoint plus the canonical re-encoding of the
// decoded request, so equivalent bodies with different whitespace hit the
// same entry.
func (req *compileRequest) digest(endpoint string) string {
	canonical, _ := json.Marshal(req)
	return fmt.Sprintf("%x", sha256.Sum256(append([]byte(endpoint+"\n"), canonical...)))
}

type analyzeRow struct {
	ID      int   `json:"id"`
	Order   []int `json:"order"`
	Score   int   `json:"score"`
	Optimal bool  `json:"optimal"`
}

// handleAnalyze returns one row per variable order, flagging the optimal
// subset.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	results, err := req.engine().Analyze(req.Values)
	if err != nil {
		s.fail(w, "analyze", err)
		return
	}

	min := results[0].Score
	for _, res := range results[1:] {
		if res.Score < min {
			min = res.Score
		}
	}
	rows := make([]analyzeRow, len(results))
	for i, res := range results {
		rows[i] = analyzeRow{ID: res.ID, Order: res.Order, Score: res.Score, Optimal: res.Score == min}
	}
	s.respond(w, map[string]any{"results": rows})
}

// handleCode emits the optimal JavaScript solutions.
func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "code", func(req *compileRequest) (string, error) {
		return req.engine().Code(req.Values)
	})
}

// handleFlowchart emits the optimal Mermaid flowcharts.
func (s *Server) handleFlowchart(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "flowchart", func(req *compileRequest) (string, error) {
		return req.engine().Flowchart(req.Values)
	})
}

// render runs a cached text-producing endpoint.
func (s *Server) render(w http.ResponseWriter, r *http.Request, endpoint string, fn func(*compileRequest) (string, error)) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	if s.cache != nil {
		if payload, hit, err := s.cache.Get(r.Context(), req.digest(endpoint)); err != nil {
			s.logger.Warn("render cache read failed", "endpoint", endpoint, "error", err)
		} else if hit {
			s.respond(w, map[string]string{endpoint: payload})
			return
		}
	}

	payload, err := fn(req)
	if err != nil {
		s.fail(w, endpoint, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), req.digest(endpoint), payload); err != nil {
			s.logger.Warn("render cache write failed", "endpoint", endpoint, "error", err)
		}
	}
	s.respond(w, map[string]string{endpoint: payload})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*compileRequest, bool) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("invalid request body", "error", err)
		return nil, false
	}
	return &req, true
}

func (s *Server) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// fail maps the single core error to 400; anything else is a 500.
func (s *Server) fail(w http.ResponseWriter, endpoint string, err error) {
	var sizeErr *domain.InvalidTableSizeError
	if errors.As(err, &sizeErr) {
		http.Error(w, sizeErr.Error(), http.StatusBadRequest)
		s.logger.Warn("rejected table", "endpoint", endpoint, "length", sizeErr.Length)
		return
	}
	http.Error(w, fmt.Sprintf("%s error: %v", endpoint, err), http.StatusInternalServerError)
	s.logger.Error("request failed", "endpoint", endpoint, "error", err)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
