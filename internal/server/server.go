package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"bigsum/internal/decimal"
	"bigsum/internal/domain"
	"bigsum/internal/log"
)

// MaxBodyBytes caps POST /sum request bodies.
const MaxBodyBytes = 1 << 20

// Server routes HTTP requests to an Adder.
type Server struct {
	adder  domain.Adder
	logger zerolog.Logger
	router chi.Router
}

// New builds a Server backed by adder.
func New(adder domain.Adder) *Server {
	s := &Server{
		adder:  adder,
		logger: log.WithComponent("server"),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)
	r.Get("/healthz", s.handleHealth)
	r.Post("/sum", s.handleSumJSON)
	r.Get("/sum", s.handleSumQuery)
	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSumJSON(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	var req domain.SumRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	s.sum(w, r, req)
}

func (s *Server) handleSumQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.sum(w, r, domain.SumRequest{A: q.Get("a"), B: q.Get("b")})
}

func (s *Server) sum(w http.ResponseWriter, r *http.Request, req domain.SumRequest) {
	res, err := s.adder.Sum(r.Context(), req.A, req.B)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, decimal.ErrInvalidDigitSequence):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error().Err(err).Msg("sum failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.ErrorResponse{Error: msg})
}
