package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rgehrsitz/sharesplit/internal/calculation"
	"github.com/rgehrsitz/sharesplit/internal/compare"
	"github.com/rgehrsitz/sharesplit/internal/config"
	"github.com/rgehrsitz/sharesplit/pkg/logger"
)

// CalculationIDHeader names the response header carrying the per-request calculation ID
const CalculationIDHeader = "X-Calculation-ID"

type ctxKey int

const calculationIDKey ctxKey = iota

// Config holds server configuration
type Config struct {
	Server *config.ServerConfig
	Log    zerolog.Logger
	// Engine defaults to a new engine logging through Log
	Engine *calculation.DistributionEngine
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	cfg     *config.ServerConfig
	engine  *calculation.DistributionEngine
	compare *compare.CompareEngine
	metrics *Metrics
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	serverCfg := cfg.Server
	if serverCfg == nil {
		serverCfg = config.DefaultServerConfig()
	}

	engine := cfg.Engine
	if engine == nil {
		engine = calculation.NewDistributionEngine()
		engine.SetLogger(logger.NewEngineLogger(cfg.Log))
	}

	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		cfg:     serverCfg,
		engine:  engine,
		compare: compare.NewCompareEngine(engine),
		metrics: NewMetrics(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         serverCfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: serverCfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{CalculationIDHeader},
		MaxAge:         300,
	}))

	s.router.Use(s.securityHeaders)
	s.router.Use(calculationID)
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Handle("/metrics", s.metrics.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/calculate/form", s.handleCalculateForm)
		r.Post("/compare", s.handleCompare)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("calculation_id", ww.Header().Get(CalculationIDHeader)).
			Msg("HTTP request")
	})
}

// securityHeaders marks every response as uncacheable and disables sniffing
func (s *Server) securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0, private")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		if !s.cfg.DevMode {
			h.Set("Content-Security-Policy", "default-src 'self'")
		}
		next.ServeHTTP(w, r)
	})
}

func calculationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(CalculationIDHeader, id)
		ctx := context.WithValue(r.Context(), calculationIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CalculationIDFrom returns the calculation ID assigned to the request
func CalculationIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(calculationIDKey).(string)
	return id
}
