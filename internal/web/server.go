package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vbonduro/storefront/internal/auth"
	"github.com/vbonduro/storefront/internal/service"
)

type Server struct {
	service          *service.Service
	verifier         auth.Verifier
	storefrontOrigin string
	mux              *http.ServeMux
	logger           *slog.Logger
}

func NewServer(svc *service.Service, verifier auth.Verifier, storefrontOrigin string, logger *slog.Logger) *Server {
	s := &Server{
		service:          svc,
		verifier:         verifier,
		storefrontOrigin: storefrontOrigin,
		mux:              http.NewServeMux(),
		logger:           logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// "GET /api/stores/{storeId}" and "GET /api/{storeId}/billboards" conflict
	// in a single mux (both match /api/stores/billboards), so store routes live
	// on their own mux mounted at the more specific literal prefix.
	stores := http.NewServeMux()
	s.registerStoreRoutes(stores)

	resources := http.NewServeMux()
	s.registerBillboardRoutes(resources)
	s.registerCategoryRoutes(resources)
	s.registerSizeRoutes(resources)
	s.registerColorRoutes(resources)
	s.registerProductRoutes(resources)
	s.registerOrderRoutes(resources)
	s.registerCheckoutRoutes(resources)

	s.mux.Handle("/api/stores", stores)
	s.mux.Handle("/api/stores/", stores)
	s.mux.Handle("/api/", resources)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
