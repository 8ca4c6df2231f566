package core

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// defaultRedactedHeaders lists header names whose values are masked in request
// logs to prevent accidental leakage of credentials or tokens.
var defaultRedactedHeaders = []string{
	"Authorization",
	"Cookie",
}

// MountRoutes defines the top-level routing hierarchy.
// It registers the global middleware chain, the health check, and the domain
// handler routes contributed by RouteRegistrars.
func (s *Server) MountRoutes() {
	// Global middleware registration (strict order matters).
	s.registerGlobalMiddleware()

	// Top-level routes
	s.router.Get("/health", s.HandleHealth)

	// Domain handler routes are registered via RouteRegistrars, populated by
	// the application entry point (main.go).
	for _, registrar := range s.RouteRegistrars {
		registrar(s.router)
	}
}

// registerGlobalMiddleware applies middleware in strict order.
//
// Ordering rationale:
//  1. Recoverer     - Catches panics; outermost to catch all failures.
//  2. RequestID     - Generates/propagates correlation ID for tracing.
//  3. RequestLogger - Structured logging (redacted headers).
//  4. CORS          - Browser security headers; answers preflights.
//  5. Gzip          - Response compression for clients that accept it.
//
// Authentication is not global: handlers mount it per route group, since
// /health, /plans, and the auth endpoints are public.
func (s *Server) registerGlobalMiddleware() {
	s.router.Use(s.Recoverer)
	s.router.Use(RequestIDMiddleware)
	s.router.Use(RequestLogger(s.Logger, defaultRedactedHeaders))
	s.router.Use(NewCORSMiddleware(s.corsAllowedOrigins()))
	s.router.Use(func(next http.Handler) http.Handler {
		return gzhttp.GzipHandler(next)
	})
}

// corsAllowedOrigins returns the CORS allowed origins from configuration.
func (s *Server) corsAllowedOrigins() []string {
	if s.Config != nil && len(s.Config.Security.CorsAllowedOrigins) > 0 {
		return s.Config.Security.CorsAllowedOrigins
	}
	return []string{"*"}
}
