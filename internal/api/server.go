package api

import (
	"net/http"

	"github.com/disruptops/cognitocache/internal/api/middleware"
	"github.com/disruptops/cognitocache/internal/config"
	"github.com/disruptops/cognitocache/internal/resolver"
)

type Server struct {
	cfg      *config.Config
	resolver *resolver.Resolver
}

func NewServer(cfg *config.Config, res *resolver.Resolver) *Server {
	return &Server{
		cfg:      cfg,
		resolver: res,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// public routes
	mux.HandleFunc("GET "+HealthCheckRoute, s.handleHealth)
	mux.HandleFunc("GET "+AboutRoute, s.handleAbout)

	// token resolver route
	mux.HandleFunc("POST "+ResolveTokenRoute, s.handleResolve)

	return middleware.Recover(
		middleware.CorrelationID(
			middleware.Logging(HealthCheckRoute)(
				mux)))
}
