// Package server exposes the EDID toolkit over HTTP: validation, timing
// recomputation, block generation as a .bin download, presets, and the
// assistant proxy.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/praqsys/edidctl/internal/assistant"
	"github.com/praqsys/edidctl/internal/config"
	"github.com/praqsys/edidctl/internal/observability"
	"github.com/praqsys/edidctl/internal/preset"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// Server owns the HTTP surface. All domain operations it fronts are pure
// functions; the only state here is wiring.
type Server struct {
	name     string
	addr     string
	appeared time.Time

	presets *preset.Registry
	agent   *assistant.Agent

	router *gin.Engine
}

// New builds a server from cfg. agent may be nil when the assistant is not
// configured; the analyze endpoint then answers 503.
func New(cfg config.ServiceConfig, agent *assistant.Agent) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		name:     cfg.Name,
		addr:     cfg.Addr,
		appeared: time.Now(),
		presets:  preset.Builtin(),
		agent:    agent,
		router:   r,
	}
	s.registerRoutes()
	return s
}

// HTTPRouter exposes the router, mainly for tests.
func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// Serve blocks running the HTTP listener.
func (s *Server) Serve() error {
	log.Info().Str("addr", s.addr).Str("service", s.name).Msg("serving")
	return s.router.Run(s.addr)
}
