package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/devmatch/backend/internal/config"
	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server with lifecycle helpers.
type Server struct {
	httpServer *http.Server
}

func NewServer(cfg *config.ServerConfig, router *gin.Engine) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:        router,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

// Start listens and serves until shutdown. A clean shutdown is not reported
// as an error.
func (s *Server) Start() error {
	log.Printf("server listening on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests within
// the caller's deadline. Hijacked websocket connections are not waited on;
// they end when the process exits.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("server stopped")
	return nil
}
