// Package server is the HTTP transport boundary: it authenticates the
// caller, assigns a correlation id, forwards the raw body to the
// analyzer, and maps typed failures to status codes. It logs only
// non-sensitive request metadata; transcript content never reaches logs.
package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adalundhe/strikegate/core/analyzer"
)

// AnalyzePath is the route the analyze handler is mounted on, under /api/v1.
const AnalyzePath = "/voir-dire/strike-for-cause/analyze"

// Config carries the transport settings.
type Config struct {
	Addr           string
	AuthToken      string
	RequestTimeout time.Duration
}

// Server wires the gin engine around one analyzer.
type Server struct {
	engine   *gin.Engine
	analyzer *analyzer.Analyzer
	config   Config
	logger   *slog.Logger
}

// New builds the server and registers its routes.
func New(a *analyzer.Analyzer, config Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:   engine,
		analyzer: a,
		config:   config,
		logger:   logger,
	}

	v1 := engine.Group("/api/v1")
	v1.GET("/health", s.handleHealth)
	v1.POST(AnalyzePath, s.requireAuth(s.handleAnalyze))

	return s
}

// Handler exposes the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("listening", "addr", s.config.Addr)
	return s.engine.Run(s.config.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireAuth verifies the bearer token before the real handler runs.
func (s *Server) requireAuth(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.config.AuthToken == "" {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Server auth token not configured. Set STRIKEGATE_AUTH_TOKEN or server.auth_token.",
			})
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.config.AuthToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		handler(c)
	}
}
