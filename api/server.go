package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meridianswap/meridian/x/amm/types"
)

// PoolReader is the read-only pool surface the gateway quotes against.
type PoolReader interface {
	// Pool returns the pool for an unordered asset pair.
	Pool(assetA, assetB string) (types.Pool, bool)
	// Pools returns every live pool.
	Pools() []types.Pool
	// Params returns the fee parameters quotes are computed with.
	Params() types.Params
}

// Server represents the quote gateway server
type Server struct {
	router *gin.Engine
	pools  PoolReader
	config *Config
}

// Config holds server configuration
type Config struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            "5000",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// NewServer creates a new quote gateway instance
func NewServer(pools PoolReader, config *Config) (*Server, error) {
	if pools == nil {
		return nil, fmt.Errorf("pool reader is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	server := &Server{
		pools:  pools,
		config: config,
	}
	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with all routes and middleware
func (s *Server) setupRouter() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(gin.Logger())

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/pools", s.handlePools)
		v1.GET("/pools/:asset_a/:asset_b", s.handlePool)
		v1.GET("/quote", s.handleQuote)
		v1.GET("/price", s.handleSpotPrice)
	}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.config.Host + ":" + s.config.Port,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
