// Package server exposes the validation core over HTTP. The single meaningful
// endpoint is POST /api/validate, which takes a batch of answers and returns
// positionally aligned verdicts. Malformed input is rejected as one client
// error; source failures never surface here because the adapters absorb them.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"letterrush/internal/model"
)

// BatchValidator is the validation core as seen by the HTTP layer.
type BatchValidator interface {
	CheckAll(ctx context.Context, reqs []model.AnswerRequest) []model.AnswerVerdict
}

// Server wires the gin router around the validator.
type Server struct {
	validator BatchValidator
	metrics   *Metrics
	log       *zap.Logger
	engine    *gin.Engine
}

type validateRequest struct {
	Answers []model.AnswerRequest `json:"answers"`
}

type validateResponse struct {
	Results []model.AnswerVerdict `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds the server and its routes.
func New(validator BatchValidator, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		validator: validator,
		metrics:   NewMetrics(registry),
		log:       log,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(s.requestLogger(), s.recovery())

	engine.POST("/api/validate", s.handleValidate)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.engine = engine
	return s
}

// Handler returns the root http.Handler, for tests and for http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails or the context is cancelled, then
// drains in-flight requests within the shutdown timeout.
func (s *Server) Run(ctx context.Context, cfg model.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("listening", zap.String("addr", cfg.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleValidate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Answers == nil {
		s.metrics.BatchRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	start := time.Now()
	verdicts := s.validator.CheckAll(c.Request.Context(), req.Answers)

	s.metrics.BatchRequests.WithLabelValues("ok").Inc()
	s.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	s.metrics.AnswersPerCall.Observe(float64(len(req.Answers)))
	for _, v := range verdicts {
		s.metrics.Verdicts.WithLabelValues(strconv.FormatBool(v.Valid)).Inc()
	}

	c.JSON(http.StatusOK, validateResponse{Results: verdicts})
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// recovery converts panics into a generic server error without leaking
// internals to the caller.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("handler panic", zap.Any("panic", r))
				s.metrics.BatchRequests.WithLabelValues("error").Inc()
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					errorResponse{Error: "validation failed"})
			}
		}()
		c.Next()
	}
}
