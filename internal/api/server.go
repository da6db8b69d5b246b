package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gimbalworks/sbgcdec/internal/config"
	"github.com/gimbalworks/sbgcdec/internal/decode"
	"github.com/gimbalworks/sbgcdec/internal/observability"
	"github.com/gimbalworks/sbgcdec/internal/sbgc"
)

// Server exposes the decode block over HTTP. Every request and every stream
// message maps to exactly one block step; the server holds no decode state
// between them.
type Server struct {
	cfg    config.ServiceConfig
	log    zerolog.Logger
	router *gin.Engine
	block  *decode.Block
}

func New(cfg config.ServiceConfig, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	s := &Server{
		cfg:    cfg,
		log:    logger,
		router: r,
		block:  decode.New(func() decode.Parser { return sbgc.NewParser() }),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	s.log.Info().Str("addr", s.cfg.Addr).Msg("serving decode api")
	return s.router.Run(s.cfg.Addr)
}
