package api

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gimbalworks/sbgcdec/internal/observability"
)

var startedAt = time.Now()

type decodeRequest struct {
	// Buffer is the base64-encoded step buffer.
	Buffer string `json:"buffer"`
	// Ready is the readiness gate sample, thresholded at 0.5.
	Ready float64 `json:"ready"`
}

type decodeResponse struct {
	CommandID   float64 `json:"command_id"`
	Completion  float64 `json:"completion"`
	ParseErrors int     `json:"parse_errors"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(startedAt).String(),
			"service": s.cfg.Name,
			"version": "0.1.0",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.POST("/decode", s.handleDecode)
	v1.GET("/stream", s.handleStream)
}

func (s *Server) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	buf, err := base64.StdEncoding.DecodeString(req.Buffer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "buffer is not valid base64"})
		return
	}
	if len(buf) > s.cfg.MaxBufferBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("buffer exceeds %d bytes", s.cfg.MaxBufferBytes),
		})
		return
	}

	start := time.Now()
	res := s.block.Step(buf, req.Ready)
	observability.RecordStep("http", res, time.Since(start))

	c.JSON(http.StatusOK, decodeResponse{
		CommandID:   res.CommandID,
		Completion:  res.Completion,
		ParseErrors: res.ParseErrors,
	})
}
