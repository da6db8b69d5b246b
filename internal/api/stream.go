package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/gimbalworks/sbgcdec/internal/observability"
)

// handleStream runs step decoding over a websocket. Each binary client
// message is one gate-open simulation step; the reply carries that step's
// result. Nothing spans messages, so a frame split across two messages is
// lost, same as a frame split across buffer chunks.
func (s *Server) handleStream(c *gin.Context) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkStreamOrigin,
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	defer conn.Close()

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn().Err(err).Msg("stream closed unexpectedly")
			}
			return
		}
		if mt != websocket.BinaryMessage {
			if err := conn.WriteJSON(gin.H{"error": "expected binary step buffer"}); err != nil {
				return
			}
			continue
		}
		if len(data) > s.cfg.MaxBufferBytes {
			msg := fmt.Sprintf("buffer exceeds %d bytes", s.cfg.MaxBufferBytes)
			if err := conn.WriteJSON(gin.H{"error": msg}); err != nil {
				return
			}
			continue
		}

		start := time.Now()
		res := s.block.Step(data, 1)
		observability.RecordStep("stream", res, time.Since(start))

		if err := conn.WriteJSON(decodeResponse{
			CommandID:   res.CommandID,
			Completion:  res.Completion,
			ParseErrors: res.ParseErrors,
		}); err != nil {
			return
		}
	}
}

func (s *Server) checkStreamOrigin(r *http.Request) bool {
	if len(s.cfg.CorsOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.CorsOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
