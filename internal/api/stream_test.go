package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/gimbalworks/sbgcdec/internal/config"
	"github.com/gimbalworks/sbgcdec/internal/sbgc"
)

func dialStream(t *testing.T, s *Server) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	ts := httptest.NewServer(s.Router())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial stream: %v", err)
	}
	return ts, conn
}

func readResult(t *testing.T, conn *websocket.Conn) decodeResponse {
	t.Helper()
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	var res decodeResponse
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return res
}

func TestStreamDecodesPerMessage(t *testing.T) {
	s := New(config.DefaultServiceConfig(), zerolog.Nop())
	ts, conn := dialStream(t, s)
	defer ts.Close()
	defer conn.Close()

	frame, err := sbgc.Encode(sbgc.Command{ID: sbgc.CmdGetAngles, Data: []byte{1, 2}})
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		t.Fatalf("write frame: %v", err)
	}
	res := readResult(t, conn)
	if res.CommandID != float64(sbgc.CmdGetAngles) || res.Completion != 1 {
		t.Fatalf("expected (%d,1), got %+v", sbgc.CmdGetAngles, res)
	}
}

func TestStreamKeepsNoMemoryAcrossMessages(t *testing.T) {
	s := New(config.DefaultServiceConfig(), zerolog.Nop())
	ts, conn := dialStream(t, s)
	defer ts.Close()
	defer conn.Close()

	frame, err := sbgc.Encode(sbgc.Command{ID: 9, Data: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	split := len(frame) / 2

	if err := conn.WriteMessage(websocket.BinaryMessage, frame[:split]); err != nil {
		t.Fatalf("write head: %v", err)
	}
	if res := readResult(t, conn); res.Completion != 0 {
		t.Fatalf("partial frame must not complete, got %+v", res)
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, frame[split:]); err != nil {
		t.Fatalf("write tail: %v", err)
	}
	if res := readResult(t, conn); res.Completion != 0 || res.CommandID != 0 {
		t.Fatalf("tail of a split frame must decode nothing, got %+v", res)
	}
}

func TestStreamRejectsTextMessage(t *testing.T) {
	s := New(config.DefaultServiceConfig(), zerolog.Nop())
	ts, conn := dialStream(t, s)
	defer ts.Close()
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("hello")); err != nil {
		t.Fatalf("write text: %v", err)
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error reply: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode error reply: %v", err)
	}
	if body["error"] == nil {
		t.Fatalf("expected error reply, got %#v", body)
	}
}
