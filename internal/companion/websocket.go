package companion

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Connections with no message for this long are dropped
	idleTimeout = 5 * time.Minute

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Ack is the server's reply to each configuration message.
type Ack struct {
	OK       bool     `json:"ok"`
	Accepted []string `json:"accepted,omitempty"`
	Ignored  []string `json:"ignored,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func newAck(u config.Update) Ack {
	return Ack{OK: true, Accepted: u.Keys(), Ignored: u.Ignored}
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", c.Request.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	s.serveConn(conn, c.Request.RemoteAddr)
}

// serveConn reads configuration messages until the peer goes away. A
// malformed message gets a negative Ack; the connection stays open.
func (s *Server) serveConn(conn *websocket.Conn, remoteAddr string) {
	s.trackConn(remoteAddr, conn)
	logging.LogConnection(remoteAddr, "websocket_upgraded")

	defer func() {
		_ = conn.Close()
		s.untrackConn(remoteAddr)
		logging.LogConnection(remoteAddr, "websocket_closed")
	}()

	conn.SetReadLimit(maxMessageSize)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
			return
		}

		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Companion connection closed unexpectedly",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		logging.LogWebSocketMessage(remoteAddr, "received", msgType, data)

		ack := s.handleFrame(data)

		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := conn.WriteJSON(ack); err != nil {
			logging.Warn("Failed to send acknowledgement",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

func (s *Server) handleFrame(data []byte) Ack {
	var msg map[string]any
	if err := json.Unmarshal(data, &msg); err != nil {
		logging.Warn("Configuration message is not a JSON object", zap.Error(err))
		return Ack{OK: false, Error: "message must be a JSON object"}
	}

	update, err := s.accept("websocket", msg)
	if err != nil {
		return Ack{OK: false, Error: err.Error()}
	}
	return newAck(update)
}
