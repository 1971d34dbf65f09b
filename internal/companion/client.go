package companion

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/logging"
)

// DefaultPushTimeout bounds a push when ctx carries no deadline.
const DefaultPushTimeout = 10 * time.Second

// ErrRejected is returned when the watch answers with a negative Ack.
var ErrRejected = errors.New("configuration rejected")

// Push sends one configuration update to the watch at addr (host:port) over
// its WebSocket endpoint and waits for the acknowledgement.
func Push(ctx context.Context, addr string, update config.Update) (*Ack, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPushTimeout)
		defer cancel()
	}

	target := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target.String(), err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.SetReadDeadline(deadline)

	if err := conn.WriteJSON(update.Message()); err != nil {
		return nil, fmt.Errorf("failed to send configuration: %w", err)
	}

	var ack Ack
	if err := conn.ReadJSON(&ack); err != nil {
		return nil, fmt.Errorf("failed to read acknowledgement: %w", err)
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteMessage(websocket.CloseMessage, closeMsg)

	logging.Debug("Configuration pushed",
		zap.String("addr", addr),
		zap.Bool("ok", ack.OK),
		zap.Strings("accepted", ack.Accepted),
	)

	if !ack.OK {
		return &ack, fmt.Errorf("%w: %s", ErrRejected, ack.Error)
	}
	return &ack, nil
}
