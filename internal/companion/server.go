package companion

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/logging"
)

// Sink receives accepted configuration updates. It is called from server
// goroutines and must hand the update over to the event loop rather than
// touch face state directly.
type Sink func(source string, update config.Update)

// Config holds the server configuration
type Config struct {
	Addr string // listen address, e.g. ":7420"
	Sink Sink
}

// Server accepts configuration from the companion app over HTTP and
// WebSocket.
type Server struct {
	addr      string
	sink      Sink
	engine    *gin.Engine
	server    *http.Server
	listener  net.Listener
	upgrader  websocket.Upgrader
	startTime time.Time
	messages  atomic.Int64

	mu          sync.Mutex
	activeConns map[string]*websocket.Conn
}

// NewServer creates a companion server. Nothing listens until Start.
func NewServer(cfg Config) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", config.DefaultCompanionPort)
	}

	s := &Server{
		addr: addr,
		sink: cfg.Sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The companion app is not a browser page
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		startTime:   time.Now(),
		activeConns: make(map[string]*websocket.Conn),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	// Debug mode prints route tables to stdout, over the face
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/api/health", s.handleHealth)
	r.POST("/api/config", s.handleConfig)
	r.GET("/ws", s.handleWebSocket)

	return r
}

// Handler returns the HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener
	s.startTime = time.Now()

	s.server = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Companion server stopped", zap.Error(err))
		}
	}()

	logging.Info("Companion server listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once started, else the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Port returns the bound TCP port, or 0 before Start.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if tcp, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Stop shuts the server down and closes open WebSocket connections.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	// Hijacked WebSocket connections are not closed by Shutdown
	s.mu.Lock()
	for addr, conn := range s.activeConns {
		logging.Info("Closing companion connection", zap.String("remote_addr", addr))
		_ = conn.Close()
	}
	s.mu.Unlock()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down companion server: %w", err)
	}
	return nil
}

// Messages returns the number of configuration messages accepted.
func (s *Server) Messages() int64 {
	return s.messages.Load()
}

// ActiveConnections returns the number of open WebSocket connections.
func (s *Server) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"uptime":      time.Since(s.startTime).Round(time.Second).String(),
		"messages":    s.Messages(),
		"connections": s.ActiveConnections(),
	})
}

func (s *Server) handleConfig(c *gin.Context) {
	var msg map[string]any
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a JSON object"})
		return
	}

	update, err := s.accept("http", msg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, newAck(update))
}

// accept validates a message and hands it to the sink. Malformed messages
// are logged and dropped without reaching the sink.
func (s *Server) accept(source string, msg map[string]any) (config.Update, error) {
	keys := make([]string, 0, len(msg))
	for k := range msg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	update, err := config.ParseMessage(msg)
	logging.LogConfigMessage(source, keys, err == nil)
	if err != nil {
		logging.Warn("Rejected configuration message",
			zap.String("source", source),
			zap.Error(err),
		)
		return config.Update{}, err
	}

	s.messages.Add(1)
	if s.sink != nil && !update.Empty() {
		s.sink(source, update)
	}
	return update, nil
}

func (s *Server) trackConn(remoteAddr string, conn *websocket.Conn) {
	s.mu.Lock()
	s.activeConns[remoteAddr] = conn
	s.mu.Unlock()
}

func (s *Server) untrackConn(remoteAddr string) {
	s.mu.Lock()
	delete(s.activeConns, remoteAddr)
	s.mu.Unlock()
}

// requestLogger logs each HTTP request through the zap logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logging.LogHTTPRequest(c.ClientIP(), c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
