// Package observerws broadcasts periodic fleet status snapshots over a
// read-only WebSocket feed, the same connection-per-client push model the
// rest of the domain stack's websocket server uses for live car movement.
package observerws

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Standand/elevator-exercise-sub002/internal/constants"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// SnapshotFunc produces the current fleet status as a JSON-marshalable value.
type SnapshotFunc func() any

// Server pushes a fresh snapshot to every connected client on a fixed
// interval.
type Server struct {
	path     string
	interval time.Duration
	snapshot SnapshotFunc
	logger   *slog.Logger

	httpServer *http.Server

	mu          sync.Mutex
	connections map[*websocket.Conn]context.CancelFunc
}

// New constructs the observer server. It does not start listening until
// Start is called.
func New(port int, path string, interval time.Duration, snapshot SnapshotFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", constants.ComponentWebSocket))

	s := &Server{
		path:        path,
		interval:    interval,
		snapshot:    snapshot,
		logger:      logger,
		connections: make(map[*websocket.Conn]context.CancelFunc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, s.handle)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	s.addConnection(conn, cancel)
	defer s.removeConnection(conn)

	s.logger.Info("observer connected")

	if err := conn.WriteJSON(s.snapshot()); err != nil {
		s.logger.Warn("failed to send initial snapshot", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Drain and discard inbound messages; the feed is read-only, so the only
	// thing a client can legitimately send is its own disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(s.snapshot()); err != nil {
				s.logger.Warn("failed to push snapshot", slog.String("error", err.Error()))
				return
			}
		}
	}
}

func (s *Server) addConnection(conn *websocket.Conn, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[conn] = cancel
}

func (s *Server) removeConnection(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.connections[conn]; ok {
		cancel()
		delete(s.connections, conn)
	}
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting observer websocket server", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown cancels every connection's context and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for conn, cancel := range s.connections {
		cancel()
		conn.Close()
	}
	s.connections = make(map[*websocket.Conn]context.CancelFunc)
	s.mu.Unlock()

	return s.httpServer.Shutdown(ctx)
}
