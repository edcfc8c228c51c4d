package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server wraps the HTTP server fronting the config directory.
type Server struct {
	httpServer *http.Server
	watcher    *ConfigWatcher
	wsHub      *WebSocketHub
}

// NewServer creates a server with the given handler and port. If
// configDir is empty, file watching is disabled and clients only hear
// about changes made through the API.
func NewServer(handler *Handler, port int, configDir string) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub()
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)
	handler.SetOnChange(wsHub.NotifyDocumentChanged)

	var watcher *ConfigWatcher
	if configDir != "" {
		var err error
		watcher, err = NewConfigWatcher(configDir)
		if err != nil {
			log.Printf("Warning: failed to create config watcher: %v", err)
		} else {
			watcher.Subscribe(wsHub)
		}
	}

	wrapped := Logging(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Printf("Warning: failed to start config watcher: %v", err)
		}
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
