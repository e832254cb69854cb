package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

const (
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultAddr            = ":80"
	defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	server          *http.Server
	listener        net.Listener
	notify          chan error
	shutdownTimeout time.Duration
}

// New binds the listener and starts serving. A bind failure is reported on
// Notify like any other serve error.
func New(handler http.Handler, opts ...Option) *Server {
	s := &Server{
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
			Addr:         defaultAddr,
		},
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.notify <- err
		close(s.notify)
		return
	}
	s.listener = ln

	go func() {
		err := s.server.Serve(ln)
		if !errors.Is(err, http.ErrServerClosed) {
			s.notify <- err
		}
		close(s.notify)
	}()
}

// Notify is closed without a value after a clean Shutdown.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Addr is the bound address, which differs from the configured one for port 0.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
