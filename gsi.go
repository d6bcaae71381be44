package gsi

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/echoslam/gsi/config"
	"github.com/echoslam/gsi/dispatch"
	"github.com/echoslam/gsi/internal/address"
	"github.com/echoslam/gsi/internal/metrics"
	"github.com/echoslam/gsi/internal/server/ingest"
	"github.com/echoslam/gsi/internal/server/tcp"
	"github.com/echoslam/gsi/internal/transport"
	"github.com/echoslam/gsi/internal/transport/http1"
	"github.com/echoslam/gsi/status"
	"github.com/indigo-web/utils/buffer"
)

type hooks struct {
	OnStart func()
}

// Server owns the listening socket and the ordered list of registered
// handlers. Configure it via the builder methods, then call Run; the handler
// list is frozen once serving starts, registering afterwards is a contract
// violation.
type Server struct {
	uri      string
	cfg      *config.Config
	log      *slog.Logger
	handlers []dispatch.Handler
	hooks    hooks

	mu  sync.Mutex
	tcp *tcp.Server
}

// New returns a new Server for the URI configured in the game's .cfg file.
func New(uri string) *Server {
	return &Server{
		uri: uri,
		cfg: config.Default(),
		log: slog.Default().With("component", "gsi"),
	}
}

// Tune replaces the default config.
func (s *Server) Tune(cfg *config.Config) *Server {
	if cfg != nil {
		s.cfg = cfg
	}

	return s
}

// Log replaces the default logger.
func (s *Server) Log(log *slog.Logger) *Server {
	if log != nil {
		s.log = log
	}

	return s
}

// Register appends a handler. Registration order is dispatch order.
func (s *Server) Register(handler dispatch.Handler) *Server {
	s.handlers = append(s.handlers, handler)
	return s
}

// RegisterFunc is a Register shorthand for plain functions.
func (s *Server) RegisterFunc(fn func(event []byte)) *Server {
	return s.Register(dispatch.Func(fn))
}

// NotifyOnStart calls the callback at the moment the listener is bound and
// about to accept connections.
func (s *Server) NotifyOnStart(cb func()) *Server {
	s.hooks.OnStart = cb
	return s
}

// Run binds the listener and serves until Stop, GracefulShutdown or a fatal
// accept error. Binding failures and fatal accept errors are returned;
// stopping on purpose is not an error.
func (s *Server) Run() error {
	addr, err := address.Parse(s.uri)
	if err != nil {
		return fmt.Errorf("gsi: %w", err)
	}

	sock, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("gsi: binding %s: %w", addr, err)
	}

	conns := ingest.NewServer(
		dispatch.New(s.log, s.handlers),
		http1.NewSerializer(),
		s.log,
		metrics.New(s.cfg.Metrics.Registry),
	)

	// each connection gets its own request object and parser
	server := tcp.NewServer(sock, func(conn net.Conn) {
		req := s.newRequest()
		conns.Run(s.newClient(conn), req, s.newParser(req))
	})

	s.mu.Lock()
	s.tcp = server
	s.mu.Unlock()

	s.log.Info("listening", "addr", addr)

	if s.hooks.OnStart != nil {
		s.hooks.OnStart()
	}

	err = server.Start()
	if errors.Is(err, status.ErrShutdown) {
		return nil
	}

	return err
}

// Stop shuts the listener and all the in-flight connections down.
func (s *Server) Stop() error {
	if server := s.server(); server != nil {
		return server.Stop()
	}

	return nil
}

// GracefulShutdown stops accepting new connections, leaving the in-flight
// ones to complete.
func (s *Server) GracefulShutdown() error {
	if server := s.server(); server != nil {
		return server.GracefulShutdown()
	}

	return nil
}

func (s *Server) server() *tcp.Server {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tcp
}

func (s *Server) newClient(conn net.Conn) tcp.Client {
	return tcp.NewClient(conn, s.cfg.NET.ReadTimeout, make([]byte, s.cfg.NET.ReadBufferSize))
}

func (s *Server) newRequest() *transport.Request {
	return transport.NewRequest(s.cfg.Headers.Number.Default)
}

func (s *Server) newParser(req *transport.Request) *http1.Parser {
	return http1.NewParser(
		s.cfg, req,
		buffer.New(s.cfg.URI.RequestLineSize.Default, s.cfg.URI.RequestLineSize.Maximal),
		buffer.New(s.cfg.Headers.Space.Default, s.cfg.Headers.Space.Maximal),
	)
}
