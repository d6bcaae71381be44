package ingest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/echoslam/gsi/dispatch"
	"github.com/echoslam/gsi/internal/metrics"
	"github.com/echoslam/gsi/internal/server/tcp"
	"github.com/echoslam/gsi/internal/transport"
	"github.com/echoslam/gsi/internal/transport/http1"
	"github.com/echoslam/gsi/status"
)

// Server advances one accepted connection through a single
// frame → validate → dispatch → respond exchange. The game opens a fresh
// connection per snapshot, so there is no keep-alive handling: the
// connection is closed as soon as the exchange ends, successfully or not.
type Server struct {
	dispatcher *dispatch.Dispatcher
	serializer transport.Serializer
	log        *slog.Logger
	metrics    *metrics.Metrics
}

func NewServer(
	dispatcher *dispatch.Dispatcher, serializer transport.Serializer,
	log *slog.Logger, m *metrics.Metrics,
) *Server {
	return &Server{
		dispatcher: dispatcher,
		serializer: serializer,
		log:        log,
		metrics:    m,
	}
}

// Run serves the connection to completion and closes it. Any failure is
// local: it is logged here and never reaches the accept loop. The peer
// receives no reply on failure, as the wire protocol has no way to report
// errors back to the game.
func (s *Server) Run(client tcp.Client, req *transport.Request, parser transport.Parser) {
	s.metrics.ConnAccepted()

	if err := s.serve(client, req, parser); err != nil {
		if status.Is(err, status.Malformed) || status.Is(err, status.TooLarge) {
			s.metrics.FramingError()
		}

		s.log.Warn("connection dropped", "remote", client.Remote(), "err", err)
	}

	_ = client.Close()
}

func (s *Server) serve(client tcp.Client, req *transport.Request, parser transport.Parser) error {
	for {
		data, err := client.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return status.ErrPeerDisconnected
			}

			return fmt.Errorf("reading request: %w", err)
		}

		state, extra, err := parser.Parse(data)
		switch state {
		case transport.Pending:
		case transport.HeadersCompleted:
			client.Unread(extra)
			return s.process(client, req)
		case transport.Error:
			return err
		default:
			panic(fmt.Sprintf("BUG: unexpected parser state: %v", state))
		}
	}
}

func (s *Server) process(client tcp.Client, req *transport.Request) error {
	// reject foreign methods before bothering with the body
	if err := ValidateMethod(req); err != nil {
		return err
	}

	if !req.HasContentLength {
		return status.ErrLengthRequired
	}

	body, err := http1.ReadBody(client, req.ContentLength)
	if err != nil {
		return err
	}

	req.Body = body
	if err = ValidateBody(req); err != nil {
		return err
	}

	s.metrics.HandlerFailures(s.dispatcher.Dispatch(req.Body))
	s.metrics.EventDispatched()

	return s.serializer.WriteSuccess(client)
}
