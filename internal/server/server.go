package server

import (
	"errors"
	"fmt"
	"hellotcp/internal/request"
	"hellotcp/internal/response"
	"io"
	"net"
	"sync/atomic"

	"github.com/dchest/uniuri"
	"github.com/sirupsen/logrus"
)

// ErrServerClosed is returned by Serve after Close.
var ErrServerClosed = errors.New("server closed")

// Server accepts one connection at a time and answers it before
// accepting the next. Connections never get a deadline.
type Server struct {
	listener net.Listener
	closed   atomic.Bool
	logger   logrus.FieldLogger
}

// Listen binds a TCP listener on addr.
func Listen(addr string, logger logrus.FieldLogger) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", addr, err)
	}
	return New(l, logger), nil
}

func New(l net.Listener, logger logrus.FieldLogger) *Server {
	return &Server{
		listener: l,
		logger:   logger,
	}
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	// Make Close idempotent.
	if s.closed.Swap(true) {
		return nil
	}
	return s.listener.Close()
}

// Serve runs the accept loop. It only returns on error: a failed accept or
// any read/write failure on the connection being handled.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return ErrServerClosed
			}
			return fmt.Errorf("accepting connection: %w", err)
		}

		if err := s.handle(conn); err != nil {
			return err
		}
	}
}

func (s *Server) handle(conn net.Conn) error {
	defer conn.Close()

	logger := s.logger.WithFields(logrus.Fields{
		"conn":   uniuri.NewLen(8),
		"remote": conn.RemoteAddr().String(),
	})

	if err := Handle(conn, logger); err != nil {
		return fmt.Errorf("connection from %s: %w", conn.RemoteAddr(), err)
	}
	return nil
}

// Handle reads one request line from rw, writes the matching response
// and returns. It never closes rw.
func Handle(rw io.ReadWriter, logger logrus.FieldLogger) error {
	line, err := request.ReadLine(rw)
	if err != nil {
		return err
	}

	logger.Infof("Request: %s", line)

	resp := response.For(request.Classify(line))
	if err := response.Write(rw, resp); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
