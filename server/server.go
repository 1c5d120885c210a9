package server

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	testbackend "code.cloudfoundry.org/test-backend"
	"code.cloudfoundry.org/test-backend/prometheus"
	"code.cloudfoundry.org/test-backend/wire"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

type Handler interface {
	Handle(req testbackend.Request) testbackend.Response
}

type ListenFunc func(network, address string) (net.Listener, error)

// Server accepts connections on a single port and services them one at a time:
// a connection is read, answered and closed before the next one is accepted.
type Server struct {
	port     int
	listen   ListenFunc
	handler  Handler
	recorder prometheus.Recorder
	clock    clock.Clock
	logger   lager.Logger

	mu       sync.Mutex
	listener net.Listener
	current  net.Conn
	closing  bool
}

func New(port int, handler Handler, recorder prometheus.Recorder, clock clock.Clock, logger lager.Logger) *Server {
	return NewWithListenFunc(net.Listen, port, handler, recorder, clock, logger)
}

func NewWithListenFunc(
	listen ListenFunc,
	port int,
	handler Handler,
	recorder prometheus.Recorder,
	clock clock.Clock,
	logger lager.Logger,
) *Server {
	return &Server{
		port:     port,
		listen:   listen,
		handler:  handler,
		recorder: recorder,
		clock:    clock,
		logger:   logger,
	}
}

// Run implements ifrit.Runner. It returns a *BindError without becoming ready
// when the port cannot be bound, and nil once signalled.
func (s *Server) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	listener, err := s.listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return &BindError{Port: s.port, Err: err}
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	logger := s.logger.Session("run", lager.Data{"address": listener.Addr().String()})

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- s.acceptLoop(listener)
	}()

	close(ready)
	logger.Info("listening")

	select {
	case sig := <-signals:
		logger.Info("signalled", lager.Data{"signal": sig.String()})

		return multierr.Combine(s.shutdown(), <-loopDone)
	case err := <-loopDone:
		logger.Error("accept-loop-failed", err)

		return multierr.Combine(err, s.shutdown())
	}
}

// Addr is the address the server is listening on, or nil before Run has bound
// the port.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// shutdown closes the listener and any connection in flight. Nothing is drained.
func (s *Server) shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return nil
	}

	s.closing = true

	if s.current != nil {
		s.current.Close()
	}

	return errors.Wrap(s.listener.Close(), "failed to close listener")
}

func (s *Server) isClosing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closing
}

func (s *Server) setCurrent(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing && conn != nil {
		return false
	}

	s.current = conn

	return true
}

// acceptLoop retries temporary accept failures, such as running out of file
// descriptors, with a capped exponential backoff. It returns nil once the
// listener is closed by shutdown.
func (s *Server) acceptLoop(listener net.Listener) error {
	var delay time.Duration

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosing() {
				return nil
			}

			var netErr net.Error
			if !errors.As(err, &netErr) || !netErr.Temporary() {
				return errors.Wrap(err, "failed to accept connection")
			}

			delay = nextAcceptDelay(delay)
			s.recorder.Increment(prometheus.ConnectionFailures)
			s.logger.Info("accept-failed", lager.Data{"error": err.Error(), "retry-in": delay.String()})
			s.clock.Sleep(delay)

			continue
		}

		delay = 0
		s.serve(conn)
	}
}

func nextAcceptDelay(delay time.Duration) time.Duration {
	if delay == 0 {
		return minAcceptDelay
	}

	delay *= 2
	if delay > maxAcceptDelay {
		return maxAcceptDelay
	}

	return delay
}

func (s *Server) serve(conn net.Conn) {
	defer conn.Close()

	if !s.setCurrent(conn) {
		return
	}
	defer s.setCurrent(nil)

	remoteAddr := conn.RemoteAddr().String()
	logger := s.logger.Session("serve-connection", lager.Data{"remote-addr": remoteAddr})

	req, err := wire.ReadRequest(bufio.NewReader(conn))
	if err == io.EOF {
		logger.Debug("closed-before-request")

		return
	}

	if err != nil {
		s.fail(logger, &ConnectionError{RemoteAddr: remoteAddr, Op: "read", Err: err})

		return
	}

	resp := s.handler.Handle(req)

	if err := wire.WriteResponse(conn, resp); err != nil {
		s.fail(logger, &ConnectionError{RemoteAddr: remoteAddr, Op: "write", Err: err})
	}
}

// fail records a broken connection. Connections cut by shutdown are not
// failures.
func (s *Server) fail(logger lager.Logger, err *ConnectionError) {
	if s.isClosing() {
		logger.Debug("closed-by-shutdown", lager.Data{"op": err.Op})

		return
	}

	s.recorder.Increment(prometheus.ConnectionFailures)
	logger.Info("connection-failed", lager.Data{"op": err.Op, "error": err.Err.Error()})
}
