package server

import "fmt"

// BindError is returned by Run when the listening socket cannot be opened.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind port %d: %s", e.Port, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ConnectionError describes a failure on a single accepted connection. It never
// stops the server.
type ConnectionError struct {
	RemoteAddr string
	Op         string
	Err        error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.RemoteAddr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
