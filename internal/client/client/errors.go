package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrTransport         = errors.New("transport failure")
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrEmptyToken        = errors.New("empty api token")
)

// TransportError means no response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Timeout reports whether the request hit its deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// MalformedResponseError means a response arrived but is not a valid envelope.
type MalformedResponseError struct {
	Op         string
	StatusCode int
	Reason     string
	Err        error
}

func (e *MalformedResponseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, ErrMalformedResponse)
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool {
	switch target {
	case ErrMalformedResponse:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}
