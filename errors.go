package aqualedger

import (
	"errors"
	"fmt"
	"strings"
)

// The engine's failures fall into three kinds, surfaced differently but
// all sharing one property: local state is never partially mutated.
//
//   - ValidationError: local, raised before any network call.
//   - RequestError: the server answered with a non-success status and,
//     usually, a message; the message is surfaced verbatim.
//   - TransportError: the network or response decoding failed; no server
//     message is available, a generic one is surfaced.
//
// Nothing is retried automatically; retrying is a manual user action.

// ValidationError blocks an operation entirely: it is field-addressable and
// never reaches the server.
type ValidationError struct {
	Validity Validity
}

func (e *ValidationError) Error() string {
	fields := e.Validity.Invalid()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.String())
	}
	return fmt.Sprintf("cannot submit: invalid %s", strings.Join(names, ", "))
}

// RequestError carries the server's own failure message and status.
type RequestError struct {
	StatusCode int
	Msg        string // server-provided, verbatim; may be empty
}

func (e *RequestError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Msg
}

// TransportError wraps a network or decode failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "network error" }
func (e *TransportError) Unwrap() error { return e.Err }

// ErrNotConfirmed gates deletes: a destructive action requires explicit
// confirmation from the user before any request is issued.
var ErrNotConfirmed = errors.New("delete not confirmed")

// ErrNotFound reports that no record in the local mirror has the given id.
var ErrNotFound = errors.New("catch not found")

// ErrNoSession reports that no authenticated session is available.
var ErrNoSession = errors.New("not logged in")
