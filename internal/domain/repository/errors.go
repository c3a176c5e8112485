package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the backend has no entity with the requested id.
	ErrNotFound = errors.New("repository: not found")
	// ErrTransport indicates the backend was unreachable or answered with a non-success status.
	ErrTransport = errors.New("repository: transport failure")
	// ErrAuthentication indicates a login lookup matched no account.
	ErrAuthentication = errors.New("repository: no account matches credentials")
)

// TransportError carries the detail of a failed exchange with the backend.
// Status is zero when no response was received.
type TransportError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Message == "":
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	default:
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }
