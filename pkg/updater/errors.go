package updater

import (
	"errors"
	"fmt"
)

// ErrNetworkUnavailable is returned when the host has disabled online
// access. Callers surface it as a warning and cancel the operation.
var ErrNetworkUnavailable = errors.New("internet access is disabled")

// ErrMalformedMetadata is returned when the remote version document fetched
// successfully but did not contain a usable content hash. Kept distinct from
// transport failures so callers can tell a broken remote from a broken
// connection.
var ErrMalformedMetadata = errors.New("remote version metadata is malformed")

// NetworkError wraps an HTTP transport failure or unexpected status during
// an update check or download. No state changes when one is returned.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
