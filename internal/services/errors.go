package services

import (
	"fmt"
)

// NetworkError wraps transport-level failures: DNS, dial, TLS, timeout. The
// service was never reached or never answered.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ResponseError covers answers the service did send but that cannot be used:
// non-2xx status, malformed JSON, out-of-range coordinates.
type ResponseError struct {
	Status int
	Reason string
}

func (e *ResponseError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("response error: status %d: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("response error: %s", e.Reason)
}
