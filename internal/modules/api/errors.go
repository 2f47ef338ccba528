package api

import (
	"fmt"
	"strings"
)

// TransportError is a failed round trip: a network/read/decode error, or a
// response with a non-2xx status. Status is 0 when no response arrived.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports every field of a decoded payload that does not
// match the expected entity shape.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Fields, "; ")
}
