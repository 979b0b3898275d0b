package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks construction failures: out of range limits,
// malformed argument lists, unknown names. Constructors return it before any
// state exists, so a filter is never half built.
var ErrInvalidArgument = errors.New("invalid filter argument")

// DeserializationError wraps any failure to rebuild a filter from its binary
// form. The decode cause stays reachable through Unwrap.
type DeserializationError struct {
	Kind string
	Err  error
}

func (e *DeserializationError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("deserializing filter: %v", e.Err)
	}
	return fmt.Sprintf("deserializing %s filter: %v", e.Kind, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
