package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScopeParameter  = errors.New("invalid scope parameter")
	ErrScopeOutOfRange        = errors.New("scope out of range")
	ErrUnsupportedServiceType = errors.New("unsupported service type")
)

// ScopeError attaches the offending field to one of the sentinel kinds above, so
// callers can both errors.Is() on the kind and render a precise message.
type ScopeError struct {
	kind   error
	Field  string
	Reason string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.kind.Error(), e.Field, e.Reason)
}

func (e *ScopeError) Unwrap() error {
	return e.kind
}

func invalidParam(field, reason string) error {
	return &ScopeError{kind: ErrInvalidScopeParameter, Field: field, Reason: reason}
}

func outOfRange(field, reason string) error {
	return &ScopeError{kind: ErrScopeOutOfRange, Field: field, Reason: reason}
}

func unsupportedService(field, reason string) error {
	return &ScopeError{kind: ErrUnsupportedServiceType, Field: field, Reason: reason}
}
