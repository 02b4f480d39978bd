package utils

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration      = errors.New("service not configured")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("record not found")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrSubscriptionLapsed = errors.New("subscription is not active")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidRole        = errors.New("invalid role")
)

// ValidationError wraps ErrValidation so handlers can map the whole family
// to a 400 while keeping the field-level detail in the message.
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// UpstreamError carries a non-2xx answer from a travel or payment provider.
// The original status code is preserved end to end; Detail is a best-effort
// human-readable string extracted from the provider body.
type UpstreamError struct {
	Service string
	Status  int
	Detail  string
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, e.Detail)
}
