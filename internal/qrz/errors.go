package qrz

import (
	"errors"
	"fmt"
)

// Error represents a failure reported by (or while talking to) the
// lookup service. The Message carries the remote-supplied text when the
// remote rejected the request. No error in this taxonomy is retried by
// the client.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description, remote-supplied where
	// applicable.
	Message string

	// Call identifies the queried callsign (lookup errors only).
	Call string
}

// ErrorCode categorizes lookup client errors.
type ErrorCode string

const (
	// ErrCodeAuthFailed indicates the remote rejected the login.
	ErrCodeAuthFailed ErrorCode = "AUTH_FAILED"

	// ErrCodeLookupFailed indicates the remote rejected a callsign query
	// (not found, rate limited, stale session).
	ErrCodeLookupFailed ErrorCode = "LOOKUP_FAILED"

	// ErrCodeBadResponse indicates the response could not be interpreted
	// (no session key on login, no callsign payload on lookup).
	ErrCodeBadResponse ErrorCode = "BAD_RESPONSE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Call != "" {
		return fmt.Sprintf("%s: %s (call=%s)", e.Code, e.Message, e.Call)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsAuthError returns true if the error is a rejected login.
// Uses errors.As to handle wrapped errors.
func IsAuthError(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeAuthFailed
	}
	return false
}

// IsLookupError returns true if the error is a rejected callsign query.
func IsLookupError(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeLookupFailed
	}
	return false
}
