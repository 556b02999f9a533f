package store

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a constraint or contract violation detected by the
// store.
//
// Store errors include:
//   - Duplicate callsign: call already present on insert
//   - Duplicate QSO: (callsign_id, date, time) already logged
//   - Unknown callsign: QSO references no existing callsign row
//   - Missing field: a required field is empty on insert
//   - Schema mismatch: an externally constructed record's field set
//     does not match the expected columns
//
// None of these are retried; they surface to the caller as-is.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Call identifies the affected callsign, when known.
	Call string

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeDuplicateCallsign indicates the callsign is already stored.
	ErrCodeDuplicateCallsign ErrorCode = "DUPLICATE_CALLSIGN"

	// ErrCodeDuplicateQso indicates the (callsign_id, date, time) triple
	// is already logged.
	ErrCodeDuplicateQso ErrorCode = "DUPLICATE_QSO"

	// ErrCodeUnknownCallsign indicates a QSO references a callsign_id
	// with no corresponding callsign row.
	ErrCodeUnknownCallsign ErrorCode = "UNKNOWN_CALLSIGN"

	// ErrCodeMissingField indicates a required field was empty on insert.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// ErrCodeSchemaMismatch indicates a constructed record's field set
	// does not match the store's expected columns.
	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"

	// ErrCodeNoSchema indicates the logbook tables have not been created.
	ErrCodeNoSchema ErrorCode = "NO_SCHEMA"

	// ErrCodeNotFound indicates a read for a row that does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Call != "" {
		return fmt.Sprintf("%s: %s (call=%s)", e.Code, e.Message, e.Call)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDuplicateCallsign returns true if the error is a duplicate-callsign
// violation. Uses errors.As to handle wrapped errors.
func IsDuplicateCallsign(err error) bool {
	return hasCode(err, ErrCodeDuplicateCallsign)
}

// IsDuplicateQso returns true if the error is a duplicate-QSO violation.
func IsDuplicateQso(err error) bool {
	return hasCode(err, ErrCodeDuplicateQso)
}

// IsUnknownCallsign returns true if the error is a referential violation.
func IsUnknownCallsign(err error) bool {
	return hasCode(err, ErrCodeUnknownCallsign)
}

// IsSchemaMismatch returns true if the error is a column-set mismatch.
func IsSchemaMismatch(err error) bool {
	return hasCode(err, ErrCodeSchemaMismatch)
}

// IsNotFound returns true if the error is a read miss.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// NewDuplicateCallsign creates an Error for an already-stored callsign.
func NewDuplicateCallsign(call string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateCallsign,
		Message: "callsign already stored",
		Call:    call,
	}
}

// NewDuplicateQso creates an Error for an already-logged contact.
func NewDuplicateQso(callsignID int64, date, time string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateQso,
		Message: fmt.Sprintf("contact already logged at %s %s", date, time),
		Details: map[string]string{
			"callsign_id": fmt.Sprintf("%d", callsignID),
			"date":        date,
			"time":        time,
		},
	}
}

// NewCallsignNotFound creates an Error for a read of an absent callsign
// row.
func NewCallsignNotFound(id int64) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no callsign row with id %d", id),
	}
}

// NewUnknownCallsign creates an Error for a dangling callsign reference.
func NewUnknownCallsign(callsignID int64) *Error {
	return &Error{
		Code:    ErrCodeUnknownCallsign,
		Message: fmt.Sprintf("no callsign row with id %d", callsignID),
	}
}

// NewSchemaMismatch creates an Error describing missing and unexpected
// columns in a constructed record.
func NewSchemaMismatch(missing, extra []string) *Error {
	details := map[string]string{}
	if len(missing) > 0 {
		details["missing"] = strings.Join(missing, ",")
	}
	if len(extra) > 0 {
		details["extra"] = strings.Join(extra, ",")
	}
	return &Error{
		Code:    ErrCodeSchemaMismatch,
		Message: "record fields do not match expected columns",
		Details: details,
	}
}
