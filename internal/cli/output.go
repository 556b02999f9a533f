package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/roach88/hamlog/internal/record"
	"github.com/roach88/hamlog/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (duplicate, unknown callsign, remote rejection)
	ExitCommandError = 2 // Command error (bad flags, missing schema, schema mismatch)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`         // "ok" or "error"
	Data   interface{} `json:"data,omitempty"` // success payload
}

// Success outputs a successful result in the configured format.
// For text format, data is printed as-is.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// SuccessText outputs text verbatim, or the given data as the JSON
// payload when the format is json. Used where the text rendering is
// multi-line and already formatted.
func (f *OutputFormatter) SuccessText(text string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprint(f.Writer, text)
	return nil
}

// renderCallsign formats a stored operator record for text output.
// Empty fields are omitted; the call itself is always present.
func renderCallsign(rec record.Callsign) string {
	var b strings.Builder
	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-14s %s\n", label+":", value)
		}
	}

	write("Call", rec.Call)
	write("Name", strings.TrimSpace(rec.FirstName+" "+rec.Name))
	write("Address", joinNonEmpty(", ", rec.AddressLine1, rec.AddressLine2))
	write("State", rec.State)
	write("Postal code", rec.PostalCode)
	write("Country", rec.Country)
	write("Grid square", rec.GridSquare)
	write("Lat/Lon", joinNonEmpty(", ", rec.Latitude, rec.Longitude))
	write("Email", rec.Email)
	write("License class", rec.LicenseClass)
	if !rec.LookedUpAt.IsZero() {
		write("Looked up", rec.LookedUpAt.UTC().Format(time.RFC3339))
	}
	return b.String()
}

// renderQsoList formats logged contacts as a fixed-width table.
func renderQsoList(entries []store.QsoEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-6s %-10s %-6s %-8s %-5s %-5s %s\n",
		"DATE", "TIME", "CALL", "BAND", "FREQ", "SENT", "RCVD", "QSO?")
	for _, e := range entries {
		freq := ""
		if e.Frequency != 0 {
			freq = fmt.Sprintf("%.3f", e.Frequency)
		}
		fmt.Fprintf(&b, "%-10s %-6s %-10s %-6s %-8s %-5s %-5s %s\n",
			e.Date, e.Time, e.Call, e.Band, freq, e.RSTSent, e.RSTReceived, e.Confirmed)
	}
	return b.String()
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
