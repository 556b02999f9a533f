package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/hamlog/internal/record"
)

// promptQsoFields interactively collects the contact fields for one QSO
// and returns them as a raw column→value map. The callsign_id column is
// included as a placeholder: its value comes from the coordinator, but
// the shape validation against the store's column set covers it too.
func promptQsoFields(in io.Reader, out io.Writer) (map[string]string, error) {
	scanner := bufio.NewScanner(in)
	ask := func(label string) (string, error) {
		fmt.Fprintf(out, "%s: ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	fields := map[string]string{"callsign_id": ""}

	prompts := []struct {
		column   string
		label    string
		required bool
	}{
		{"date", "Date (YYYYMMDD)", true},
		{"time", "Time (HHMM)", true},
		{"band", "Band", false},
		{"frequency", "Frequency (MHz)", false},
		{"mode", "Mode", false},
		{"rst_sent", "RST sent", false},
		{"rst_received", "RST received", false},
		{"comment", "Comment", false},
		{"confirmed", "QSO confirmed? (Y/N/?)", false},
	}

	for _, p := range prompts {
		value, err := ask(p.label)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.column, err)
		}
		if p.required && value == "" {
			return nil, fmt.Errorf("%s is required", p.column)
		}
		fields[p.column] = value
	}

	// confirmed is a ternary flag; anything else would leak into the
	// column as-is.
	switch v := strings.ToUpper(fields["confirmed"]); v {
	case "", "Y", "N", "?":
		fields["confirmed"] = v
	default:
		return nil, fmt.Errorf("confirmed must be Y, N or ?, got %q", fields["confirmed"])
	}

	return fields, nil
}

// buildQso converts a validated field map into a Qso record.
func buildQso(fields map[string]string) (record.Qso, error) {
	q := record.Qso{
		Date:        fields["date"],
		Time:        fields["time"],
		Band:        fields["band"],
		Mode:        fields["mode"],
		RSTSent:     fields["rst_sent"],
		RSTReceived: fields["rst_received"],
		Comment:     fields["comment"],
		Confirmed:   fields["confirmed"],
	}

	if raw := fields["frequency"]; raw != "" {
		freq, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return record.Qso{}, fmt.Errorf("invalid frequency %q: %w", raw, err)
		}
		q.Frequency = freq
	}

	if q.Confirmed == "" {
		q.Confirmed = "?"
	}

	return q, nil
}
