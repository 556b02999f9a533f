package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/hamlog/internal/record"
)

// createTestStore creates a store with schema in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	return s
}

// makeCallsign creates a test callsign record with minimal fields.
func makeCallsign(call string) record.Callsign {
	return record.Callsign{
		Call:       call,
		Name:       "Test Operator",
		GridSquare: "FN31",
	}
}

// makeQso creates a test contact referencing the given callsign id.
func makeQso(callsignID int64, date, time string) record.Qso {
	return record.Qso{
		CallsignID: callsignID,
		Date:       date,
		Time:       time,
		Band:       "20m",
		Frequency:  14.250,
		Mode:       "SSB",
		RSTSent:    "59",
		Confirmed:  "?",
	}
}
