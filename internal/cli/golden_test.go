package cli

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/hamlog/internal/record"
)

// TestRenderCallsign_Golden pins the text rendering of a fully populated
// lookup record. Update with: go test ./internal/cli -run Golden -update
func TestRenderCallsign_Golden(t *testing.T) {
	rec := record.Callsign{
		CallsignID:   42,
		Call:         "N0CALL",
		FirstName:    "Jane",
		Name:         "Example",
		AddressLine1: "123 Main St",
		AddressLine2: "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "United States",
		Latitude:     "39.78",
		Longitude:    "-89.64",
		GridSquare:   "EM12",
		Email:        "jane@example.com",
		LicenseClass: "E",
		LookedUpAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "lookup_text", []byte(renderCallsign(rec)))
}

// TestRenderCallsign_SparseGolden pins the rendering of a minimal record:
// empty fields are omitted entirely, not printed blank.
func TestRenderCallsign_SparseGolden(t *testing.T) {
	rec := record.Callsign{
		Call:       "N0CALL",
		GridSquare: "EM12",
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "lookup_text_sparse", []byte(renderCallsign(rec)))
}
