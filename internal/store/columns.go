package store

import (
	"fmt"
	"sort"

	"github.com/roach88/hamlog/internal/record"
)

// Columns returns the expected column names for an entity, excluding the
// store-assigned id column. Callers building records from external input
// (e.g. an interactive prompt) validate their field set against this
// before insertion.
func Columns(kind record.Kind) []string {
	switch kind {
	case record.KindCallsign:
		return record.CallsignColumns()
	case record.KindQso:
		return record.QsoColumns()
	default:
		return nil
	}
}

// ValidateColumns checks that fields exactly matches the expected column
// set for the entity. A mismatch fails with SCHEMA_MISMATCH naming the
// missing and unexpected columns; it is never silently coerced.
func ValidateColumns(kind record.Kind, fields []string) error {
	expected := Columns(kind)
	if expected == nil {
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	want := make(map[string]bool, len(expected))
	for _, col := range expected {
		want[col] = true
	}
	got := make(map[string]bool, len(fields))
	for _, col := range fields {
		got[col] = true
	}

	var missing, extra []string
	for col := range want {
		if !got[col] {
			missing = append(missing, col)
		}
	}
	for col := range got {
		if !want[col] {
			extra = append(extra, col)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(extra)
	return NewSchemaMismatch(missing, extra)
}
