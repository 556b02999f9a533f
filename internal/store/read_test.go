package store

import (
	"context"
	"testing"
)

func TestFindCallsignID_MissIsNotAnError(t *testing.T) {
	s := createTestStore(t)

	id, found, err := s.FindCallsignID(context.Background(), "N0CALL")
	if err != nil {
		t.Fatalf("FindCallsignID() miss returned error: %v", err)
	}
	if found || id != 0 {
		t.Errorf("FindCallsignID() = (%d, %v) for absent call, want (0, false)", id, found)
	}
}

func TestFindCallsignID_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	inserted, err := s.InsertCallsign(ctx, makeCallsign("W1AW"))
	if err != nil {
		t.Fatalf("InsertCallsign() failed: %v", err)
	}

	got, found, err := s.FindCallsignID(ctx, "W1AW")
	if err != nil {
		t.Fatalf("FindCallsignID() failed: %v", err)
	}
	if !found {
		t.Fatal("inserted callsign not found")
	}
	if got != inserted {
		t.Errorf("FindCallsignID() = %d, want %d", got, inserted)
	}
}

func TestFindCallsignID_NormalizesInput(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	inserted, err := s.InsertCallsign(ctx, makeCallsign("W1AW"))
	if err != nil {
		t.Fatalf("InsertCallsign() failed: %v", err)
	}

	got, found, err := s.FindCallsignID(ctx, "  w1aw ")
	if err != nil {
		t.Fatalf("FindCallsignID() failed: %v", err)
	}
	if !found || got != inserted {
		t.Errorf("lookup with unnormalized input: found=%v id=%d, want %d", found, got, inserted)
	}
}

func TestGetCallsign_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetCallsign(context.Background(), 9999)
	if !IsNotFound(err) {
		t.Errorf("GetCallsign() for absent id = %v, want NOT_FOUND", err)
	}
}

func TestListQsos_Empty(t *testing.T) {
	s := createTestStore(t)

	entries, err := s.ListQsos(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListQsos() failed: %v", err)
	}
	if entries == nil {
		t.Error("ListQsos() returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("ListQsos() on empty store returned %d entries", len(entries))
	}
}

func TestListQsos_NewestFirstWithCall(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	callID, err := s.InsertCallsign(ctx, makeCallsign("W1AW"))
	if err != nil {
		t.Fatalf("InsertCallsign() failed: %v", err)
	}

	for _, tm := range []string{"1200", "1330", "0900"} {
		if _, err := s.InsertQso(ctx, makeQso(callID, "20240101", tm)); err != nil {
			t.Fatalf("InsertQso(%s) failed: %v", tm, err)
		}
	}

	entries, err := s.ListQsos(ctx, 2)
	if err != nil {
		t.Fatalf("ListQsos() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ListQsos(limit=2) returned %d entries", len(entries))
	}
	if entries[0].Time != "1330" || entries[1].Time != "1200" {
		t.Errorf("wrong order: got %s, %s", entries[0].Time, entries[1].Time)
	}
	if entries[0].Call != "W1AW" {
		t.Errorf("joined call = %q, want W1AW", entries[0].Call)
	}
}

func TestEndToEnd_CallsignAndQso(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	callID, err := s.InsertCallsign(ctx, makeCallsign("K1ABC"))
	if err != nil {
		t.Fatalf("InsertCallsign() failed: %v", err)
	}

	if _, err := s.InsertQso(ctx, makeQso(callID, "20240101", "1200")); err != nil {
		t.Fatalf("InsertQso() failed: %v", err)
	}

	got, found, err := s.FindCallsignID(ctx, "K1ABC")
	if err != nil {
		t.Fatalf("FindCallsignID() failed: %v", err)
	}
	if !found || got != callID {
		t.Errorf("FindCallsignID() = (%d, %v), want (%d, true)", got, found, callID)
	}

	entries, err := s.ListQsos(ctx, 0)
	if err != nil {
		t.Fatalf("ListQsos() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].CallsignID != callID {
		t.Errorf("logged contact does not reference the callsign row: %+v", entries)
	}
}
