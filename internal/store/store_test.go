package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_DoesNotCreateSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ok, err := s.HasSchema(context.Background())
	if err != nil {
		t.Fatalf("HasSchema() failed: %v", err)
	}
	if ok {
		t.Error("Open() must not create schema")
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("foreign_keys", "1"); err != nil {
		t.Error(err)
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/test.db")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	for i := 0; i < 3; i++ {
		if err := s.CreateSchema(ctx); err != nil {
			t.Fatalf("CreateSchema() iteration %d failed: %v", i, err)
		}
	}

	ok, err := s.HasSchema(ctx)
	if err != nil {
		t.Fatalf("HasSchema() failed: %v", err)
	}
	if !ok {
		t.Error("schema missing after CreateSchema()")
	}
}

func TestCreateSchema_PreservesExistingData(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.InsertCallsign(ctx, makeCallsign("W1AW"))
	if err != nil {
		t.Fatalf("InsertCallsign() failed: %v", err)
	}

	// Re-running schema creation must not touch existing rows
	if err := s.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	got, found, err := s.FindCallsignID(ctx, "W1AW")
	if err != nil {
		t.Fatalf("FindCallsignID() failed: %v", err)
	}
	if !found || got != id {
		t.Errorf("callsign lost after re-running CreateSchema: found=%v id=%d want %d", found, got, id)
	}
}

func TestHasData(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ok, err := s.HasData(ctx)
	if err != nil {
		t.Fatalf("HasData() failed: %v", err)
	}
	if ok {
		t.Error("HasData() = true on empty store")
	}

	if _, err := s.InsertCallsign(ctx, makeCallsign("W1AW")); err != nil {
		t.Fatalf("InsertCallsign() failed: %v", err)
	}

	ok, err = s.HasData(ctx)
	if err != nil {
		t.Fatalf("HasData() failed: %v", err)
	}
	if !ok {
		t.Error("HasData() = false after insert")
	}
}

func TestHasData_NoSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ok, err := s.HasData(context.Background())
	if err != nil {
		t.Fatalf("HasData() without schema failed: %v", err)
	}
	if ok {
		t.Error("HasData() = true without schema")
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}
