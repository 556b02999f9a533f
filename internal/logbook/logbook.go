// Package logbook coordinates the store and the lookup client: given a
// callsign, reuse the stored record or fetch and insert it, then log
// contacts against it. It holds no state of its own beyond its two
// collaborators; control never flows backward (the store never calls the
// lookup client).
package logbook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/hamlog/internal/record"
	"github.com/roach88/hamlog/internal/store"
)

// CallsignLookup is the slice of the lookup client the coordinator needs.
type CallsignLookup interface {
	FetchCallsign(ctx context.Context, call string) (record.Callsign, error)
}

// Logbook ties the store and the lookup client together.
type Logbook struct {
	store  *store.Store
	lookup CallsignLookup
	logger *slog.Logger

	// now is the clock, overridable in tests.
	now func() time.Time
}

// New creates a Logbook. A nil logger falls back to slog.Default().
func New(st *store.Store, lookup CallsignLookup, logger *slog.Logger) *Logbook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logbook{
		store:  st,
		lookup: lookup,
		logger: logger,
		now:    time.Now,
	}
}

// newOpToken returns a UUIDv7 token correlating the log lines of one
// coordinator operation.
func newOpToken() string {
	return uuid.Must(uuid.NewV7()).String()
}

// EnsureCallsign returns the id of the stored record for call, fetching
// and inserting it on a miss. Sequential: the tool is single-user and
// single-process, so there is no duplicate-insert race to handle.
func (l *Logbook) EnsureCallsign(ctx context.Context, call string) (int64, error) {
	call = record.NormalizeCall(call)
	op := newOpToken()

	id, found, err := l.store.FindCallsignID(ctx, call)
	if err != nil {
		return 0, fmt.Errorf("ensure callsign: %w", err)
	}
	if found {
		l.logger.Debug("callsign already in logbook", "op", op, "call", call, "callsign_id", id)
		return id, nil
	}

	l.logger.Info("callsign not in logbook, querying lookup service", "op", op, "call", call)
	rec, err := l.lookup.FetchCallsign(ctx, call)
	if err != nil {
		return 0, fmt.Errorf("ensure callsign %s: %w", call, err)
	}
	rec.LookedUpAt = l.now()

	id, err = l.store.InsertCallsign(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("ensure callsign %s: %w", call, err)
	}
	l.logger.Info("callsign stored", "op", op, "call", call, "callsign_id", id)
	return id, nil
}

// AddCallsign is the explicit-add path: fetch and insert one callsign
// and return the stored record. Unlike EnsureCallsign, an already-stored
// call is a DUPLICATE_CALLSIGN error here, because the user asked for an
// insert, not a reuse.
func (l *Logbook) AddCallsign(ctx context.Context, call string) (record.Callsign, error) {
	call = record.NormalizeCall(call)
	op := newOpToken()

	_, found, err := l.store.FindCallsignID(ctx, call)
	if err != nil {
		return record.Callsign{}, fmt.Errorf("add callsign: %w", err)
	}
	if found {
		return record.Callsign{}, store.NewDuplicateCallsign(call)
	}

	l.logger.Info("querying lookup service", "op", op, "call", call)
	rec, err := l.lookup.FetchCallsign(ctx, call)
	if err != nil {
		return record.Callsign{}, fmt.Errorf("add callsign %s: %w", call, err)
	}
	rec.LookedUpAt = l.now()

	id, err := l.store.InsertCallsign(ctx, rec)
	if err != nil {
		return record.Callsign{}, fmt.Errorf("add callsign %s: %w", call, err)
	}
	rec.CallsignID = id
	l.logger.Info("callsign stored", "op", op, "call", call, "callsign_id", id)
	return rec, nil
}

// LogContact ensures the callsign is stored, then inserts the contact
// referencing it. Returns the new QSO id.
func (l *Logbook) LogContact(ctx context.Context, call string, qso record.Qso) (int64, error) {
	id, err := l.EnsureCallsign(ctx, call)
	if err != nil {
		return 0, err
	}
	qso.CallsignID = id

	qsoID, err := l.store.InsertQso(ctx, qso)
	if err != nil {
		return 0, fmt.Errorf("log contact with %s: %w", record.NormalizeCall(call), err)
	}
	l.logger.Info("contact logged",
		"call", record.NormalizeCall(call), "callsign_id", id,
		"qso_id", qsoID, "date", qso.Date, "time", qso.Time)
	return qsoID, nil
}
