package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/hamlog/internal/record"
)

// FindCallsignID returns the id of the callsign row matching call, after
// normalization. A miss is a normal outcome, reported as found=false with
// a nil error, never as an error.
func (s *Store) FindCallsignID(ctx context.Context, call string) (id int64, found bool, err error) {
	call = record.NormalizeCall(call)

	err = s.db.QueryRowContext(ctx,
		"SELECT callsign_id FROM callsigns WHERE call = ?", call,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find callsign: %w", err)
	}
	return id, true, nil
}

// GetCallsign retrieves a single callsign record by id. An absent row
// is a NOT_FOUND store error.
func (s *Store) GetCallsign(ctx context.Context, id int64) (record.Callsign, error) {
	var c record.Callsign
	var lookedUp string

	err := s.db.QueryRowContext(ctx, `
		SELECT callsign_id, call, first_name, name, address_line1,
		       address_line2, state, postal_code, country, latitude,
		       longitude, grid_square, email, license_class, looked_up_at
		FROM callsigns
		WHERE callsign_id = ?
	`, id).Scan(
		&c.CallsignID, &c.Call, &c.FirstName, &c.Name, &c.AddressLine1,
		&c.AddressLine2, &c.State, &c.PostalCode, &c.Country, &c.Latitude,
		&c.Longitude, &c.GridSquare, &c.Email, &c.LicenseClass, &lookedUp,
	)
	if err == sql.ErrNoRows {
		return record.Callsign{}, NewCallsignNotFound(id)
	}
	if err != nil {
		return record.Callsign{}, fmt.Errorf("get callsign: %w", err)
	}

	if lookedUp != "" {
		t, err := time.Parse(time.RFC3339, lookedUp)
		if err != nil {
			return record.Callsign{}, fmt.Errorf("get callsign: parse looked_up_at: %w", err)
		}
		c.LookedUpAt = t
	}

	return c, nil
}

// QsoEntry is a logged contact joined with the callsign it references,
// as returned by ListQsos.
type QsoEntry struct {
	record.Qso
	Call string
}

// ListQsos returns the most recent contacts joined with their callsign,
// newest first. Limit <= 0 means no limit.
//
// Ordering is by date, time, then row id descending so that contacts
// logged at the same minute come back in insertion order.
func (s *Store) ListQsos(ctx context.Context, limit int) ([]QsoEntry, error) {
	query := `
		SELECT q.qso_id, q.callsign_id, c.call, q.date, q.time, q.band,
		       q.frequency, q.mode, q.rst_sent, q.rst_received, q.comment,
		       q.confirmed
		FROM qsos q
		JOIN callsigns c ON q.callsign_id = c.callsign_id
		ORDER BY q.date DESC, q.time DESC, q.qso_id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query qsos: %w", err)
	}
	defer rows.Close()

	var entries []QsoEntry
	for rows.Next() {
		var e QsoEntry
		if err := rows.Scan(
			&e.QsoID, &e.CallsignID, &e.Call, &e.Date, &e.Time, &e.Band,
			&e.Frequency, &e.Mode, &e.RSTSent, &e.RSTReceived, &e.Comment,
			&e.Confirmed,
		); err != nil {
			return nil, fmt.Errorf("scan qso: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate qsos: %w", err)
	}

	// Return empty slice instead of nil
	if entries == nil {
		entries = []QsoEntry{}
	}

	return entries, nil
}
