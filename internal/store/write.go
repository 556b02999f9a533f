package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/hamlog/internal/record"
)

// InsertCallsign inserts a callsign record and returns the assigned id.
// Call is normalized (uppercase, NFC) before storage and must be
// non-empty. A call that is already stored fails with DUPLICATE_CALLSIGN;
// the existing row is unchanged.
func (s *Store) InsertCallsign(ctx context.Context, c record.Callsign) (int64, error) {
	call := record.NormalizeCall(c.Call)
	if call == "" {
		return 0, &Error{Code: ErrCodeMissingField, Message: "call is required"}
	}

	lookedUp := ""
	if !c.LookedUpAt.IsZero() {
		lookedUp = c.LookedUpAt.UTC().Format(time.RFC3339)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO callsigns
		(call, first_name, name, address_line1, address_line2, state,
		 postal_code, country, latitude, longitude, grid_square, email,
		 license_class, looked_up_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		call,
		record.NormalizeText(c.FirstName),
		record.NormalizeText(c.Name),
		record.NormalizeText(c.AddressLine1),
		record.NormalizeText(c.AddressLine2),
		record.NormalizeText(c.State),
		c.PostalCode,
		record.NormalizeText(c.Country),
		c.Latitude,
		c.Longitude,
		c.GridSquare,
		c.Email,
		c.LicenseClass,
		lookedUp,
	)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintUnique) {
			return 0, NewDuplicateCallsign(call)
		}
		return 0, fmt.Errorf("insert callsign: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert callsign: last insert id: %w", err)
	}
	return id, nil
}

// InsertQso inserts a contact record and returns the assigned id.
// CallsignID, Date and Time are required. A CallsignID that references
// no callsign row fails with UNKNOWN_CALLSIGN; an already-logged
// (callsign_id, date, time) triple fails with DUPLICATE_QSO.
func (s *Store) InsertQso(ctx context.Context, q record.Qso) (int64, error) {
	if q.CallsignID == 0 {
		return 0, &Error{Code: ErrCodeMissingField, Message: "callsign_id is required"}
	}
	if q.Date == "" {
		return 0, &Error{Code: ErrCodeMissingField, Message: "date is required"}
	}
	if q.Time == "" {
		return 0, &Error{Code: ErrCodeMissingField, Message: "time is required"}
	}

	confirmed := q.Confirmed
	if confirmed == "" {
		confirmed = "?"
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO qsos
		(callsign_id, date, time, band, frequency, mode, rst_sent,
		 rst_received, comment, confirmed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		q.CallsignID,
		q.Date,
		q.Time,
		q.Band,
		q.Frequency,
		q.Mode,
		q.RSTSent,
		q.RSTReceived,
		record.NormalizeText(q.Comment),
		confirmed,
	)
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintForeignKey) {
			return 0, NewUnknownCallsign(q.CallsignID)
		}
		if isConstraint(err, sqlite3.ErrConstraintUnique) {
			return 0, NewDuplicateQso(q.CallsignID, q.Date, q.Time)
		}
		return 0, fmt.Errorf("insert qso: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert qso: last insert id: %w", err)
	}
	return id, nil
}

// isConstraint reports whether err is a sqlite constraint violation with
// the given extended code.
func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == code
	}
	return false
}
