// Package record defines the logbook entities and their canonical column
// sets. These are the typed shapes exchanged between the store, the lookup
// client, and the CLI; all persistence constraints live in the store.
package record

import "time"

// Kind identifies a logbook entity type.
type Kind string

const (
	// KindCallsign is the operator record entity.
	KindCallsign Kind = "callsign"

	// KindQso is the logged-contact entity.
	KindQso Kind = "qso"
)

// Callsign holds one row per unique operator callsign.
//
// CallsignID is assigned by the store on insert and is zero on records
// that have not been stored yet. Call is unique across all rows and is
// stored normalized (uppercase, NFC). All remaining string fields are
// optional and default to empty.
type Callsign struct {
	CallsignID int64

	Call         string
	FirstName    string
	Name         string
	AddressLine1 string
	AddressLine2 string
	State        string
	PostalCode   string
	Country      string
	Latitude     string
	Longitude    string
	GridSquare   string
	Email        string
	LicenseClass string

	// LookedUpAt records when the remote lookup that produced this record
	// happened. Zero for records created without a lookup.
	LookedUpAt time.Time
}

// Qso holds one row per logged contact.
//
// CallsignID is a non-owning reference to exactly one Callsign row.
// Date and Time are required, externally formatted strings (e.g.
// "20240101" and "1200"); the triple (CallsignID, Date, Time) is unique.
type Qso struct {
	QsoID      int64
	CallsignID int64

	Date        string
	Time        string
	Band        string
	Frequency   float64
	Mode        string
	RSTSent     string
	RSTReceived string
	Comment     string

	// Confirmed is the ternary "QSO?" flag: "Y", "N", or "?".
	Confirmed string
}

// CallsignColumns returns the column names of the callsign entity,
// excluding the store-assigned id column. Order matches the schema.
func CallsignColumns() []string {
	return []string{
		"call",
		"first_name",
		"name",
		"address_line1",
		"address_line2",
		"state",
		"postal_code",
		"country",
		"latitude",
		"longitude",
		"grid_square",
		"email",
		"license_class",
		"looked_up_at",
	}
}

// QsoColumns returns the column names of the qso entity, excluding the
// store-assigned id column. Order matches the schema.
func QsoColumns() []string {
	return []string{
		"callsign_id",
		"date",
		"time",
		"band",
		"frequency",
		"mode",
		"rst_sent",
		"rst_received",
		"comment",
		"confirmed",
	}
}
