package qrz

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/roach88/hamlog/internal/record"
)

// envelope is the top-level response document. Field tags carry no
// namespace on purpose: encoding/xml matches unqualified names against
// any namespace, which is exactly the contract here (the remote's
// namespace prefix is not stable across calls).
type envelope struct {
	Session  sessionBlock  `xml:"Session"`
	Callsign callsignBlock `xml:"Callsign"`
}

// sessionBlock carries either a session key (login success) or a
// remote-supplied error message (any request).
type sessionBlock struct {
	Key   string `xml:"Key"`
	Error string `xml:"Error"`
}

// callsignBlock is the lookup payload. Every leaf is optional except
// call; an absent element decodes to the empty string.
type callsignBlock struct {
	Call    string `xml:"call"`
	Fname   string `xml:"fname"`
	Name    string `xml:"name"`
	Addr1   string `xml:"addr1"`
	Addr2   string `xml:"addr2"`
	State   string `xml:"state"`
	Zip     string `xml:"zip"`
	Country string `xml:"country"`
	Lat     string `xml:"lat"`
	Lon     string `xml:"lon"`
	Grid    string `xml:"grid"`
	Email   string `xml:"email"`
	Class   string `xml:"class"`
}

// toRecord maps the wire payload onto the store's record shape. The id
// and lookup timestamp are left unset; the store assigns the former and
// the coordinator stamps the latter.
func (b callsignBlock) toRecord() record.Callsign {
	return record.Callsign{
		Call:         record.NormalizeCall(b.Call),
		FirstName:    b.Fname,
		Name:         b.Name,
		AddressLine1: b.Addr1,
		AddressLine2: b.Addr2,
		State:        b.State,
		PostalCode:   b.Zip,
		Country:      b.Country,
		Latitude:     b.Lat,
		Longitude:    b.Lon,
		GridSquare:   b.Grid,
		Email:        b.Email,
		LicenseClass: b.Class,
	}
}

// parseResponse decodes a response body into the envelope.
func parseResponse(r io.Reader) (envelope, error) {
	var env envelope
	if err := xml.NewDecoder(r).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}
	return env, nil
}
