package qrz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_ForeignNamespace(t *testing.T) {
	// The remote's namespace is not stable; element lookup must not
	// depend on it.
	body := `<?xml version="1.0"?>
<QRZDatabase xmlns="http://example.invalid/not-the-usual-namespace">
  <Callsign>
    <call>N0CALL</call>
    <grid>EM12</grid>
  </Callsign>
  <Session>
    <Key>abcdef0123456789</Key>
  </Session>
</QRZDatabase>`

	env, err := parseResponse(strings.NewReader(body))
	require.NoError(t, err)

	rec := env.Callsign.toRecord()
	assert.Equal(t, "N0CALL", rec.Call)
	assert.Equal(t, "EM12", rec.GridSquare)

	// Unspecified leaves map to empty values, not errors
	assert.Empty(t, rec.FirstName)
	assert.Empty(t, rec.Name)
	assert.Empty(t, rec.AddressLine1)
	assert.Empty(t, rec.Country)
	assert.Empty(t, rec.Email)
	assert.Empty(t, rec.LicenseClass)
	assert.Zero(t, rec.CallsignID)
	assert.True(t, rec.LookedUpAt.IsZero())
}

func TestParseResponse_SessionError(t *testing.T) {
	body := `<QRZDatabase xmlns="http://xmldata.example.com">
  <Session>
    <Error>invalid session</Error>
  </Session>
</QRZDatabase>`

	env, err := parseResponse(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "invalid session", env.Session.Error)
	assert.Empty(t, env.Session.Key)
}

func TestParseResponse_FullPayload(t *testing.T) {
	body := `<QRZDatabase>
  <Session><Key>k</Key></Session>
  <Callsign>
    <call>w1aw</call>
    <fname>Hiram</fname>
    <name>Maxim</name>
    <addr1>225 Main St</addr1>
    <addr2>Newington</addr2>
    <state>CT</state>
    <zip>06111</zip>
    <country>United States</country>
    <lat>41.714</lat>
    <lon>-72.727</lon>
    <grid>FN31pr</grid>
    <email>hq@example.org</email>
    <class>C</class>
  </Callsign>
</QRZDatabase>`

	env, err := parseResponse(strings.NewReader(body))
	require.NoError(t, err)

	rec := env.Callsign.toRecord()
	assert.Equal(t, "W1AW", rec.Call, "call is normalized to uppercase")
	assert.Equal(t, "Hiram", rec.FirstName)
	assert.Equal(t, "Maxim", rec.Name)
	assert.Equal(t, "225 Main St", rec.AddressLine1)
	assert.Equal(t, "Newington", rec.AddressLine2)
	assert.Equal(t, "CT", rec.State)
	assert.Equal(t, "06111", rec.PostalCode)
	assert.Equal(t, "United States", rec.Country)
	assert.Equal(t, "41.714", rec.Latitude)
	assert.Equal(t, "-72.727", rec.Longitude)
	assert.Equal(t, "FN31pr", rec.GridSquare)
	assert.Equal(t, "hq@example.org", rec.Email)
	assert.Equal(t, "C", rec.LicenseClass)
}

func TestParseResponse_Malformed(t *testing.T) {
	_, err := parseResponse(strings.NewReader("this is not xml"))
	assert.Error(t, err)
}
