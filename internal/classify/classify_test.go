package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proars/domnix/internal/classify"
)

func TestResponse_Free(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "verisign no match", raw: `No match for "EXAMPLE123.COM".`},
		{name: "uppercase not found", raw: "NOT FOUND"},
		{name: "nic style", raw: "Domain not found.\n>>> Last update of WHOIS database: 2024-01-01T00:00:00Z <<<"},
		{name: "no entries", raw: "% No entries found for the selected source(s)."},
		{name: "status available", raw: "domain: example.sk\nstatus: available"},
		{name: "available for registration", raw: "The queried object is available for registration"},
		{name: "russian free", raw: "Домен свободен"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, classify.StatusFree, classify.Response(tc.raw))
		})
	}
}

func TestResponse_Registered(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "verisign record",
			raw:  "Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar\nCreation Date: 1995-08-14T04:00:00Z\n",
		},
		{name: "name server only", raw: "Name Server: ns1.example-dns.net\n"},
		{name: "status ok", raw: "domain: example.ru\nstatus: REGISTERED, DELEGATED, VERIFIED\nStatus: ok\n"},
		{name: "registrant field", raw: "Registrant Organization: Example Corp\n"},
		{name: "expiry field", raw: "Registry Expiry Date: 2030-08-13T04:00:00Z\n"},
		{name: "created field", raw: "created: 2001-04-09\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, classify.StatusRegistered, classify.Response(tc.raw))
		})
	}
}

func TestResponse_Unknown(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: " \r\n\t "},
		{name: "rate limit banner", raw: "Query rate exceeded, try again later."},
		{name: "unrecognized prose", raw: "This registry does not publish data over port 43."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, classify.StatusUnknown, classify.Response(tc.raw))
		})
	}
}

// A "No match for" line must win even when the response also carries fields
// from the registered table (some registries echo the queried name in a
// "Domain Name:"-like line). Available markers are checked first.
func TestResponse_AvailableBeatsRegisteredFields(t *testing.T) {
	raw := "Domain Name: EXAMPLE123.COM\nNo match for domain \"EXAMPLE123.COM\".\n"
	assert.Equal(t, classify.StatusFree, classify.Response(raw))
}
