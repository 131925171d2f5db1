// Package classify maps raw WHOIS response text to an availability status.
//
// Registries phrase "not found" in many different ways, so classification is a
// pair of ordered signature tables: substring markers that indicate an
// available domain, then field patterns that indicate a registered one. The
// tables are data, not control flow — extending coverage for a new registry
// means adding an entry, nothing else. The classifier performs no I/O.
package classify

import (
	"regexp"
	"strings"
)

// Status is the availability verdict for one domain.
type Status string

const (
	StatusFree       Status = "free"
	StatusRegistered Status = "registered"
	StatusUnknown    Status = "unknown"
	StatusError      Status = "error"
	StatusInvalid    Status = "invalid"
)

// availableMarkers are matched case-insensitively as substrings, in order.
// First match wins. Includes the non-English variants some ccTLD registries
// (e.g. .ru, .рф) answer with.
var availableMarkers = []string{
	"no match",
	"not found",
	"no entries found",
	"no data found",
	"status: available",
	"status: free",
	"domain not found",
	"no object found",
	"no such domain",
	"not registered",
	"object does not exist",
	"is available for registration",
	"не найден",
	"свободен",
	"нет данных",
}

// registeredPatterns are matched in order against the raw response.
// They cover the record fields most registries emit for existing domains.
var registeredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*domain name:\s*\S+`),
	regexp.MustCompile(`(?im)^\s*registrar:\s*\S+`),
	regexp.MustCompile(`(?im)^\s*creation date:\s*\S+`),
	regexp.MustCompile(`(?im)^\s*name server:\s*\S+`),
	regexp.MustCompile(`(?im)^\s*status:\s*(ok|client|server|active|registered)`),
	regexp.MustCompile(`(?i)registrant|registry expiry date|created:`),
}

// Response classifies raw WHOIS response text.
// Decision order: empty → unknown, available markers → free, registered
// patterns → registered, otherwise unknown. Client-side failures never reach
// this function; the caller maps them to StatusError directly.
func Response(raw string) Status {
	if strings.TrimSpace(raw) == "" {
		return StatusUnknown
	}

	lower := strings.ToLower(raw)
	for _, marker := range availableMarkers {
		if strings.Contains(lower, marker) {
			return StatusFree
		}
	}

	for _, re := range registeredPatterns {
		if re.MatchString(raw) {
			return StatusRegistered
		}
	}

	return StatusUnknown
}
