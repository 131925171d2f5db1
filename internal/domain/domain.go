// Package domain normalizes raw user input into lookup-ready domain names.
package domain

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"

	"github.com/proars/domnix/internal/apperr"
)

// Domain is a validated, IDN-encoded fully-qualified domain name.
// Construct via Normalize; invalid input never becomes a Domain.
type Domain struct {
	// Raw is the input token exactly as supplied.
	Raw string
	// Name is the normalized ASCII form used for registry lookups.
	Name string
	// TLD is the last label of Name.
	TLD string
}

// Normalize turns a raw token into a Domain suitable for WHOIS lookups.
// Tokens without a dot get "." + defaultTLD appended before validation.
// Unicode labels are converted to their ASCII-compatible (punycode) form.
// All failures wrap apperr.ErrInvalidDomain.
func Normalize(raw, defaultTLD string) (Domain, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Domain{}, fmt.Errorf("%w: empty input", apperr.ErrInvalidDomain)
	}

	if !strings.Contains(s, ".") {
		s = s + "." + defaultTLD
	}

	s = strings.ToLower(strings.TrimSuffix(s, "."))

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return Domain{}, fmt.Errorf("%w: idna: %v", apperr.ErrInvalidDomain, err)
	}

	if !isValidDomainASCII(ascii) {
		return Domain{}, fmt.Errorf("%w: %q", apperr.ErrInvalidDomain, raw)
	}

	return Domain{
		Raw:  raw,
		Name: ascii,
		TLD:  ascii[strings.LastIndexByte(ascii, '.')+1:],
	}, nil
}

// isValidDomainASCII is a pragmatic validation for registrable names:
// total length ≤ 253, at least two labels, labels of 1–63 chars from
// [a-z0-9-] with no leading or trailing hyphen.
func isValidDomainASCII(s string) bool {
	if len(s) < 1 || len(s) > 253 {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) < 1 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
				continue
			}
			return false
		}
	}
	return true
}
