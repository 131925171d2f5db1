// Package apperr defines the sentinel errors shared across the pipeline.
// Every failure a single domain can hit wraps exactly one of these, so callers
// can map an error to a result status with errors.Is without string matching.
package apperr

import "errors"

// ErrInvalidDomain is returned by the normalizer when an input token cannot
// become a valid domain name. No network query is made for such tokens.
var ErrInvalidDomain = errors.New("invalid domain")

// ErrNoWhoisServer is returned by the registry when no WHOIS server could be
// resolved for a TLD, either because the IANA root lookup failed or because
// its response carried no "whois:" field.
var ErrNoWhoisServer = errors.New("no whois server for TLD")

// ErrConnect is returned by the socket client when the TCP connection cannot
// be established (refused, unreachable, or DNS resolution failure).
var ErrConnect = errors.New("whois connect failed")

// ErrTimeout is returned by the socket client when the overall query deadline
// elapses before the server closes the connection.
var ErrTimeout = errors.New("whois query timed out")

// ErrRead is returned by the socket client when the connection fails mid-read
// for a reason other than the deadline (e.g. connection reset).
var ErrRead = errors.New("whois read failed")
