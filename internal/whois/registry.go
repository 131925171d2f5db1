package whois

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/proars/domnix/internal/apperr"
)

// IANAServer is the root WHOIS server used to discover authoritative servers
// for TLDs missing from the built-in table.
const IANAServer = "whois.iana.org"

// whoisFieldRe extracts the referral server from an IANA root response.
var whoisFieldRe = regexp.MustCompile(`(?i)whois:\s*(\S+)`)

// wellKnownServers seeds the registry with the TLDs that dominate bulk runs,
// avoiding a root round-trip for them entirely.
var wellKnownServers = map[string]string{
	"com":      "whois.verisign-grs.com",
	"net":      "whois.verisign-grs.com",
	"org":      "whois.pir.org",
	"info":     "whois.afilias.net",
	"io":       "whois.nic.io",
	"co":       "whois.nic.co",
	"me":       "whois.nic.me",
	"ai":       "whois.nic.ai",
	"xyz":      "whois.nic.xyz",
	"dev":      "whois.nic.google",
	"app":      "whois.nic.google",
	"uk":       "whois.nic.uk",
	"de":       "whois.denic.de",
	"ru":       "whois.tcinet.ru",
	"su":       "whois.tcinet.ru",
	"xn--p1ai": "whois.tcinet.ru",
}

// Registry maps TLDs to authoritative WHOIS server hostnames. Unknown TLDs
// are resolved once per run via the IANA root server and cached; concurrent
// lookups of the same unresolved TLD collapse into a single root query while
// lookups of unrelated TLDs proceed independently. Entries never expire — a
// run is short-lived. The zero value is not usable; construct via NewRegistry.
type Registry struct {
	querier Querier
	logger  *slog.Logger
	group   singleflight.Group

	mu      sync.RWMutex
	servers map[string]string
}

// NewRegistry creates a registry seeded with the well-known TLD table.
// querier is used for IANA root lookups on cache misses.
func NewRegistry(querier Querier, logger *slog.Logger) *Registry {
	servers := make(map[string]string, len(wellKnownServers))
	for tld, server := range wellKnownServers {
		servers[tld] = server
	}
	return &Registry{
		querier: querier,
		logger:  logger,
		servers: servers,
	}
}

// Lookup returns the authoritative WHOIS server hostname for tld.
// Failed resolutions are not cached, so a later call may retry the root
// lookup; a missing "whois:" field or a failed root query wraps
// apperr.ErrNoWhoisServer.
func (r *Registry) Lookup(ctx context.Context, tld string) (string, error) {
	r.mu.RLock()
	server, ok := r.servers[tld]
	r.mu.RUnlock()
	if ok {
		return server, nil
	}

	v, err, _ := r.group.Do(tld, func() (any, error) {
		// A flight that finished between the fast path and Do may have
		// stored the entry already.
		r.mu.RLock()
		server, ok := r.servers[tld]
		r.mu.RUnlock()
		if ok {
			return server, nil
		}
		return r.resolve(ctx, tld)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Set stores or overrides the server for a TLD.
func (r *Registry) Set(tld, server string) {
	r.mu.Lock()
	r.servers[tld] = server
	r.mu.Unlock()
}

func (r *Registry) resolve(ctx context.Context, tld string) (string, error) {
	raw, err := r.querier.Query(ctx, IANAServer, tld)
	if err != nil {
		return "", fmt.Errorf("%w: %q: iana lookup: %v", apperr.ErrNoWhoisServer, tld, err)
	}

	m := whoisFieldRe.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: %q", apperr.ErrNoWhoisServer, tld)
	}
	server := strings.ToLower(strings.TrimSpace(m[1]))

	r.mu.Lock()
	r.servers[tld] = server
	r.mu.Unlock()

	r.logger.Debug("resolved whois server", "tld", tld, "server", server)
	return server, nil
}
