// Package checker runs the full availability pipeline for input domains:
// normalize, resolve the WHOIS server, query it, classify the response.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/proars/domnix/internal/classify"
	"github.com/proars/domnix/internal/domain"
	"github.com/proars/domnix/internal/whois"
	"github.com/proars/domnix/internal/worker"
)

// Service checks domain availability over WHOIS.
type Service struct {
	registry   *whois.Registry
	querier    whois.Querier
	defaultTLD string
	logger     *slog.Logger
}

// NewService creates a checker service. registry resolves TLDs to WHOIS
// servers, querier performs the raw protocol queries, and defaultTLD is
// appended to tokens without an extension.
func NewService(registry *whois.Registry, querier whois.Querier, defaultTLD string, logger *slog.Logger) *Service {
	return &Service{
		registry:   registry,
		querier:    querier,
		defaultTLD: defaultTLD,
		logger:     logger,
	}
}

// Check runs the pipeline for one raw input token. It always produces a
// Result: every failure is converted into a status and note at this boundary
// and never propagates. Invalid tokens are rejected before any network I/O.
func (s *Service) Check(ctx context.Context, raw string) *Result {
	d, err := domain.Normalize(raw, s.defaultTLD)
	if err != nil {
		s.logger.Debug("rejected input", "input", raw, "error", err)
		return &Result{
			Domain: strings.TrimSpace(raw),
			Status: classify.StatusInvalid,
			Note:   err.Error(),
		}
	}

	server, err := s.registry.Lookup(ctx, d.TLD)
	if err != nil {
		s.logger.Debug("server resolution failed", "domain", d.Name, "error", err)
		return &Result{
			Domain: d.Name,
			Status: classify.StatusError,
			Note:   fmt.Sprintf("no WHOIS server found for TLD %q", d.TLD),
		}
	}

	response, err := s.querier.Query(ctx, server, d.Name)
	if err != nil {
		s.logger.Debug("whois query failed", "domain", d.Name, "server", server, "error", err)
		return &Result{Domain: d.Name, Status: classify.StatusError, Note: err.Error()}
	}

	status := classify.Response(response)
	note := "whois: " + server
	if status == classify.StatusUnknown {
		if strings.TrimSpace(response) == "" {
			note = "empty response"
		} else {
			note = "whois: " + server + " (unrecognized format)"
		}
	}
	return &Result{Domain: d.Name, Status: status, Note: note}
}

// CheckAll checks every token concurrently using at most workers in-flight
// queries and returns one result per token, in input order. A failure for one
// token never affects the others; CheckAll waits for all of them.
func (s *Service) CheckAll(ctx context.Context, tokens []string, workers int) *MultiResult {
	return &MultiResult{Results: worker.Run(ctx, tokens, workers, s.Check)}
}
