// Package testutil provides shared test helpers for package unit tests.
package testutil

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
)

// MockQuerier implements whois.Querier for testing.
// QueryFn is called for every Query; leave it nil to return an empty response.
type MockQuerier struct {
	QueryFn func(ctx context.Context, server, query string) (string, error)
}

// Query implements whois.Querier.
func (m *MockQuerier) Query(ctx context.Context, server, query string) (string, error) {
	if m.QueryFn != nil {
		return m.QueryFn(ctx, server, query)
	}
	return "", nil
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// StartWhoisServer starts an in-process WHOIS server on a random loopback
// port and returns its host:port address. For each connection it reads one
// CRLF-terminated query line, passes it to respond, writes the returned text,
// and closes the connection. The listener is shut down via t.Cleanup.
func StartWhoisServer(t *testing.T, respond func(query string) string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("starting whois stub: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				line, err := bufio.NewReader(conn).ReadString('\n')
				if err != nil && line == "" {
					return
				}
				query := strings.TrimRight(line, "\r\n")
				_, _ = io.WriteString(conn, respond(query))
			}(conn)
		}
	}()

	return ln.Addr().String()
}

// StartSilentServer starts a loopback TCP server that accepts connections and
// never writes a byte, for exercising client timeouts. Connections stay open
// until the listener is closed via t.Cleanup.
func StartSilentServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("starting silent stub: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		var conns []net.Conn
		defer func() {
			for _, c := range conns {
				_ = c.Close()
			}
		}()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conns = append(conns, conn)
		}
	}()

	return ln.Addr().String()
}
