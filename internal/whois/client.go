// Package whois implements the raw WHOIS protocol client and the TLD to
// server registry that decides which host to ask for a given domain.
package whois

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/proars/domnix/internal/apperr"
)

// DefaultPort is the standard WHOIS TCP port.
const DefaultPort = "43"

// Querier performs one raw WHOIS query against a server.
// *Client satisfies this interface; tests substitute a mock.
type Querier interface {
	Query(ctx context.Context, server, query string) (string, error)
}

// Client is a raw WHOIS protocol client. A single timeout bounds the whole
// query: dial, write, and read until the server closes the connection.
type Client struct {
	timeout time.Duration
	logger  *slog.Logger
	dialer  net.Dialer
}

// NewClient creates a WHOIS client with the given per-query timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{timeout: timeout, logger: logger}
}

// Query opens a TCP connection to server (port 43 unless server carries an
// explicit port), sends query terminated by CRLF, and reads the full response
// until the peer closes the connection or the timeout elapses.
//
// Failure kinds are distinct: dial failures (refused, unreachable, DNS) wrap
// apperr.ErrConnect, an elapsed deadline wraps apperr.ErrTimeout, and any
// other mid-transfer failure wraps apperr.ErrRead. No retries are performed.
func (c *Client) Query(ctx context.Context, server, query string) (string, error) {
	addr := server
	if _, _, err := net.SplitHostPort(server); err != nil {
		addr = net.JoinHostPort(server, DefaultPort)
	}

	deadline := time.Now().Add(c.timeout)
	dialCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	c.logger.Debug("whois query", "server", addr, "query", query)

	conn, err := c.dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperr.ErrConnect, server, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperr.ErrRead, server, err)
	}

	if _, err := conn.Write([]byte(query + "\r\n")); err != nil {
		return "", c.transferErr(server, err)
	}
	// Half-close so servers that wait for EOF before answering respond.
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}

	data, err := io.ReadAll(conn)
	if err != nil {
		return "", c.transferErr(server, err)
	}
	return string(data), nil
}

// transferErr maps a post-dial failure to the timeout or read sentinel.
func (c *Client) transferErr(server string, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %s after %s", apperr.ErrTimeout, server, c.timeout)
	}
	return fmt.Errorf("%w: %s: %v", apperr.ErrRead, server, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
