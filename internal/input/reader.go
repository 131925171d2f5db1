// Package input parses domain lists from files and stdin.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Read parses domain tokens from r. Each non-empty line that does not start
// with '#' contributes either a single token or a comma-separated list of
// tokens. Surrounding whitespace is trimmed and input order is preserved.
func Read(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// ReadFile reads domain tokens from the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
