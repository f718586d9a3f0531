// Package source reads markup from a file, standard input or an HTTP(S)
// URL.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const userAgent = "uhtml/1.0 (compatible; Go)"

// maxBody caps how much of a remote document is read.
const maxBody = 8 << 20

// httpClient is a shared HTTP client with reasonable timeouts.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Stdin names standard input as a source.
const Stdin = "-"

// Read returns the markup named by name. Watching only makes sense for
// sources where IsFile reports true.
func Read(ctx context.Context, name string, stdin io.Reader) (string, error) {
	switch {
	case name == Stdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case IsNetworkURL(name):
		return Fetch(ctx, name)
	default:
		data, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("reading markup: %w", err)
		}
		return string(data), nil
	}
}

// Fetch retrieves markup over HTTP/HTTPS. Any status outside 2xx is an
// error.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

// IsNetworkURL returns true if the string looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsFile reports whether name refers to a local file.
func IsFile(name string) bool {
	return name != "" && name != Stdin && !IsNetworkURL(name)
}
