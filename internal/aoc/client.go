// Package aoc talks to the adventofcode.com puzzle input endpoint.
package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the production puzzle host.
const DefaultBaseURL = "https://adventofcode.com"

// sessionCookie is the cookie name the endpoint authenticates with.
const sessionCookie = "session"

const maxInputResponseBytes = 5 * 1024 * 1024

// NewClient creates an HTTP client with safe defaults.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) == 0 {
				return nil
			}
			if req.URL.Host != via[0].URL.Host {
				return errors.New("redirect to different host blocked")
			}
			if len(via) >= 5 {
				return errors.New("too many redirects")
			}
			return nil
		},
	}
}

// FetchInput retrieves the raw puzzle input for a day and returns the
// response body verbatim.
func FetchInput(ctx context.Context, client *http.Client, baseURL string, year, day int, session string) ([]byte, error) {
	if client == nil {
		client = NewClient()
	}
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	inputURL := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(baseURL, "/"), year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, inputURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", inputURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("fetch %s: HTTP %d (session cookie missing or expired)", inputURL, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", inputURL, resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxInputResponseBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(data) > maxInputResponseBytes {
		return nil, errors.New("response too large")
	}
	return data, nil
}

// DownloadInput fetches the puzzle input and writes it verbatim to dest.
func DownloadInput(ctx context.Context, client *http.Client, baseURL string, year, day int, session, dest string) error {
	data, err := FetchInput(ctx, client, baseURL, year, day, session)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func validateBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	return nil
}
