package registry

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Client is a minimal Docker Registry V2 API client. Only the read side
// needed for release preflight is implemented.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	// Services
	Tags TagsService
}

// RegistryError represents an error response from the registry API.
type RegistryError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// Error returns a string representation of the RegistryError.
func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry API error (%d): %s -- %s", e.StatusCode, e.Message, string(e.Body))
}

// NewClient creates a registry client for the given host. A bare host gets
// an https scheme. An optional bearer token is read from
// IMGFORGE_REGISTRY_TOKEN for registries that require one.
func NewClient(host string, timeout time.Duration) (*Client, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, errors.New("registry host must not be empty")
	}

	base := host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid registry host %q: %w", host, err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(base, "/"),
		token:   os.Getenv("IMGFORGE_REGISTRY_TOKEN"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	// Initialize services
	c.Tags = &tagsService{client: c}

	return c, nil
}

// DoRequest sends an HTTP request to the registry API and returns the
// response body. The 'path' is relative to the /v2 endpoint (e.g.
// "/imgforge/server/tags/list").
func (c *Client) DoRequest(method, path string) ([]byte, error) {
	fullURL := fmt.Sprintf("%s/v2%s", c.baseURL, path)
	req, err := http.NewRequest(method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request [%s %s]: %w", method, fullURL, err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed [%s %s]: %w", method, fullURL, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &RegistryError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       respData,
		}
	}

	return respData, nil
}
