package alfresco

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// tagsAPIPath is the REST v1 tag collection path for a node.
const tagsAPIPath = "/api/-default-/public/alfresco/versions/1/nodes/%s/tags"

// Client handles Alfresco API communication: authentication, timeouts, and
// optional proactive rate limiting. It is shared by both apply strategies.
type Client struct {
	cfg     *Config
	creds   driven.CredentialsProvider
	http    *http.Client
	limiter *rate.Limiter // nil when throttling is disabled
}

// NewClient creates an Alfresco API client.
// The configuration must have been validated.
func NewClient(cfg *Config, creds driven.CredentialsProvider) *Client {
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	return &Client{
		cfg:     cfg,
		creds:   creds,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// tagsURL builds the tag collection URL for a node id.
func (c *Client) tagsURL(nodeID string) string {
	return c.cfg.BaseURL + fmt.Sprintf(tagsAPIPath, url.PathEscape(nodeID))
}

// do executes one API request. A non-nil payload is sent as JSON; a non-nil
// out receives the decoded 2xx response body. Any non-2xx status is returned
// as an *APIError (including 409, which callers absorb where appropriate).
func (c *Client) do(ctx context.Context, method, reqURL string, payload, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if err := c.authenticate(ctx, req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
			URL:        reqURL,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// authenticate attaches credentials to the request. Credentials are fetched
// from the provider on every call so rotated passwords take effect without
// restarting the worker.
func (c *Client) authenticate(ctx context.Context, req *http.Request) error {
	if c.creds == nil {
		return domain.ErrAuthRequired
	}
	creds, err := c.creds.Credentials(ctx)
	if err != nil {
		return fmt.Errorf("get credentials: %w", err)
	}

	switch creds.Method {
	case domain.AuthMethodBearer:
		tok := &oauth2.Token{AccessToken: creds.Token, TokenType: "Bearer"}
		tok.SetAuthHeader(req)
	default:
		req.SetBasicAuth(creds.Username, creds.Password)
	}
	return nil
}

// errorMessage extracts the briefSummary from an Alfresco error body,
// falling back to the standard status text.
func errorMessage(resp *http.Response) string {
	var apiResp struct {
		Error struct {
			BriefSummary string `json:"briefSummary"`
		} `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&apiResp); err == nil {
		if apiResp.Error.BriefSummary != "" {
			return apiResp.Error.BriefSummary
		}
	}
	return http.StatusText(resp.StatusCode)
}
