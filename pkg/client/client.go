package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mchmarny/recipe-api/pkg/defaults"
	apierrors "github.com/mchmarny/recipe-api/pkg/errors"
	"github.com/mchmarny/recipe-api/pkg/recipe"
	"github.com/mchmarny/recipe-api/pkg/server"
)

const defaultUserAgent = "recipe-api-client/1.0"

// Option defines a configuration option for Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// Client talks to a running recipe API server.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// New creates a Client for the given base URL (e.g. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search queries recipes by label keyword. An empty keyword lists the
// first maxResults records; maxResults <= 0 requests the server default.
func (c *Client) Search(ctx context.Context, keyword string, maxResults int) ([]recipe.Recipe, error) {
	q := url.Values{}
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	if maxResults > 0 {
		q.Set("max_results", strconv.Itoa(maxResults))
	}

	endpoint := c.baseURL + "/search/"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var results recipe.SearchResults
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, http.StatusOK, &results); err != nil {
		return nil, err
	}
	return results.Results, nil
}

// Get fetches a single recipe by id.
func (c *Client) Get(ctx context.Context, id int) (*recipe.Recipe, error) {
	endpoint := fmt.Sprintf("%s/recipe/%d", c.baseURL, id)

	var rec recipe.Recipe
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, http.StatusOK, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create adds a new recipe and returns the created record with its
// server-assigned id.
func (c *Client) Create(ctx context.Context, req recipe.CreateRequest) (*recipe.Recipe, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInternal, "failed to encode create request", err)
	}

	var rec recipe.Recipe
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/recipe/", body, http.StatusCreated, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// doJSON performs a request and decodes the response into out, translating
// non-expected statuses into structured errors.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body []byte,
	expectedStatus int, out any) error {

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apierrors.Wrap(apierrors.ErrCodeInternal, "failed to build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return apierrors.Wrap(apierrors.ErrCodeUnavailable,
			fmt.Sprintf("request to %s failed", endpoint), err)
	}
	defer res.Body.Close()

	if res.StatusCode != expectedStatus {
		return decodeError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return apierrors.Wrap(apierrors.ErrCodeInternal, "failed to decode response", err)
	}
	return nil
}

// decodeError converts an error payload back into a StructuredError so CLI
// callers see the same code/message the server emitted.
func decodeError(res *http.Response) error {
	var errResp server.ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&errResp); err != nil || errResp.Code == "" {
		return apierrors.Newf(apierrors.ErrCodeInternal,
			"unexpected response status %d", res.StatusCode)
	}

	return apierrors.NewWithContext(
		apierrors.ErrorCode(errResp.Code),
		errResp.Message,
		errResp.Details,
	)
}
