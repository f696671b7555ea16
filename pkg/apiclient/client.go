package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Standard headers attached to every request.
const (
	headerSessionID   = "X-Session-ID"
	headerRequestID   = "X-Request-ID"
	headerContentType = "Content-Type"

	contentTypeJSON = "application/json"
)

// Client issues authenticated requests against the influmatch backend.
// Zero value is not usable; use New. Concurrent calls are independent:
// there is no in-flight registry or request coalescing.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialSource
	nav        Navigator
	log        *slog.Logger
	loginPath  string

	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

// Response is the resolved value of a successful call. Data is decoded by
// the response's declared content type: application/json yields the decoded
// value, text/* yields a string, anything else a []byte. Body always holds
// the raw payload.
type Response struct {
	Data   any
	Status int
	Header http.Header
	Body   []byte
}

// New creates a client for the given base URL. The returned client reuses
// one underlying transport across calls for connection pooling.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		nav:        NopNavigator{},
		log:        slog.Default(),
		loginPath:  DefaultLoginPath,
		timeout:    DefaultTimeout,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request. Params with nil values are dropped from the
// query string rather than serialized.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]any, opts ...CallOption) (*Response, error) {
	return c.doJSON(ctx, http.MethodGet, endpoint, params, nil, opts)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any, opts ...CallOption) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, endpoint, nil, body, opts)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any, opts ...CallOption) (*Response, error) {
	return c.doJSON(ctx, http.MethodPut, endpoint, nil, body, opts)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body any, opts ...CallOption) (*Response, error) {
	return c.doJSON(ctx, http.MethodPatch, endpoint, nil, body, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, opts ...CallOption) (*Response, error) {
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil, opts)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, params map[string]any, body any, opts []CallOption) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: marshal request body: %w", err)
		}
	}
	return c.do(ctx, method, c.resolveURL(endpoint, params), payload, contentTypeJSON, opts)
}

// resolveURL builds the final request URL. Absolute endpoints pass through;
// relative ones are joined to the base URL. Params with nil values are
// omitted entirely.
func (c *Client) resolveURL(endpoint string, params map[string]any) string {
	target := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		target = c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	}
	if len(params) == 0 {
		return target
	}

	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	query := u.Query()
	for key, value := range params {
		if value == nil {
			continue
		}
		query.Set(key, fmt.Sprint(value))
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// buildHeaders computes the headers for one call: content type first, then
// whatever credentials the source holds (both may be attached at once; the
// backend prefers the session header), then caller overrides, caller wins.
func (c *Client) buildHeaders(contentType string, overrides map[string]string) http.Header {
	headers := make(http.Header)
	if contentType != "" {
		headers.Set(headerContentType, contentType)
	}
	headers.Set(headerRequestID, uuid.NewString())

	if c.creds != nil {
		if sessionID := c.creds.SessionID(); sessionID != "" {
			headers.Set(headerSessionID, sessionID)
		}
		if token := c.creds.BearerToken(); token != "" {
			headers.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range overrides {
		headers.Set(key, value)
	}
	return headers
}

// do runs the full request lifecycle: one deadline armed over the whole
// call, then an attempt loop that re-issues the identical request while the
// retry budget lasts.
func (c *Client) do(ctx context.Context, method, target string, payload []byte, contentType string, opts []CallOption) (*Response, error) {
	options := &callOptions{
		timeout:    c.timeout,
		retries:    c.retries,
		retryDelay: c.retryDelay,
		headers:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(options)
	}

	headers := c.buildHeaders(contentType, options.headers)

	callCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= options.retries; attempt++ {
		if attempt > 0 {
			c.log.Warn("request failed, retrying",
				"method", method, "url", target,
				"attempt", attempt, "max_retries", options.retries)
			select {
			case <-callCtx.Done():
				return nil, c.deadlineError(ctx, callCtx, target)
			case <-time.After(options.retryDelay * time.Duration(attempt)):
			}
		}

		resp, retryable, err := c.attempt(callCtx, method, target, payload, headers)
		if err == nil {
			return resp, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err

		if callCtx.Err() != nil {
			return nil, c.deadlineError(ctx, callCtx, target)
		}
	}
	return nil, lastErr
}

// attempt performs a single request and classifies the outcome. The
// retryable flag is true only for transport failures and non-2xx statuses
// outside the never-retried set (408 deadline, 401, 403).
func (c *Client) attempt(ctx context.Context, method, target string, payload []byte, headers http.Header) (*Response, bool, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, false, fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header = headers.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			return nil, false, newError(ErrTimeout, http.StatusRequestTimeout, "Request timeout", "", nil)
		}
		if ctx.Err() == context.Canceled {
			return nil, false, ctx.Err()
		}
		return nil, true, newError(ErrRequestFailed, 0, err.Error(), "", nil)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, newError(ErrRequestFailed, resp.StatusCode, "failed to read response body: "+err.Error(), "", nil)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.handleUnauthorized(ctx)
		return nil, false, newError(ErrUnauthorized, http.StatusUnauthorized, "Unauthorized", "", nil)

	case resp.StatusCode == http.StatusForbidden:
		return nil, false, classify(ErrForbidden, resp.StatusCode, raw)

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, true, classify(ErrRequestFailed, resp.StatusCode, raw)
	}

	return &Response{
		Data:   decodeBody(resp.Header.Get(headerContentType), raw),
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   raw,
	}, false, nil
}

// handleUnauthorized performs the forced-logout side effects before the 401
// error is raised: the session is cleared unconditionally, and navigation
// fires unless the user is already at the login entry point.
func (c *Client) handleUnauthorized(ctx context.Context) {
	c.log.Warn("session expired or invalid, redirecting to login")
	if c.creds != nil {
		// The call context may already be near its deadline; clearing the
		// session must still go through.
		c.creds.Clear(context.WithoutCancel(ctx))
	}
	if !strings.Contains(c.nav.CurrentPath(), c.loginPath) {
		c.nav.NavigateTo(c.loginPath)
	}
}

func (c *Client) deadlineError(parent, callCtx context.Context, target string) error {
	if callCtx.Err() == context.DeadlineExceeded && parent.Err() == nil {
		c.log.Warn("request deadline exceeded", "url", target)
		return newError(ErrTimeout, http.StatusRequestTimeout, "Request timeout", "", nil)
	}
	return parent.Err()
}

// classify builds a structured error from a non-2xx response. JSON bodies
// contribute message, code, and details; anything else gets the generic
// message.
func classify(kind error, status int, raw []byte) *Error {
	message := fmt.Sprintf("Request failed with status %d", status)
	var code string
	var details any

	var parsed map[string]any
	if json.Unmarshal(raw, &parsed) == nil && parsed != nil {
		if m, ok := parsed["message"].(string); ok && m != "" {
			message = m
		}
		if cd, ok := parsed["code"].(string); ok {
			code = cd
		}
		if d, ok := parsed["details"]; ok {
			details = d
		} else {
			details = parsed
		}
	}
	return newError(kind, status, message, code, details)
}

// decodeBody dispatches on the declared content type: JSON is decoded,
// text/* is returned as a string, everything else (including no content
// type) stays raw bytes.
func decodeBody(contentType string, raw []byte) any {
	switch {
	case strings.Contains(contentType, contentTypeJSON):
		if len(raw) == 0 {
			return nil
		}
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return raw
		}
		return data
	case strings.HasPrefix(contentType, "text/"):
		return string(raw)
	default:
		return append([]byte(nil), raw...)
	}
}

// Decode re-decodes a JSON response body into a typed value for callers
// that know the payload shape.
func Decode[T any](resp *Response) (T, error) {
	var v T
	if resp == nil || len(resp.Body) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return v, fmt.Errorf("apiclient: decode response: %w", err)
	}
	return v, nil
}
