package apiclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Client-level defaults. Retries are opt-in: most calls in this domain are
// not idempotent-safe, so nothing is retried unless the caller asks.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryDelay = time.Second
	DefaultLoginPath  = "/login"
)

// CredentialSource supplies the credentials attached to outgoing requests
// and is cleared when the backend rejects the session. *session.Store
// satisfies it.
type CredentialSource interface {
	SessionID() string
	BearerToken() string
	Clear(ctx context.Context)
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTPClient sets a custom transport, e.g. for proxies or tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithCredentialSource attaches the store whose credentials decorate every
// request. Without one, requests go out unauthenticated.
func WithCredentialSource(creds CredentialSource) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithNavigator sets the navigation hook used on forced logout.
func WithNavigator(nav Navigator) Option {
	return func(c *Client) {
		if nav != nil {
			c.nav = nav
		}
	}
}

// WithLogger sets the logger for retry and forced-logout warnings.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithLoginPath overrides the login entry point targeted on forced logout.
func WithLoginPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithDefaultTimeout overrides the per-call deadline applied when a call
// does not set its own.
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithDefaultRetries sets a client-wide retry budget. Use with care: retries
// re-issue the request regardless of method.
func WithDefaultRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithDefaultRetryDelay sets the base delay for linear backoff: attempt n
// waits delay × n.
func WithDefaultRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// callOptions carries per-call overrides on top of the client defaults.
type callOptions struct {
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	headers    map[string]string
}

// CallOption configures a single request.
type CallOption func(*callOptions)

// WithTimeout overrides the deadline for this call.
func WithTimeout(timeout time.Duration) CallOption {
	return func(o *callOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetries sets this call's retry budget. The transport is invoked at
// most n+1 times. Timeouts, 401s, and 403s are never retried regardless.
func WithRetries(n int) CallOption {
	return func(o *callOptions) {
		if n >= 0 {
			o.retries = n
		}
	}
}

// WithRetryDelay overrides the linear-backoff base delay for this call.
func WithRetryDelay(delay time.Duration) CallOption {
	return func(o *callOptions) {
		if delay > 0 {
			o.retryDelay = delay
		}
	}
}

// WithHeader adds a header to this call, overriding any computed header of
// the same name. Empty values are ignored.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithHeaders adds multiple headers to this call; caller wins on conflict.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		for k, v := range headers {
			if k != "" && v != "" {
				o.headers[k] = v
			}
		}
	}
}
