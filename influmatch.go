// Package influmatch is the Go client SDK for the influmatch
// influencer-marketing marketplace. It bundles the session store and the
// authenticated HTTP client with typed services mirroring the backend's
// REST surface for both user roles: creators and brands.
//
//	cfg, err := influmatch.ConfigFromEnv()
//	...
//	client := influmatch.New(cfg,
//	    influmatch.WithStorage(session.NewFileStorage(credPath)),
//	)
//	auth, err := client.Auth.Login(ctx, influmatch.Credentials{
//	    Email:    "a@b.com",
//	    Password: "s3cret",
//	})
//	// Subsequent calls carry the session automatically.
//	campaigns, err := client.Campaigns.ListActive(ctx)
package influmatch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
	"github.com/influmatch/influmatch-go/pkg/config"
	"github.com/influmatch/influmatch-go/pkg/session"
)

// Config holds the SDK settings, loadable from the environment.
type Config struct {
	BaseURL    string        `env:"INFLUMATCH_API_URL" envDefault:"http://localhost:8080/v1"`
	LoginPath  string        `env:"INFLUMATCH_LOGIN_PATH" envDefault:"/login"`
	Timeout    time.Duration `env:"INFLUMATCH_TIMEOUT" envDefault:"30s"`
	RetryCount int           `env:"INFLUMATCH_RETRY_COUNT" envDefault:"0"`
	RetryDelay time.Duration `env:"INFLUMATCH_RETRY_DELAY" envDefault:"1s"`
}

// ConfigFromEnv loads Config from environment variables (and a .env file
// when present).
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Client is the aggregated SDK entry point. All services share one session
// store and one HTTP client.
type Client struct {
	api     *apiclient.Client
	session *session.Store

	Auth      *AuthService
	Campaigns *CampaignsService
	Creators  *CreatorsService
	Brands    *BrandsService
	Payments  *PaymentsService
	Matching  *MatchingService
	Social    *SocialService
	Analytics *AnalyticsService
}

type clientOptions struct {
	storage    session.Storage
	navigator  apiclient.Navigator
	log        *slog.Logger
	httpClient *http.Client
}

// Option configures the aggregated client.
type Option func(*clientOptions)

// WithStorage selects the durable backend for session credentials. Defaults
// to in-memory (credentials lost on exit).
func WithStorage(storage session.Storage) Option {
	return func(o *clientOptions) { o.storage = storage }
}

// WithNavigator sets the hook fired when a 401 forces logout.
func WithNavigator(nav apiclient.Navigator) Option {
	return func(o *clientOptions) { o.navigator = nav }
}

// WithLogger sets the logger shared by the session store and HTTP client.
func WithLogger(log *slog.Logger) Option {
	return func(o *clientOptions) { o.log = log }
}

// WithHTTPClient sets a custom transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = httpClient }
}

// New wires a session store and HTTP client into the full SDK surface.
func New(cfg Config, opts ...Option) *Client {
	options := &clientOptions{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store := session.New(options.storage, session.WithLogger(options.log))

	apiOpts := []apiclient.Option{
		apiclient.WithCredentialSource(store),
		apiclient.WithLogger(options.log),
		apiclient.WithLoginPath(cfg.LoginPath),
		apiclient.WithDefaultTimeout(cfg.Timeout),
		apiclient.WithDefaultRetries(cfg.RetryCount),
		apiclient.WithDefaultRetryDelay(cfg.RetryDelay),
	}
	if options.navigator != nil {
		apiOpts = append(apiOpts, apiclient.WithNavigator(options.navigator))
	}
	if options.httpClient != nil {
		apiOpts = append(apiOpts, apiclient.WithHTTPClient(options.httpClient))
	}
	api := apiclient.New(cfg.BaseURL, apiOpts...)

	c := &Client{api: api, session: store}
	c.Auth = &AuthService{api: api, session: store}
	c.Campaigns = &CampaignsService{api: api}
	c.Creators = &CreatorsService{api: api}
	c.Brands = &BrandsService{api: api}
	c.Payments = &PaymentsService{api: api}
	c.Matching = &MatchingService{api: api}
	c.Social = &SocialService{api: api}
	c.Analytics = &AnalyticsService{api: api}
	return c
}

// Session exposes the underlying session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// API exposes the underlying HTTP client for endpoints the typed surface
// does not cover yet.
func (c *Client) API() *apiclient.Client {
	return c.api
}

// getJSON issues a GET and decodes the JSON response into T.
func getJSON[T any](ctx context.Context, api *apiclient.Client, endpoint string, params map[string]any, opts ...apiclient.CallOption) (T, error) {
	resp, err := api.Get(ctx, endpoint, params, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return apiclient.Decode[T](resp)
}

// postJSON issues a POST and decodes the JSON response into T.
func postJSON[T any](ctx context.Context, api *apiclient.Client, endpoint string, body any, opts ...apiclient.CallOption) (T, error) {
	resp, err := api.Post(ctx, endpoint, body, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return apiclient.Decode[T](resp)
}

// patchJSON issues a PATCH and decodes the JSON response into T.
func patchJSON[T any](ctx context.Context, api *apiclient.Client, endpoint string, body any, opts ...apiclient.CallOption) (T, error) {
	resp, err := api.Patch(ctx, endpoint, body, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return apiclient.Decode[T](resp)
}
