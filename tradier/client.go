package tradier

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// API origins. The paper environment is served by a separate sandbox host.
const (
	liveURL    = "https://api.tradier.com"
	sandboxURL = "https://sandbox.tradier.com"
)

// Environment selects between the production and sandbox origins.
type Environment string

const (
	// EnvLive is the production trading environment.
	EnvLive Environment = "live"
	// EnvPaper is the sandbox (paper trading) environment.
	EnvPaper Environment = "paper"
)

// BaseURL returns the API origin for env. Pure function of the flag: paper
// maps to the sandbox host, everything else to production.
func BaseURL(env Environment) string {
	if env == EnvPaper {
		return sandboxURL
	}
	return liveURL
}

// Client is an immutable session against the Tradier API: account number,
// bearer auth token, and environment, fixed at construction. It owns no
// other mutable state, so a single Client may be used concurrently; each
// call builds its own parameters and receives its own response.
type Client struct {
	accountNumber string
	authToken     string
	env           Environment

	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger

	now func() time.Time
}

// Option configures a Client at construction time.
type Option func(*Client)

// New creates a Client for the given account credentials. The paper
// environment is the default.
func New(accountNumber, authToken string, opts ...Option) *Client {
	c := &Client{
		accountNumber: accountNumber,
		authToken:     authToken,
		env:           EnvPaper,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logrus.StandardLogger(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		c.baseURL = BaseURL(c.env)
	}

	return c
}

// WithEnvironment selects the live or paper environment.
func WithEnvironment(env Environment) Option {
	return func(c *Client) {
		c.env = env
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout and cancellation
// behavior of the given client pass through to callers unmodified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBaseURL overrides the origin derived from the environment flag.
// Intended for tests pointed at a local server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// AccountNumber returns the account the session was constructed for.
func (c *Client) AccountNumber() string {
	return c.accountNumber
}

// Environment returns the environment the session was constructed for.
func (c *Client) Environment() Environment {
	return c.env
}
