package qrz

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/roach88/hamlog/internal/record"
)

// State is the client's session state.
type State string

const (
	// StateUnauthenticated is the initial state: no session key held.
	StateUnauthenticated State = "unauthenticated"

	// StateAuthenticating means a login request is in flight.
	StateAuthenticating State = "authenticating"

	// StateAuthenticated means a session key is held and lookups may be
	// issued.
	StateAuthenticated State = "authenticated"

	// StateFailed is terminal for the current attempt; a fresh Login is
	// required.
	StateFailed State = "failed"
)

// Client talks to the lookup service. It is not safe for concurrent use;
// the tool is single-threaded by design.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *slog.Logger

	state      State
	sessionKey string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a lookup client. The username is uppercased before
// transmission (service convention); the password is held in memory only
// and never persisted.
func New(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   strings.ToUpper(strings.TrimSpace(username)),
		password:   password,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
		state:      StateUnauthenticated,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current session state.
func (c *Client) State() State {
	return c.state
}

// Login exchanges the credentials for a session key. On a remote error
// payload the state becomes Failed and an AUTH_FAILED error carries the
// remote message. Never retried automatically.
func (c *Client) Login(ctx context.Context) error {
	c.state = StateAuthenticating
	c.sessionKey = ""

	env, err := c.get(ctx, url.Values{
		"username": {c.username},
		"password": {c.password},
	})
	if err != nil {
		c.state = StateFailed
		return fmt.Errorf("login: %w", err)
	}

	if env.Session.Error != "" {
		c.state = StateFailed
		return &Error{Code: ErrCodeAuthFailed, Message: env.Session.Error}
	}
	if env.Session.Key == "" {
		c.state = StateFailed
		return &Error{Code: ErrCodeBadResponse, Message: "login response carried no session key"}
	}

	c.sessionKey = env.Session.Key
	c.state = StateAuthenticated
	c.logger.Debug("lookup session established", "username", c.username)
	return nil
}

// FetchCallsign retrieves operator data for one callsign. When no
// session is held it logs in first, exactly once; an authentication
// failure there surfaces directly. A remote error payload on the lookup
// itself surfaces as LOOKUP_FAILED and leaves the session state
// untouched: whether to retry with a fresh Login is the caller's call.
func (c *Client) FetchCallsign(ctx context.Context, call string) (record.Callsign, error) {
	call = record.NormalizeCall(call)
	if call == "" {
		return record.Callsign{}, &Error{Code: ErrCodeLookupFailed, Message: "empty callsign"}
	}

	if c.state != StateAuthenticated {
		if err := c.Login(ctx); err != nil {
			return record.Callsign{}, err
		}
	}

	env, err := c.get(ctx, url.Values{
		"s":        {c.sessionKey},
		"callsign": {call},
	})
	if err != nil {
		return record.Callsign{}, fmt.Errorf("lookup %s: %w", call, err)
	}

	if env.Session.Error != "" {
		return record.Callsign{}, &Error{Code: ErrCodeLookupFailed, Message: env.Session.Error, Call: call}
	}
	if env.Callsign.Call == "" {
		return record.Callsign{}, &Error{Code: ErrCodeBadResponse, Message: "lookup response carried no callsign data", Call: call}
	}

	c.logger.Debug("callsign fetched", "call", call)
	return env.Callsign.toRecord(), nil
}

// get issues one GET against the base endpoint and parses the XML body.
func (c *Client) get(ctx context.Context, params url.Values) (envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return envelope{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return parseResponse(resp.Body)
}
