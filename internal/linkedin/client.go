// Package linkedin is a minimal client for LinkedIn's private Voyager API.
// It covers exactly the calls the tool facade needs: cookie-based
// authentication plus a handful of GET/POST endpoints returning untyped
// JSON. Responses are exposed as gjson results so callers can read nested
// fields with zero-value defaults instead of failing on shape changes.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://www.linkedin.com"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	requestTimeout = 30 * time.Second

	// sessionTTL bounds how long a persisted session is reused before a
	// fresh authentication is forced.
	sessionTTL = 7 * 24 * time.Hour
)

// Client is an authenticated Voyager API session.
type Client struct {
	http    *http.Client
	baseURL string
	email   string
	csrf    string
	logger  *slog.Logger
	store   *SessionStore
}

// Option configures a Client before it authenticates.
type Option func(*Client)

// WithBaseURL overrides the LinkedIn origin (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionStore enables cookie persistence across processes.
func WithSessionStore(s *SessionStore) Option {
	return func(c *Client) { c.store = s }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// Dial authenticates against LinkedIn and returns a ready client. A stored
// session younger than sessionTTL is reused; otherwise the credentials are
// exchanged for fresh cookies (and persisted when a store is configured).
func Dial(ctx context.Context, email, password string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("linkedin: cookie jar: %w", err)
	}

	c := &Client{
		http:    &http.Client{Timeout: requestTimeout, Jar: jar},
		baseURL: defaultBaseURL,
		email:   email,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}

	if c.restoreSession() {
		c.logger.Debug("linkedin: reusing stored session", "account", c.email)
		return c, nil
	}

	if err := c.authenticate(ctx, password); err != nil {
		return nil, err
	}
	c.saveSession()
	return c, nil
}

// restoreSession loads persisted cookies for the account. Returns false
// when there is no store, no usable session, or the session is stale.
func (c *Client) restoreSession() bool {
	if c.store == nil || c.email == "" {
		return false
	}
	sess, err := c.store.Get(c.email)
	if err != nil || sess == nil {
		return false
	}
	if time.Since(sess.UpdatedAt) > sessionTTL {
		return false
	}
	origin, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	c.http.Jar.SetCookies(origin, sess.Cookies())
	c.csrf = sess.CSRFToken
	return c.csrf != ""
}

func (c *Client) saveSession() {
	if c.store == nil || c.email == "" {
		return
	}
	origin, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	sess := NewSession(c.email, c.http.Jar.Cookies(origin), c.csrf)
	if err := c.store.Put(sess); err != nil {
		c.logger.Error("linkedin: persist session", "account", c.email, "error", err)
	}
}

// authenticate performs the cookie/CSRF login handshake. LinkedIn expects a
// pre-seeded JSESSIONID of the form "ajax:<token>" whose value doubles as
// the csrf-token header on the login request itself.
func (c *Client) authenticate(ctx context.Context, password string) error {
	if c.email == "" || password == "" {
		return fmt.Errorf("linkedin: missing credentials")
	}

	seed := "ajax:" + uuid.NewString()
	form := url.Values{
		"session_key":      {c.email},
		"session_password": {password},
		"JSESSIONID":       {seed},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/uas/authenticate", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("linkedin: authenticate: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Li-User-Agent", "LIAuthLibrary:0.0.3 com.linkedin.android 4.1.881")
	req.Header.Set("csrf-token", seed)
	req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: seed})

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("linkedin: authenticate: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("linkedin: authenticate: HTTP %d: %s", resp.StatusCode, snippet(body))
	}
	if result := gjson.GetBytes(body, "login_result").String(); result != "" && result != "PASS" {
		return fmt.Errorf("linkedin: authenticate: login result %s", result)
	}

	// The session cookie set by the server becomes the csrf-token for all
	// subsequent API calls.
	origin, _ := url.Parse(c.baseURL)
	for _, ck := range c.http.Jar.Cookies(origin) {
		if ck.Name == "JSESSIONID" {
			c.csrf = strings.Trim(ck.Value, `"`)
		}
	}
	if c.csrf == "" {
		c.csrf = seed
	}

	c.logger.Debug("linkedin: authenticated", "account", c.email)
	return nil
}

// --- transport ---

func (c *Client) apiGet(ctx context.Context, path string, query url.Values) (gjson.Result, error) {
	u := c.baseURL + "/voyager/api/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linkedin: %s: %w", path, err)
	}
	return c.do(req, path)
}

func (c *Client) apiPost(ctx context.Context, path string, payload any) (gjson.Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linkedin: %s: marshal: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/voyager/api/"+path, bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linkedin: %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) (gjson.Result, error) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.linkedin.normalized+json+2.1")
	req.Header.Set("X-RestLi-Protocol-Version", "2.0.0")
	if c.csrf != "" {
		req.Header.Set("csrf-token", c.csrf)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linkedin: %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linkedin: %s: read: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, fmt.Errorf("linkedin: %s: HTTP %d: %s", path, resp.StatusCode, snippet(body))
	}
	return gjson.ParseBytes(body), nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

func countQuery(limit, offset int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("count", fmt.Sprintf("%d", limit))
	}
	if offset > 0 {
		q.Set("start", fmt.Sprintf("%d", offset))
	}
	return q
}

// elements unwraps the Voyager collection envelope, capped at limit when
// the server returns more than asked for.
func elements(res gjson.Result, limit int) []gjson.Result {
	items := res.Get("elements").Array()
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
